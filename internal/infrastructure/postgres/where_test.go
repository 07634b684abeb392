package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

func TestProductWhere(t *testing.T) {
	where, args := productWhere(repository.ProductFilter{})
	assert.Empty(t, where)
	assert.Nil(t, args)

	fresh := entity.CategoryFresh
	limit := decimal.NewFromInt(50)
	where, args = productWhere(repository.ProductFilter{Category: &fresh, MaxPrice: &limit, IDs: []string{"a", "b"}})
	assert.Equal(t, " WHERE category = $1 AND price <= $2 AND id = ANY($3)", where)
	assert.Equal(t, []any{"Fresh", limit, []string{"a", "b"}}, args)

	where, args = productWhere(repository.ProductFilter{MaxPrice: &limit})
	assert.Equal(t, " WHERE price <= $1", where)
	assert.Len(t, args, 1)
}

func TestCatalogWhere(t *testing.T) {
	where, args := catalogWhere(repository.CatalogFilter{})
	assert.Empty(t, where)
	assert.Nil(t, args)

	where, args = catalogWhere(repository.CatalogFilter{ProductID: "p1"})
	assert.Equal(t, " WHERE $1 = ANY(product_ids)", where)
	assert.Equal(t, []any{"p1"}, args)
}

func TestProductIDs_NeverNil(t *testing.T) {
	assert.Equal(t, []string{}, productIDs(nil))
	assert.Equal(t, []string{"x"}, productIDs([]string{"x"}))
}
