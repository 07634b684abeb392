package mongo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

func TestProductDocument_RoundTrip(t *testing.T) {
	p := &entity.Product{
		ID: "p1", Title: "Cable", Price: decimal.RequireFromString("12.50"),
		Category: entity.CategoryElectric, IsActive: true,
		UniqueProperties: entity.UniqueProperties{{Name: "Voltage", Value: "220v"}},
	}
	doc, err := newProductDocument(p, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "12.50", doc.Price.String())

	// pasa por BSON como lo haría el driver
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	var decoded productDocument
	require.NoError(t, bson.Unmarshal(raw, &decoded))

	got, err := decoded.entity()
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(got.Price))
	assert.Equal(t, p.UniqueProperties, got.UniqueProperties)
	assert.Equal(t, p.Category, got.Category)
}

func TestProductQuery(t *testing.T) {
	q, err := productQuery(repository.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, q)

	fresh := entity.CategoryFresh
	limit := decimal.NewFromInt(5)
	q, err = productQuery(repository.ProductFilter{Category: &fresh, MaxPrice: &limit, IDs: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, "Fresh", q["category"])
	assert.Equal(t, bson.M{"$in": []string{"a"}}, q["_id"])
	lte := q["price"].(bson.M)["$lte"]
	assert.Equal(t, "5", lte.(interface{ String() string }).String())
}

func TestCatalogQuery(t *testing.T) {
	assert.Empty(t, catalogQuery(repository.CatalogFilter{}))
	assert.Equal(t, bson.M{"products": "p1"}, catalogQuery(repository.CatalogFilter{ProductID: "p1"}))
}

func TestCatalogDocument_NilProducts(t *testing.T) {
	doc := newCatalogDocument(&entity.Catalog{ID: "c1"}, time.Time{})
	assert.NotNil(t, doc.Products)
	assert.Equal(t, "c1", doc.entity().ID)
}
