package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func ids(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestProductIndex_ResolveFiltraAlConjunto(t *testing.T) {
	ix := catalog.NewProductIndex([]*entity.Product{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}})

	got := ix.Resolve([]string{"p2", "p1"})
	assert.ElementsMatch(t, []string{"p1", "p2"}, ids(got), "p3 no está referenciado")
	assert.Len(t, ix.Resolve([]string{"p3", "p2", "p1"}), 3)
}

func TestProductIndex_ReferenciasColgantesSeDescartan(t *testing.T) {
	ix := catalog.NewProductIndex([]*entity.Product{{ID: "p1"}})

	got := ix.Resolve([]string{"p1", "borrado", "p1"})
	assert.Equal(t, []string{"p1"}, ids(got))
	assert.Equal(t, []string{"borrado"}, ix.Missing([]string{"p1", "borrado", "borrado"}))
}

func TestProductIndex_DuplicadosYNil(t *testing.T) {
	first := &entity.Product{ID: "p1", Title: "primero"}
	ix := catalog.NewProductIndex([]*entity.Product{first, nil, {ID: "p1", Title: "segundo"}})

	got := ix.Resolve([]string{"p1"})
	require.Len(t, got, 1)
	assert.Same(t, first, got[0])
}

func TestReferenceSet(t *testing.T) {
	set := catalog.ReferenceSet([]string{"a", "b", "a"})
	assert.Len(t, set, 2)
	assert.Contains(t, set, "a")
	assert.Contains(t, set, "b")
}
