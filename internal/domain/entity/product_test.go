package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func TestParseCategory(t *testing.T) {
	cases := map[string]entity.Category{
		"Generic":         entity.CategoryGeneric,
		"electric":        entity.CategoryElectric,
		" FRESH ":         entity.CategoryFresh,
		"ElectricProduct": entity.CategoryElectric,
		"FreshProduct":    entity.CategoryFresh,
	}
	for in, want := range cases {
		got, ok := entity.ParseCategory(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"Toys", "Product", "", "Electrical"} {
		got, ok := entity.ParseCategory(bad)
		assert.False(t, ok, bad)
		assert.False(t, got.Valid(), bad)
	}
}

func TestCategories_Valid(t *testing.T) {
	assert.Equal(t, []entity.Category{entity.CategoryGeneric, entity.CategoryElectric, entity.CategoryFresh}, entity.Categories)
	for _, c := range entity.Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, entity.Category("electric").Valid(), "el enum distingue mayúsculas; ParseCategory normaliza")
}

func TestUniqueProperties_Get(t *testing.T) {
	ps := entity.UniqueProperties{{Name: "Voltage", Value: "220v"}, {Name: "voltage", Value: "110v"}}

	v, ok := ps.Get("VOLTAGE")
	assert.True(t, ok)
	assert.Equal(t, "220v", v, "gana el primero")

	_, ok = ps.Get("SocketType")
	assert.False(t, ok)
}

func TestProduct_CloneNoCompartePropiedades(t *testing.T) {
	p := &entity.Product{ID: "1", UniqueProperties: entity.UniqueProperties{{Name: "a", Value: "1"}}}
	c := p.Clone()
	c.UniqueProperties[0].Value = "2"
	assert.Equal(t, "1", p.UniqueProperties[0].Value)

	var nilProduct *entity.Product
	assert.Nil(t, nilProduct.Clone())
}

func TestCatalog_ContainsYClone(t *testing.T) {
	c := &entity.Catalog{ID: "c", Products: []string{"a", "b"}}
	assert.True(t, c.Contains("b"))
	assert.False(t, c.Contains("z"))

	cp := c.Clone()
	cp.Products[0] = "x"
	assert.Equal(t, "a", c.Products[0])
}
