package entity

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Category clasifica un producto y determina qué atributos propios debe traer.
type Category string

const (
	CategoryGeneric  Category = "Generic"
	CategoryElectric Category = "Electric"
	CategoryFresh    Category = "Fresh"
)

// Categories lista las categorías conocidas, en orden estable.
var Categories = []Category{CategoryGeneric, CategoryElectric, CategoryFresh}

// ParseCategory interpreta el nombre de una categoría sin distinguir mayúsculas.
// Acepta también los nombres heredados "ElectricProduct" y "FreshProduct".
func ParseCategory(s string) (Category, bool) {
	name := strings.TrimSpace(s)
	if len(name) > len("product") && strings.EqualFold(name[len(name)-len("product"):], "product") {
		name = name[:len(name)-len("product")]
	}
	for _, c := range Categories {
		if strings.EqualFold(name, string(c)) {
			return c, true
		}
	}
	return Category(s), false
}

// Valid informa si la categoría pertenece al enum.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// UniqueProperty es un par nombre/valor del bolso de atributos de un producto.
type UniqueProperty struct {
	Name  string `json:"name" bson:"name"`
	Value string `json:"value" bson:"value"`
}

// UniqueProperties bolsa ordenada de atributos; los nombres se comparan sin distinguir mayúsculas.
type UniqueProperties []UniqueProperty

// Get devuelve el valor del primer atributo con ese nombre.
func (ps UniqueProperties) Get(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, p := range ps {
		if strings.EqualFold(strings.TrimSpace(p.Name), name) {
			return p.Value, true
		}
	}
	return "", false
}

// Clone copia la bolsa para no compartir el arreglo subyacente.
func (ps UniqueProperties) Clone() UniqueProperties {
	if ps == nil {
		return nil
	}
	out := make(UniqueProperties, len(ps))
	copy(out, ps)
	return out
}

// Product entidad persistida. ID se asigna al crear y no cambia.
type Product struct {
	ID               string
	Title            string
	Description      string
	Price            decimal.Decimal
	Category         Category
	IsActive         bool
	UniqueProperties UniqueProperties
}

// Clone devuelve una copia profunda del producto.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	c.UniqueProperties = p.UniqueProperties.Clone()
	return &c
}
