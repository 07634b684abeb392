package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductFilter predicado declarativo sobre productos. Los campos vacíos no filtran.
// Cada adaptador lo traduce a su lenguaje de consulta; Matches sirve para evaluarlo en memoria.
type ProductFilter struct {
	Category *entity.Category
	MaxPrice *decimal.Decimal // precio <= MaxPrice
	IDs      []string         // nil = sin filtro; vacío = ningún producto
}

// Matches evalúa el filtro contra un producto.
func (f ProductFilter) Matches(p *entity.Product) bool {
	if p == nil {
		return false
	}
	if f.Category != nil && p.Category != *f.Category {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.IDs != nil {
		found := false
		for _, id := range f.IDs {
			if id == p.ID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
// Update reemplaza el documento completo por ID; el caller debe verificar existencia antes.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByFilter(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
