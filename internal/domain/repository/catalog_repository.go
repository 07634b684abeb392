package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CatalogFilter predicado declarativo sobre catálogos.
type CatalogFilter struct {
	ProductID string // catálogos que referencian este producto
}

// Matches evalúa el filtro contra un catálogo.
func (f CatalogFilter) Matches(c *entity.Catalog) bool {
	if c == nil {
		return false
	}
	if f.ProductID != "" && !c.Contains(f.ProductID) {
		return false
	}
	return true
}

// CatalogRepository define el puerto de persistencia para Catalog (DIP).
// GetByID devuelve (nil, nil) cuando el catálogo no existe.
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]*entity.Catalog, error)
	GetByID(ctx context.Context, id string) (*entity.Catalog, error)
	GetByFilter(ctx context.Context, filter CatalogFilter) ([]*entity.Catalog, error)
	Create(ctx context.Context, catalog *entity.Catalog) error
	Update(ctx context.Context, catalog *entity.Catalog) error
	Delete(ctx context.Context, id string) error
}
