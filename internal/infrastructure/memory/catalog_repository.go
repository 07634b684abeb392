package memory

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CatalogRepo implementación en memoria de repository.CatalogRepository.
type CatalogRepo struct {
	items *collection[*entity.Catalog]
}

// NewCatalogRepository crea un repositorio vacío.
func NewCatalogRepository() *CatalogRepo {
	return &CatalogRepo{items: newCollection((*entity.Catalog).Clone)}
}

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

func (r *CatalogRepo) GetAll(ctx context.Context) ([]*entity.Catalog, error) {
	return r.items.all(ctx, nil)
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (*entity.Catalog, error) {
	c, _, err := r.items.get(ctx, id)
	return c, err
}

func (r *CatalogRepo) GetByFilter(ctx context.Context, filter repository.CatalogFilter) ([]*entity.Catalog, error) {
	return r.items.all(ctx, filter.Matches)
}

func (r *CatalogRepo) Create(ctx context.Context, c *entity.Catalog) error {
	return r.items.insert(ctx, c.ID, c)
}

func (r *CatalogRepo) Update(ctx context.Context, c *entity.Catalog) error {
	return r.items.replace(ctx, c.ID, c)
}

func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	return r.items.remove(ctx, id)
}
