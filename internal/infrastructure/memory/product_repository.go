package memory

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductRepo implementación en memoria de repository.ProductRepository.
type ProductRepo struct {
	items *collection[*entity.Product]
}

// NewProductRepository crea un repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{items: newCollection((*entity.Product).Clone)}
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

func (r *ProductRepo) GetAll(ctx context.Context) ([]*entity.Product, error) {
	return r.items.all(ctx, nil)
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, _, err := r.items.get(ctx, id)
	return p, err
}

func (r *ProductRepo) GetByFilter(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	return r.items.all(ctx, filter.Matches)
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	return r.items.insert(ctx, p.ID, p)
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	return r.items.replace(ctx, p.ID, p)
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return r.items.remove(ctx, id)
}
