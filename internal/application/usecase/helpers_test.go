package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

var (
	fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	errStore = errors.New("almacenamiento caído")
)

func clock() time.Time { return fixedNow }

// countingProducts cuenta las llamadas a GetAll y permite forzar fallos.
type countingProducts struct {
	repository.ProductRepository
	getAll  atomic.Int32
	failAll bool
}

func (c *countingProducts) GetAll(ctx context.Context) ([]*entity.Product, error) {
	c.getAll.Add(1)
	if c.failAll {
		return nil, errStore
	}
	return c.ProductRepository.GetAll(ctx)
}

// spyCatalogs registra si se invocó alguna mutación.
type spyCatalogs struct {
	repository.CatalogRepository
	mutations atomic.Int32
}

func (s *spyCatalogs) Update(ctx context.Context, c *entity.Catalog) error {
	s.mutations.Add(1)
	return s.CatalogRepository.Update(ctx, c)
}

func (s *spyCatalogs) Delete(ctx context.Context, id string) error {
	s.mutations.Add(1)
	return s.CatalogRepository.Delete(ctx, id)
}

func newStores() (*countingProducts, *spyCatalogs) {
	return &countingProducts{ProductRepository: memory.NewProductRepository()},
		&spyCatalogs{CatalogRepository: memory.NewCatalogRepository()}
}

func props(kv ...string) []dto.UniquePropertyDTO {
	out := make([]dto.UniquePropertyDTO, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, dto.UniquePropertyDTO{Name: kv[i], Value: kv[i+1]})
	}
	return out
}

func seed(ctx context.Context, repo repository.ProductRepository, id string, category entity.Category, kv ...string) {
	p := &entity.Product{ID: id, Title: "prod " + id, Category: category, Price: decimal.NewFromInt(10), IsActive: true}
	for i := 0; i+1 < len(kv); i += 2 {
		p.UniqueProperties = append(p.UniqueProperties, entity.UniqueProperty{Name: kv[i], Value: kv[i+1]})
	}
	if err := repo.Create(ctx, p); err != nil {
		panic(err)
	}
}

func viewIDs(list []dto.ProductView) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, v.Base().ID)
	}
	return out
}
