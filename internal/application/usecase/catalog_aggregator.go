package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CatalogAggregator materializa catálogos: resuelve sus referencias contra el
// conjunto vivo de productos. Cada operación hace un único barrido de productos,
// sin importar cuántos catálogos haya.
type CatalogAggregator struct {
	catalogs repository.CatalogRepository
	products repository.ProductRepository
}

// NewCatalogAggregator construye el agregador.
func NewCatalogAggregator(catalogs repository.CatalogRepository, products repository.ProductRepository) *CatalogAggregator {
	return &CatalogAggregator{catalogs: catalogs, products: products}
}

// List materializa todos los catálogos. Catálogos y productos se leen en paralelo.
func (a *CatalogAggregator) List(ctx context.Context) ([]*dto.CatalogResponse, error) {
	var (
		catalogs []*entity.Catalog
		products []*entity.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalogs, err = a.catalogs.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("list catalogs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		products, err = a.products.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return a.materialize(catalogs, catalog.NewProductIndex(products)), nil
}

// ByID materializa un catálogo; domain.ErrNotFound si no existe.
func (a *CatalogAggregator) ByID(ctx context.Context, id string) (*dto.CatalogResponse, error) {
	c, err := a.catalogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	ix, err := a.index(ctx)
	if err != nil {
		return nil, err
	}
	return toCatalogResponse(c, ix.Resolve(c.Products)), nil
}

// ByProductID devuelve el primer catálogo que referencia el producto; domain.ErrNotFound si ninguno.
// Solo se materializa ese catálogo.
func (a *CatalogAggregator) ByProductID(ctx context.Context, productID string) (*dto.CatalogResponse, error) {
	catalogs, err := a.referencing(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(catalogs) == 0 {
		return nil, domain.ErrNotFound
	}
	ix, err := a.index(ctx)
	if err != nil {
		return nil, err
	}
	first := catalogs[0]
	return toCatalogResponse(first, ix.Resolve(first.Products)), nil
}

// ListByProductID materializa todos los catálogos que referencian el producto.
// Sin coincidencias devuelve una lista vacía.
func (a *CatalogAggregator) ListByProductID(ctx context.Context, productID string) ([]*dto.CatalogResponse, error) {
	catalogs, err := a.referencing(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(catalogs) == 0 {
		return []*dto.CatalogResponse{}, nil
	}
	ix, err := a.index(ctx)
	if err != nil {
		return nil, err
	}
	return a.materialize(catalogs, ix), nil
}

// referencing busca los catálogos que contienen productID. Un ID vacío no es un
// filtro vacío: ningún catálogo puede referenciarlo.
func (a *CatalogAggregator) referencing(ctx context.Context, productID string) ([]*entity.Catalog, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, nil
	}
	catalogs, err := a.catalogs.GetByFilter(ctx, repository.CatalogFilter{ProductID: productID})
	if err != nil {
		return nil, fmt.Errorf("find catalogs by product: %w", err)
	}
	return catalogs, nil
}

func (a *CatalogAggregator) index(ctx context.Context) (*catalog.ProductIndex, error) {
	products, err := a.products.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return catalog.NewProductIndex(products), nil
}

func (a *CatalogAggregator) materialize(catalogs []*entity.Catalog, ix *catalog.ProductIndex) []*dto.CatalogResponse {
	out := make([]*dto.CatalogResponse, 0, len(catalogs))
	for _, c := range catalogs {
		out = append(out, toCatalogResponse(c, ix.Resolve(c.Products)))
	}
	return out
}
