package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// MsgCatalogNotFound violación de escritura sobre un catálogo inexistente.
const MsgCatalogNotFound = "Catalog with selected key not found"

// CatalogUseCase casos de uso de catálogos. Las lecturas delegan en el agregador;
// las escrituras aplican las reglas de referencias y de productos frescos.
type CatalogUseCase struct {
	catalogs   repository.CatalogRepository
	products   repository.ProductRepository
	aggregator *CatalogAggregator
	log        *logger.Logger
	now        func() time.Time
}

// CatalogOption configura el caso de uso.
type CatalogOption func(*CatalogUseCase)

// WithClock reemplaza el reloj usado por la regla de vencimiento.
func WithClock(now func() time.Time) CatalogOption {
	return func(uc *CatalogUseCase) { uc.now = now }
}

// WithLogger asigna el logger.
func WithLogger(l *logger.Logger) CatalogOption {
	return func(uc *CatalogUseCase) { uc.log = l.Component("catalogs") }
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalogs repository.CatalogRepository, products repository.ProductRepository, opts ...CatalogOption) *CatalogUseCase {
	uc := &CatalogUseCase{
		catalogs:   catalogs,
		products:   products,
		aggregator: NewCatalogAggregator(catalogs, products),
		log:        logger.Nop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// GetCatalogs lista todos los catálogos con sus productos resueltos.
func (uc *CatalogUseCase) GetCatalogs(ctx context.Context) ([]*dto.CatalogResponse, error) {
	return uc.aggregator.List(ctx)
}

// GetCatalogByID obtiene un catálogo; domain.ErrNotFound si no existe.
func (uc *CatalogUseCase) GetCatalogByID(ctx context.Context, id string) (*dto.CatalogResponse, error) {
	return uc.aggregator.ByID(ctx, id)
}

// GetCatalogByProductID primer catálogo que contiene el producto; domain.ErrNotFound si ninguno.
func (uc *CatalogUseCase) GetCatalogByProductID(ctx context.Context, productID string) (*dto.CatalogResponse, error) {
	return uc.aggregator.ByProductID(ctx, productID)
}

// GetCatalogsByProductID todos los catálogos que contienen el producto.
func (uc *CatalogUseCase) GetCatalogsByProductID(ctx context.Context, productID string) ([]*dto.CatalogResponse, error) {
	return uc.aggregator.ListByProductID(ctx, productID)
}

// Create valida las referencias y persiste el catálogo. Las referencias a productos
// inexistentes se aceptan; se filtran al leer.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.CatalogRequest) (Result[string], error) {
	refs := normalizeRefs(in.Products)
	violations, err := uc.validate(ctx, refs)
	if err != nil {
		return Result[string]{}, err
	}
	if len(violations) > 0 {
		uc.log.Debug().Strs("violations", violations).Msg("catálogo rechazado")
		return rejected[string](violations), nil
	}

	c := &entity.Catalog{
		ID:       uuid.New().String(),
		Title:    in.Title,
		Products: refs,
	}
	if err := uc.catalogs.Create(ctx, c); err != nil {
		return Result[string]{}, err
	}
	uc.log.Info().Str("catalog_id", c.ID).Int("products", len(refs)).Msg("catálogo creado")
	return success(c.ID), nil
}

// Update reemplaza un catálogo existente; todas las violaciones se reportan juntas.
func (uc *CatalogUseCase) Update(ctx context.Context, in dto.CatalogRequest) (Result[struct{}], error) {
	refs := normalizeRefs(in.Products)
	violations, err := uc.validate(ctx, refs)
	if err != nil {
		return Result[struct{}]{}, err
	}

	current, err := uc.catalogs.GetByID(ctx, in.ID)
	if err != nil {
		return Result[struct{}]{}, err
	}
	if current == nil {
		violations = append(violations, MsgCatalogNotFound)
	}
	if len(violations) > 0 {
		uc.log.Debug().Str("catalog_id", in.ID).Strs("violations", violations).Msg("actualización rechazada")
		return rejected[struct{}](violations), nil
	}

	c := &entity.Catalog{ID: current.ID, Title: in.Title, Products: refs}
	if err := uc.catalogs.Update(ctx, c); err != nil {
		return Result[struct{}]{}, err
	}
	uc.log.Info().Str("catalog_id", c.ID).Msg("catálogo actualizado")
	return success(struct{}{}), nil
}

// Delete elimina un catálogo; si no existe reporta la violación sin borrar nada.
func (uc *CatalogUseCase) Delete(ctx context.Context, id string) (Result[struct{}], error) {
	current, err := uc.catalogs.GetByID(ctx, id)
	if err != nil {
		return Result[struct{}]{}, err
	}
	if current == nil {
		return rejected[struct{}]([]string{MsgCatalogNotFound}), nil
	}
	if err := uc.catalogs.Delete(ctx, id); err != nil {
		return Result[struct{}]{}, err
	}
	uc.log.Info().Str("catalog_id", id).Msg("catálogo eliminado")
	return success(struct{}{}), nil
}

// validate junta las violaciones de referencias y la regla de frescos sobre el lote referenciado.
func (uc *CatalogUseCase) validate(ctx context.Context, refs []string) ([]string, error) {
	violations := catalog.ValidateReferences(refs)

	ids := make([]string, 0, len(refs))
	for id := range catalog.ReferenceSet(refs) {
		if id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return violations, nil
	}
	referenced, err := uc.products.GetByFilter(ctx, repository.ProductFilter{IDs: ids})
	if err != nil {
		return nil, err
	}
	if missing := catalog.NewProductIndex(referenced).Missing(ids); len(missing) > 0 {
		uc.log.Debug().Strs("dangling", missing).Msg("catálogo con referencias a productos inexistentes")
	}
	return append(violations, catalog.ValidateFreshProducts(referenced, uc.now())...), nil
}

func normalizeRefs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, id := range in {
		out = append(out, strings.TrimSpace(id))
	}
	return out
}
