package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// MsgProductNotFound violación de escritura sobre un producto inexistente.
const MsgProductNotFound = "Product with selected key not found"

// ProductUseCase casos de uso de productos: lecturas directas y escrituras validadas.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso. log puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, log: log.Component("products")}
}

// GetAll lista todos los productos.
func (uc *ProductUseCase) GetAll(ctx context.Context) ([]dto.ProductView, error) {
	list, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toProductViews(list), nil
}

// GetByID obtiene un producto por ID; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (dto.ProductView, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductView(p), nil
}

// GetByCategory lista los productos de una categoría. Categoría desconocida => domain.ErrInvalidInput.
func (uc *ProductUseCase) GetByCategory(ctx context.Context, category string) ([]dto.ProductView, error) {
	c, ok := entity.ParseCategory(category)
	if !ok {
		return nil, fmt.Errorf("categoría %q: %w", category, domain.ErrInvalidInput)
	}
	list, err := uc.repo.GetByFilter(ctx, repository.ProductFilter{Category: &c})
	if err != nil {
		return nil, err
	}
	return toProductViews(list), nil
}

// GetByPriceLimit lista los productos con precio <= limit.
func (uc *ProductUseCase) GetByPriceLimit(ctx context.Context, limit decimal.Decimal) ([]dto.ProductView, error) {
	if limit.IsNegative() {
		return nil, fmt.Errorf("límite de precio negativo: %w", domain.ErrInvalidInput)
	}
	list, err := uc.repo.GetByFilter(ctx, repository.ProductFilter{MaxPrice: &limit})
	if err != nil {
		return nil, err
	}
	return toProductViews(list), nil
}

// Create valida y persiste un producto nuevo. Con violaciones no toca el almacenamiento.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (Result[string], error) {
	category := parseCategory(in.Category)
	props := toUniqueProperties(in.UniqueProperties)

	violations := validateProduct(category, in.Price, props)
	if len(violations) > 0 {
		uc.log.Debug().Strs("violations", violations).Msg("producto rechazado")
		return rejected[string](violations), nil
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	product := &entity.Product{
		ID:               uuid.New().String(),
		Title:            in.Title,
		Description:      in.Description,
		Price:            in.Price,
		Category:         category,
		IsActive:         active,
		UniqueProperties: catalog.NormalizeProperties(category, props),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return Result[string]{}, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("category", string(category)).Msg("producto creado")
	return success(product.ID), nil
}

// Update reemplaza un producto existente. Las violaciones de validación y la de
// inexistencia se reportan juntas.
func (uc *ProductUseCase) Update(ctx context.Context, in dto.UpdateProductRequest) (Result[struct{}], error) {
	category := parseCategory(in.Category)
	props := toUniqueProperties(in.UniqueProperties)

	violations := validateProduct(category, in.Price, props)

	current, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return Result[struct{}]{}, err
	}
	if current == nil {
		violations = append(violations, MsgProductNotFound)
	}
	if len(violations) > 0 {
		uc.log.Debug().Str("product_id", in.ID).Strs("violations", violations).Msg("actualización rechazada")
		return rejected[struct{}](violations), nil
	}

	active := current.IsActive
	if in.IsActive != nil {
		active = *in.IsActive
	}
	product := &entity.Product{
		ID:               current.ID,
		Title:            in.Title,
		Description:      in.Description,
		Price:            in.Price,
		Category:         category,
		IsActive:         active,
		UniqueProperties: catalog.NormalizeProperties(category, props),
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return Result[struct{}]{}, err
	}
	uc.log.Info().Str("product_id", product.ID).Msg("producto actualizado")
	return success(struct{}{}), nil
}

// Delete elimina un producto. Si no existe reporta la violación sin invocar el borrado.
// Los catálogos que lo referencian no se tocan.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (Result[struct{}], error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return Result[struct{}]{}, err
	}
	if current == nil {
		return rejected[struct{}]([]string{MsgProductNotFound}), nil
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return Result[struct{}]{}, err
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return success(struct{}{}), nil
}

// parseCategory normaliza el nombre; uno desconocido se conserva tal cual para que la validación lo rechace.
func parseCategory(raw string) entity.Category {
	c, _ := entity.ParseCategory(raw)
	return c
}

func validateProduct(category entity.Category, price decimal.Decimal, props entity.UniqueProperties) []string {
	violations := catalog.ValidateProduct(category, props)
	return append(violations, catalog.ValidatePrice(price)...)
}
