package usecase

import (
	"strings"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// toProductView elige la variante de salida según la categoría del producto.
func toProductView(p *entity.Product) dto.ProductView {
	base := toProductResponse(p)
	switch p.Category {
	case entity.CategoryElectric:
		a := catalog.ElectricAttributesFrom(p.UniqueProperties)
		return &dto.ElectricProductResponse{ProductResponse: *base, Voltage: a.Voltage, SocketType: a.SocketType}
	case entity.CategoryFresh:
		a := catalog.FreshAttributesFrom(p.UniqueProperties)
		return &dto.FreshProductResponse{ProductResponse: *base, ExpiryDate: a.Raw}
	default:
		return base
	}
}

func toProductViews(list []*entity.Product) []dto.ProductView {
	out := make([]dto.ProductView, 0, len(list))
	for _, p := range list {
		out = append(out, toProductView(p))
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		Price:            p.Price,
		Category:         string(p.Category),
		IsActive:         p.IsActive,
		UniqueProperties: toUniquePropertyDTOs(p.UniqueProperties),
	}
}

func toUniquePropertyDTOs(props entity.UniqueProperties) []dto.UniquePropertyDTO {
	out := make([]dto.UniquePropertyDTO, 0, len(props))
	for _, p := range props {
		out = append(out, dto.UniquePropertyDTO{Name: p.Name, Value: p.Value})
	}
	return out
}

func toUniqueProperties(in []dto.UniquePropertyDTO) entity.UniqueProperties {
	if len(in) == 0 {
		return nil
	}
	out := make(entity.UniqueProperties, 0, len(in))
	for _, p := range in {
		out = append(out, entity.UniqueProperty{Name: strings.TrimSpace(p.Name), Value: p.Value})
	}
	return out
}

func toCatalogResponse(c *entity.Catalog, products []*entity.Product) *dto.CatalogResponse {
	return &dto.CatalogResponse{
		ID:       c.ID,
		Title:    c.Title,
		Products: toProductViews(products),
	}
}
