package dto

import (
	"github.com/shopspring/decimal"
)

// UniquePropertyDTO par nombre/valor de atributos propios.
type UniquePropertyDTO struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CreateProductRequest entrada para crear un producto.
// IsActive es opcional; si no viene, el producto se crea activo.
type CreateProductRequest struct {
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Price            decimal.Decimal     `json:"price"`
	Category         string              `json:"category"`
	IsActive         *bool               `json:"is_active"`
	UniqueProperties []UniquePropertyDTO `json:"unique_properties"`
}

// UpdateProductRequest reemplazo completo de un producto existente.
type UpdateProductRequest struct {
	ID               string              `json:"-"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Price            decimal.Decimal     `json:"price"`
	Category         string              `json:"category"`
	IsActive         *bool               `json:"is_active"`
	UniqueProperties []UniquePropertyDTO `json:"unique_properties"`
}

// ProductView salida de producto; la variante concreta depende de la categoría.
type ProductView interface {
	Base() *ProductResponse
}

// ProductResponse salida genérica de un producto.
type ProductResponse struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Price            decimal.Decimal     `json:"price"`
	Category         string              `json:"category"`
	IsActive         bool                `json:"is_active"`
	UniqueProperties []UniquePropertyDTO `json:"unique_properties"`
}

// Base devuelve los campos comunes.
func (r *ProductResponse) Base() *ProductResponse { return r }

// ElectricProductResponse producto eléctrico con Voltage y SocketType proyectados.
type ElectricProductResponse struct {
	ProductResponse
	Voltage    string `json:"voltage"`
	SocketType string `json:"socket_type"`
}

// FreshProductResponse producto fresco con ExpiryDate proyectado.
type FreshProductResponse struct {
	ProductResponse
	ExpiryDate string `json:"expiry_date"`
}
