package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return readError(c, h.log, err, "producto no encontrado")
	}
	return c.JSON(out)
}

// GetByCategory godoc
// @Summary      Listar productos por categoría
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        category  path  string  true  "Generic | Electric | Fresh"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/category/{category} [get]
func (h *ProductHandler) GetByCategory(c *fiber.Ctx) error {
	out, err := h.uc.GetByCategory(c.UserContext(), c.Params("category"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CATEGORY", Message: invalidCategoryMsg()})
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByPriceLimit godoc
// @Summary      Listar productos con precio menor o igual al límite
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        priceLimit  path  number  true  "Precio máximo (inclusivo)"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/price/{priceLimit} [get]
func (h *ProductHandler) GetByPriceLimit(c *fiber.Ctx) error {
	limit, err := decimal.NewFromString(c.Params("priceLimit"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PRICE", Message: "límite de precio inválido"})
	}
	out, err := h.uc.GetByPriceLimit(c.UserContext(), limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PRICE", Message: "límite de precio negativo"})
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ViolationsResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return internalError(c, h.log, err)
	}
	if !res.OK() {
		return violations(c, res.Violations)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: res.Value})
}

// Update godoc
// @Summary      Reemplazar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Producto completo"
// @Success      204
// @Failure      400   {object}  dto.ViolationsResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	in.ID = c.Params("id")
	res, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return internalError(c, h.log, err)
	}
	if !res.OK() {
		return violations(c, res.Violations)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      400  {object}  dto.ViolationsResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	res, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return internalError(c, h.log, err)
	}
	if !res.OK() {
		return violations(c, res.Violations)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// invalidCategoryMsg enumera las categorías aceptadas.
func invalidCategoryMsg() string {
	names := make([]string, 0, len(entity.Categories))
	for _, c := range entity.Categories {
		names = append(names, string(c))
	}
	return "categoría desconocida; válidas: " + strings.Join(names, ", ")
}
