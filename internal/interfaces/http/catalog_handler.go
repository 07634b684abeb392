package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// CatalogHandler maneja las peticiones HTTP para Catalog (protegido).
type CatalogHandler struct {
	uc  *usecase.CatalogUseCase
	log *logger.Logger
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar catálogos con sus productos
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CatalogResponse
// @Router       /api/catalogs [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetCatalogs(c.UserContext())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener catálogo por ID
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del catálogo"
// @Success      200  {object}  dto.CatalogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogs/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetCatalogByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return readError(c, h.log, err, "catálogo no encontrado")
	}
	return c.JSON(out)
}

// GetByProductID godoc
// @Summary      Primer catálogo que contiene el producto
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.CatalogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogs/product/{productId} [get]
func (h *CatalogHandler) GetByProductID(c *fiber.Ctx) error {
	out, err := h.uc.GetCatalogByProductID(c.UserContext(), c.Params("productId"))
	if err != nil {
		return readError(c, h.log, err, "ningún catálogo contiene el producto")
	}
	return c.JSON(out)
}

// ListByProductID godoc
// @Summary      Todos los catálogos que contienen el producto
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}   dto.CatalogResponse
// @Router       /api/catalogs/product/{productId}/all [get]
func (h *CatalogHandler) ListByProductID(c *fiber.Ctx) error {
	out, err := h.uc.GetCatalogsByProductID(c.UserContext(), c.Params("productId"))
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear catálogo
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CatalogRequest  true  "Título y IDs de producto"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ViolationsResponse
// @Router       /api/catalogs [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CatalogRequest
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
// @Summary      Reemplazar catálogo
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del catálogo"
// @Param        body  body  dto.CatalogRequest  true  "Título y IDs de producto"
// @Success      204
// @Failure      400   {object}  dto.ViolationsResponse
// @Router       /api/catalogs/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	var in dto.CatalogRequest
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
// @Summary      Eliminar catálogo
// @Tags         catalogs
// @Security     Bearer
// @Param        id   path  string  true  "ID del catálogo"
// @Success      204
// @Failure      400  {object}  dto.ViolationsResponse
// @Router       /api/catalogs/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	res, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return internalError(c, h.log, err)
	}
	if !res.OK() {
		return violations(c, res.Violations)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
