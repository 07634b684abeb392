package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// violations responde 400 con la lista completa de violaciones de negocio.
func violations(c *fiber.Ctx, list []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ViolationsResponse{Errors: list})
}

// readError traduce el error de una lectura: not found => 404, resto => 500.
func readError(c *fiber.Ctx, log *logger.Logger, err error, notFoundMsg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMsg})
	}
	return internalError(c, log, err)
}

// msgInternal mensaje fijo para el cliente; el detalle solo va al log.
const msgInternal = "error interno del servidor"

// internalError fallos de almacenamiento: se registran completos y se devuelven como 500 genérico.
func internalError(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msgInternal})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
