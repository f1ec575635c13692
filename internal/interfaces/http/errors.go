package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

const internalMessage = "error interno, intente más tarde"

// fail responde un error de caso de uso. Los errores de dominio se traducen a 4xx con su
// mensaje; cualquier otro se registra con detalle y se responde 500 genérico.
func fail(c *fiber.Ctx, log *logger.Logger, op string, err error) error {
	status, code := classify(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("op", op).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("fallo de dependencia")
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: internalMessage})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusBadRequest, "DUPLICATE"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// logDeleted deja constancia de quién eliminó el recurso :id.
func logDeleted(c *fiber.Ctx, log *logger.Logger, op string) {
	log.Info().
		Str("op", op).
		Str("id", c.Params("id")).
		Str("user_id", GetUserID(c)).
		Str("role", GetRole(c)).
		Msg("recurso eliminado")
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
