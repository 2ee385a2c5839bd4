package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
)

// respondError normaliza cualquier error de la capa de aplicación al sobre
// ActionResult con el status HTTP que le corresponde. Los BusinessRuleError
// conservan su código estable; INSUFFICIENT_STOCK responde 409 porque es un
// conflicto con el estado actual del stock, el resto de reglas 422.
func respondError(c *fiber.Ctx, err error) error {
	if bre, ok := domain.AsBusinessRule(err); ok {
		status := fiber.StatusUnprocessableEntity
		if bre.Code == domain.CodeInsufficientStock {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(dto.Fail(bre.Code, bre.Message))
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "datos inválidos"))
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "recurso no encontrado"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("UNAUTHORIZED", "credenciales inválidas"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("FORBIDDEN", "acceso denegado"))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("EMAIL_EXISTS", "el email ya está registrado"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("DUPLICATE", "recurso duplicado"))
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("CONFLICT", "conflicto con el estado actual"))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
}
