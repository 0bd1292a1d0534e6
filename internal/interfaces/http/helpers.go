package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/serviza/dotaciones-api/internal/application/dto"
	"github.com/serviza/dotaciones-api/internal/domain"
)

// errorStatus mapea los errores de dominio a códigos HTTP y de respuesta.
// 400 entradas malformadas, 404 referencias inexistentes, 409 conflictos de
// estado (suficiencia, concurrencia, histórico), 422 reglas de negocio del
// destinatario.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return fiber.StatusBadRequest, "INVALID_QUANTITY"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrProductNotFound):
		return fiber.StatusNotFound, "PRODUCT_NOT_FOUND"
	case errors.Is(err, domain.ErrMovementNotFound):
		return fiber.StatusNotFound, "MOVEMENT_NOT_FOUND"
	case errors.Is(err, domain.ErrHolderNotFound):
		return fiber.StatusNotFound, "HOLDER_NOT_FOUND"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrHolderRequirement):
		return fiber.StatusUnprocessableEntity, "HOLDER_REQUIREMENT"
	case errors.Is(err, domain.ErrHolderTypeMismatch):
		return fiber.StatusUnprocessableEntity, "HOLDER_TYPE_MISMATCH"
	case errors.Is(err, domain.ErrHolderInactive):
		return fiber.StatusUnprocessableEntity, "HOLDER_INACTIVE"
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrInsufficientHolderBalance):
		return fiber.StatusConflict, "INSUFFICIENT_HOLDER_BALANCE"
	case errors.Is(err, domain.ErrDeleteBreaksHistory):
		return fiber.StatusConflict, "DELETE_BREAKS_HISTORY"
	case errors.Is(err, domain.ErrCategoryLocked):
		return fiber.StatusConflict, "CATEGORY_LOCKED"
	case errors.Is(err, domain.ErrWriteConflict):
		return fiber.StatusConflict, "WRITE_CONFLICT"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// respondError escribe la respuesta de error con el mapeo de errorStatus.
func respondError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
