package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/serviza/dotaciones-api/internal/domain"
)

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidQuantity, fiber.StatusBadRequest, "INVALID_QUANTITY"},
		{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{domain.ErrProductNotFound, fiber.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{domain.ErrMovementNotFound, fiber.StatusNotFound, "MOVEMENT_NOT_FOUND"},
		{domain.ErrHolderNotFound, fiber.StatusNotFound, "HOLDER_NOT_FOUND"},
		{domain.ErrHolderRequirement, fiber.StatusUnprocessableEntity, "HOLDER_REQUIREMENT"},
		{domain.ErrHolderTypeMismatch, fiber.StatusUnprocessableEntity, "HOLDER_TYPE_MISMATCH"},
		{domain.ErrHolderInactive, fiber.StatusUnprocessableEntity, "HOLDER_INACTIVE"},
		{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{domain.ErrInsufficientHolderBalance, fiber.StatusConflict, "INSUFFICIENT_HOLDER_BALANCE"},
		{domain.ErrDeleteBreaksHistory, fiber.StatusConflict, "DELETE_BREAKS_HISTORY"},
		{domain.ErrCategoryLocked, fiber.StatusConflict, "CATEGORY_LOCKED"},
		{domain.ErrWriteConflict, fiber.StatusConflict, "WRITE_CONFLICT"},
		{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{errors.New("algo inesperado"), fiber.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		status, code := errorStatus(tc.err)
		assert.Equal(t, tc.status, status, tc.code)
		assert.Equal(t, tc.code, code, tc.code)
	}
}

// Los errores envueltos con %w conservan su mapeo.
func TestErrorStatus_ErrorEnvuelto(t *testing.T) {
	wrapped := fmt.Errorf("%w: occurred_on", domain.ErrInvalidInput)
	status, code := errorStatus(wrapped)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", code)
}
