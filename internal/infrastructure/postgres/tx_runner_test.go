package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviza/dotaciones-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación de errores del driver y reintento acotado de transacciones.
// ──────────────────────────────────────────────────────────────────────────────

func TestIsRetryableTxError(t *testing.T) {
	assert.True(t, isRetryableTxError(&pgconn.PgError{Code: "40001"})) // serialization_failure
	assert.True(t, isRetryableTxError(&pgconn.PgError{Code: "40P01"})) // deadlock_detected

	assert.False(t, isRetryableTxError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isRetryableTxError(errors.New("conexión caída")))

	// Los repos envuelven los errores del driver con %w; la clasificación debe
	// ver a través del wrapping.
	wrapped := fmt.Errorf("create supply movement: %w", &pgconn.PgError{Code: "40001"})
	assert.True(t, isRetryableTxError(wrapped))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "40001"}))
	assert.False(t, isUniqueViolation(errors.New("otro error")))
}

func TestRunWithRetry_ExitoSinReintento(t *testing.T) {
	calls := 0
	err := runWithRetry(func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

// Los errores de validación del dominio no son fallas transitorias: salen tal
// cual en el primer intento.
func TestRunWithRetry_ErrorDeDominioNoSeReintenta(t *testing.T) {
	calls := 0
	err := runWithRetry(func() error {
		calls++
		return domain.ErrInsufficientStock
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 1, calls)
}

func TestRunWithRetry_RecuperaTrasConflictoTransitorio(t *testing.T) {
	calls := 0
	err := runWithRetry(func() error {
		calls++
		if calls == 1 {
			return &pgconn.PgError{Code: "40001"}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

// Agotados los intentos el conflicto se reporta como ErrWriteConflict, que el
// transporte traduce a 409.
func TestRunWithRetry_AgotaIntentosYReportaConflicto(t *testing.T) {
	calls := 0
	err := runWithRetry(func() error {
		calls++
		return &pgconn.PgError{Code: "40P01"}
	})
	assert.ErrorIs(t, err, domain.ErrWriteConflict)
	assert.Equal(t, maxTxAttempts, calls)
}
