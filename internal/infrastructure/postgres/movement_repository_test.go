package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviza/dotaciones-api/internal/domain"
)

// stubQuerier responde Exec con un CommandTag fijo; suficiente para ejercitar
// los caminos que solo miran filas afectadas.
type stubQuerier struct {
	tag pgconn.CommandTag
}

func (q *stubQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return q.tag, nil
}

func (q *stubQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (q *stubQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

// Borrar un movimiento inexistente debe reportarse con el error del dominio,
// no con el centinela del driver: los handlers solo mapean errores del dominio.
func TestMovementDelete_InexistenteDevuelveErrorDeDominio(t *testing.T) {
	repo := NewMovementRepository(&stubQuerier{tag: pgconn.NewCommandTag("DELETE 0")})

	err := repo.Delete("mov-fantasma")
	assert.ErrorIs(t, err, domain.ErrMovementNotFound)
}

func TestMovementDelete_ConFilaAfectada(t *testing.T) {
	repo := NewMovementRepository(&stubQuerier{tag: pgconn.NewCommandTag("DELETE 1")})

	require.NoError(t, repo.Delete("mov-1"))
}
