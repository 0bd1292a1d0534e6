package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/serviza/dotaciones-api/internal/domain/entity"
	"github.com/serviza/dotaciones-api/internal/domain/repository"
)

var _ repository.PostRepository = (*PostRepo)(nil)

// PostRepo lectura de puestos de trabajo desde las tablas del módulo de supervisión.
// El ledger nunca escribe aquí.
type PostRepo struct {
	pool *pgxpool.Pool
}

// NewPostRepository construye el adaptador de lectura de puestos.
func NewPostRepository(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

// GetByID obtiene un puesto por ID. Devuelve nil si no existe.
func (r *PostRepo) GetByID(id string) (*entity.Post, error) {
	query := `SELECT id, name, location, active FROM posts WHERE id = $1`
	var p entity.Post
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Location, &p.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &p, nil
}
