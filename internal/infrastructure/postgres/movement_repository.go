package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/serviza/dotaciones-api/internal/domain"
	"github.com/serviza/dotaciones-api/internal/domain/entity"
	"github.com/serviza/dotaciones-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// La tabla supply_movements es append-only: no existe UPDATE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, product_id, kind, quantity, occurred_on, holder_kind, holder_id, note, unit_cost, created_at, created_by`

// Create persiste un movimiento del ledger.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO supply_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	holderKind := (*string)(nil)
	holderID := (*string)(nil)
	if !movement.Holder.IsZero() {
		k := string(movement.Holder.Kind)
		holderKind = &k
		holderID = &movement.Holder.ID
	}
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}

	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Kind, movement.Quantity,
		movement.OccurredOn, holderKind, holderID, movement.Note,
		movement.UnitCost, movement.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create supply movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM supply_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Delete elimina un hecho del ledger. Los saldos se recalculan solos en la
// siguiente lectura: no hay contador que corregir.
func (r *MovementRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM supply_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMovementNotFound
	}
	return nil
}

// ListByProduct historia completa del producto en orden de reproducción.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM supply_movements
		WHERE product_id = $1
		ORDER BY occurred_on ASC, created_at ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list by product: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// WarehouseBalance saldo de bodega del producto:
// compras + devoluciones - entregas - bajas. Sin movimientos devuelve 0.
func (r *MovementRepo) WarehouseBalance(productID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE WHEN kind IN ('PURCHASE', 'RETURN') THEN quantity ELSE -quantity END
		), 0)
		FROM supply_movements
		WHERE product_id = $1`
	var balance int64
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("warehouse balance: %w", err)
	}
	return balance, nil
}

// HolderBalance saldo en manos del destinatario: entregas - devoluciones.
func (r *MovementRepo) HolderBalance(productID string, holder entity.Holder) (int64, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE WHEN kind = 'DELIVERY' THEN quantity ELSE -quantity END
		), 0)
		FROM supply_movements
		WHERE product_id = $1 AND holder_kind = $2 AND holder_id = $3
		  AND kind IN ('DELIVERY', 'RETURN')`
	var balance int64
	err := r.q.QueryRow(context.Background(), query, productID, string(holder.Kind), holder.ID).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("holder balance: %w", err)
	}
	return balance, nil
}

// HasMovements indica si el producto aparece en el ledger.
func (r *MovementRepo) HasMovements(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM supply_movements WHERE product_id = $1)`, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has movements: %w", err)
	}
	return exists, nil
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var holderKind, holderID, createdBy *string
	err := row.Scan(
		&m.ID, &m.ProductID, &m.Kind, &m.Quantity, &m.OccurredOn,
		&holderKind, &holderID, &m.Note, &m.UnitCost, &m.CreatedAt, &createdBy,
	)
	if err != nil {
		return nil, err
	}
	if holderKind != nil && holderID != nil {
		m.Holder = entity.Holder{Kind: entity.HolderKind(*holderKind), ID: *holderID}
	}
	if createdBy != nil {
		m.CreatedBy = *createdBy
	}
	return &m, nil
}

func collectMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
