package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/serviza/dotaciones-api/internal/domain/entity"
	"github.com/serviza/dotaciones-api/internal/domain/repository"
)

var _ repository.ViewsRepository = (*ViewsRepo)(nil)

// ViewsRepo consultas de solo lectura para las vistas agregadas del módulo de
// dotación. Cada saldo es una agregación sobre supply_movements; nada se lee
// de un contador materializado.
type ViewsRepo struct {
	pool *pgxpool.Pool
}

// NewViewsRepository construye el adaptador de vistas.
func NewViewsRepository(pool *pgxpool.Pool) *ViewsRepo {
	return &ViewsRepo{pool: pool}
}

// StockByProduct tabla de existencias: todo producto activo con su saldo de bodega,
// incluidos los que están en cero.
func (r *ViewsRepo) StockByProduct(ctx context.Context) ([]repository.StockByProductRow, error) {
	const query = `
	SELECT
	    p.id, p.code, p.name, p.category,
	    COALESCE(SUM(
	        CASE WHEN m.kind IN ('PURCHASE', 'RETURN') THEN m.quantity
	             WHEN m.kind IN ('DELIVERY', 'DISPOSAL') THEN -m.quantity
	        END
	    ), 0) AS warehouse_balance
	FROM products p
	LEFT JOIN supply_movements m ON m.product_id = p.id
	WHERE p.active
	GROUP BY p.id, p.code, p.name, p.category
	ORDER BY p.code ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("views.StockByProduct: %w", err)
	}
	defer rows.Close()

	var results []repository.StockByProductRow
	for rows.Next() {
		var row repository.StockByProductRow
		if err := rows.Scan(&row.ProductID, &row.Code, &row.Name, &row.Category, &row.WarehouseBalance); err != nil {
			return nil, fmt.Errorf("views.StockByProduct scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// StockByPost resumen por puesto: suma de entregas menos devoluciones de todos
// los productos colectivos en manos del puesto. Un puesto sin saldo no es stock
// y se omite (HAVING > 0).
func (r *ViewsRepo) StockByPost(ctx context.Context) ([]repository.PostStockRow, error) {
	const query = `
	SELECT
	    ps.id, ps.name, ps.location,
	    SUM(CASE WHEN m.kind = 'DELIVERY' THEN m.quantity ELSE -m.quantity END) AS total_held
	FROM posts ps
	JOIN supply_movements m
	  ON m.holder_kind = 'POST' AND m.holder_id = ps.id
	 AND m.kind IN ('DELIVERY', 'RETURN')
	GROUP BY ps.id, ps.name, ps.location
	HAVING SUM(CASE WHEN m.kind = 'DELIVERY' THEN m.quantity ELSE -m.quantity END) > 0
	ORDER BY ps.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("views.StockByPost: %w", err)
	}
	defer rows.Close()

	var results []repository.PostStockRow
	for rows.Next() {
		var row repository.PostStockRow
		if err := rows.Scan(&row.PostID, &row.PostName, &row.Location, &row.TotalHeld); err != nil {
			return nil, fmt.Errorf("views.StockByPost scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// HolderHistory histórico de movimientos de un destinatario, fecha descendente.
func (r *ViewsRepo) HolderHistory(ctx context.Context, holder entity.Holder, limit, offset int) ([]repository.HolderHistoryRow, error) {
	const query = `
	SELECT m.id, m.product_id, p.code, p.name, m.kind, m.quantity, m.occurred_on, m.note
	FROM supply_movements m
	JOIN products p ON p.id = m.product_id
	WHERE m.holder_kind = $1 AND m.holder_id = $2
	ORDER BY m.occurred_on DESC, m.created_at DESC
	LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, query, string(holder.Kind), holder.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("views.HolderHistory: %w", err)
	}
	defer rows.Close()

	var results []repository.HolderHistoryRow
	for rows.Next() {
		var row repository.HolderHistoryRow
		if err := rows.Scan(&row.MovementID, &row.ProductID, &row.ProductCode, &row.ProductName,
			&row.Kind, &row.Quantity, &row.OccurredOn, &row.Note); err != nil {
			return nil, fmt.Errorf("views.HolderHistory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// PurchaseDisposalLog log plano de compras y bajas, filtrable por tipo y rango de fechas.
func (r *ViewsRepo) PurchaseDisposalLog(ctx context.Context, kind *entity.MovementKind, from, to *time.Time, limit, offset int) ([]repository.PurchaseLogRow, error) {
	query := `
	SELECT m.id, m.product_id, p.code, p.name, m.kind, m.quantity, m.occurred_on, m.note, m.unit_cost
	FROM supply_movements m
	JOIN products p ON p.id = m.product_id
	WHERE m.kind IN ('PURCHASE', 'DISPOSAL')`
	args := []any{}
	pos := 1
	if kind != nil {
		query += fmt.Sprintf(" AND m.kind = $%d", pos)
		args = append(args, string(*kind))
		pos++
	}
	if from != nil {
		query += fmt.Sprintf(" AND m.occurred_on >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND m.occurred_on <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY m.occurred_on DESC, m.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("views.PurchaseDisposalLog: %w", err)
	}
	defer rows.Close()

	var results []repository.PurchaseLogRow
	for rows.Next() {
		var row repository.PurchaseLogRow
		if err := rows.Scan(&row.MovementID, &row.ProductID, &row.ProductCode, &row.ProductName,
			&row.Kind, &row.Quantity, &row.OccurredOn, &row.Note, &row.UnitCost); err != nil {
			return nil, fmt.Errorf("views.PurchaseDisposalLog scan: %w", err)
		}
		if row.UnitCost != nil {
			total := row.UnitCost.Mul(decimal.NewFromInt(row.Quantity))
			row.TotalCost = &total
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
