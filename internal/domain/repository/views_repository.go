package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/serviza/dotaciones-api/internal/domain/entity"
)

// StockByProductRow fila de la tabla de existencias por producto.
type StockByProductRow struct {
	ProductID        string
	Code             string
	Name             string
	Category         entity.ProductCategory
	WarehouseBalance int64
}

// PostStockRow fila del resumen de dotación por puesto. Solo puestos con saldo > 0.
type PostStockRow struct {
	PostID    string
	PostName  string
	Location  string
	TotalHeld int64
}

// HolderHistoryRow entrada del histórico de movimientos de un destinatario.
type HolderHistoryRow struct {
	MovementID  string
	ProductID   string
	ProductCode string
	ProductName string
	Kind        entity.MovementKind
	Quantity    int64
	OccurredOn  time.Time
	Note        string
}

// PurchaseLogRow entrada del log de compras y bajas.
type PurchaseLogRow struct {
	MovementID  string
	ProductID   string
	ProductCode string
	ProductName string
	Kind        entity.MovementKind
	Quantity    int64
	OccurredOn  time.Time
	Note        string
	UnitCost    *decimal.Decimal // solo compras que lo registraron
	TotalCost   *decimal.Decimal // quantity * unit_cost
}

// ViewsRepository consultas de solo lectura para las vistas agregadas del módulo.
// Todas son idempotentes: dos lecturas sin escrituras intermedias devuelven lo mismo.
type ViewsRepository interface {
	StockByProduct(ctx context.Context) ([]StockByProductRow, error)
	StockByPost(ctx context.Context) ([]PostStockRow, error)
	HolderHistory(ctx context.Context, holder entity.Holder, limit, offset int) ([]HolderHistoryRow, error)
	PurchaseDisposalLog(ctx context.Context, kind *entity.MovementKind, from, to *time.Time, limit, offset int) ([]PurchaseLogRow, error)
}
