package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/supplies/movements.
// employee_id y post_id son mutuamente excluyentes; obligatorio uno de los dos para
// DELIVERY/RETURN, ninguno para PURCHASE/DISPOSAL. occurred_on con formato 2006-01-02
// (vacío = hoy). unit_cost solo aplica a compras.
type RegisterMovementRequest struct {
	ProductID           string           `json:"product_id"`
	Kind                string           `json:"kind"`
	Quantity            int64            `json:"quantity"`
	OccurredOn          string           `json:"occurred_on,omitempty"`
	EmployeeID          string           `json:"employee_id,omitempty"`
	PostID              string           `json:"post_id,omitempty"`
	Note                string           `json:"note,omitempty"`
	UnitCost            *decimal.Decimal `json:"unit_cost,omitempty"`
	AllowInactiveHolder bool             `json:"allow_inactive_holder,omitempty"`
}

// MovementCreatedResponse respuesta de creación de movimiento.
type MovementCreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// StockRowDTO fila de la tabla de existencias.
type StockRowDTO struct {
	ProductID        string `json:"product_id"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	WarehouseBalance int64  `json:"warehouse_balance"`
}

// PostStockDTO fila del resumen de dotación por puesto.
type PostStockDTO struct {
	PostID    string `json:"post_id"`
	PostName  string `json:"post_name"`
	Location  string `json:"location,omitempty"`
	TotalHeld int64  `json:"total_held"`
}

// HolderMovementDTO entrada del histórico de un destinatario (orden: fecha descendente).
type HolderMovementDTO struct {
	MovementID  string    `json:"movement_id"`
	ProductID   string    `json:"product_id"`
	ProductCode string    `json:"product_code"`
	ProductName string    `json:"product_name"`
	Kind        string    `json:"kind"`
	Quantity    int64     `json:"quantity"`
	OccurredOn  time.Time `json:"occurred_on"`
	Note        string    `json:"note,omitempty"`
}

// PurchaseLogDTO entrada del log de compras y bajas.
type PurchaseLogDTO struct {
	MovementID  string           `json:"movement_id"`
	ProductID   string           `json:"product_id"`
	ProductCode string           `json:"product_code"`
	ProductName string           `json:"product_name"`
	Kind        string           `json:"kind"`
	Quantity    int64            `json:"quantity"`
	OccurredOn  time.Time        `json:"occurred_on"`
	Note        string           `json:"note,omitempty"`
	UnitCost    *decimal.Decimal `json:"unit_cost,omitempty"`
	TotalCost   *decimal.Decimal `json:"total_cost,omitempty"`
}

// BalanceResponse respuesta de consulta puntual de saldo.
type BalanceResponse struct {
	ProductID string `json:"product_id"`
	Holder    string `json:"holder,omitempty"`
	Balance   int64  `json:"balance"`
}
