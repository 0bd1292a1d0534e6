package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todos son recuperables: el caso de uso aborta la escritura y el caller decide el mensaje.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Ledger de dotación.
	ErrInvalidQuantity           = errors.New("cantidad inválida: debe ser un entero positivo")
	ErrProductNotFound           = errors.New("producto no encontrado")
	ErrMovementNotFound          = errors.New("movimiento no encontrado")
	ErrHolderRequirement         = errors.New("destinatario incompatible con el tipo de movimiento")
	ErrHolderTypeMismatch        = errors.New("tipo de destinatario incompatible con la categoría del producto")
	ErrHolderNotFound            = errors.New("empleado o puesto no encontrado")
	ErrHolderInactive            = errors.New("destinatario inactivo para nuevas entregas")
	ErrInsufficientStock         = errors.New("stock insuficiente en bodega")
	ErrInsufficientHolderBalance = errors.New("saldo insuficiente del destinatario para devolución")
	ErrDeleteBreaksHistory       = errors.New("eliminar el movimiento dejaría saldos negativos en el histórico")
	ErrCategoryLocked            = errors.New("la categoría no puede cambiar: el producto tiene movimientos")
	ErrWriteConflict             = errors.New("conflicto de escritura concurrente")
)
