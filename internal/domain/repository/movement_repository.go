package repository

import "github.com/serviza/dotaciones-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia del ledger de dotación.
// Los saldos no se almacenan: WarehouseBalance/HolderBalance son agregaciones
// sobre los movimientos y, dentro de una transacción, se leen con el mismo
// snapshot que la escritura que van a permitir o rechazar.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	Delete(id string) error

	// ListByProduct devuelve la historia completa del producto en orden de
	// reproducción (occurred_on, created_at ascendente).
	ListByProduct(productID string) ([]*entity.Movement, error)

	WarehouseBalance(productID string) (int64, error)
	HolderBalance(productID string, holder entity.Holder) (int64, error)

	// HasMovements indica si algún movimiento referencia al producto.
	// El catálogo lo usa para congelar la categoría.
	HasMovements(productID string) (bool, error)
}
