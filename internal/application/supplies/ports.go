package supplies

import (
	"context"

	"github.com/serviza/dotaciones-api/internal/domain/entity"
	"github.com/serviza/dotaciones-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que la verificación de saldo y el append del movimiento
// sean una sola unidad atómica; sin esto la secuencia leer-verificar-escribir
// reintroduce la carrera que rompe el invariante de saldos no negativos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptGenerator genera el acta de entrega en PDF para un movimiento de entrega.
type ReceiptGenerator interface {
	GenerateDeliveryReceipt(ctx context.Context, mov *entity.Movement, product *entity.Product, holderName string) ([]byte, error)
}
