package supplies

import (
	"context"

	"github.com/serviza/dotaciones-api/internal/domain"
	"github.com/serviza/dotaciones-api/internal/domain/ledger"
	"github.com/serviza/dotaciones-api/internal/domain/repository"
)

// DeleteMovementUseCase elimina un movimiento del ledger. La eliminación se
// rechaza si reproducir la historia restante del producto en orden cronológico
// dejaría algún saldo negativo en un punto intermedio: por ejemplo, borrar la
// compra que habilitó una entrega ya registrada.
type DeleteMovementUseCase struct {
	txRunner TxRunner
}

// NewDeleteMovementUseCase construye el caso de uso.
func NewDeleteMovementUseCase(txRunner TxRunner) *DeleteMovementUseCase {
	return &DeleteMovementUseCase{txRunner: txRunner}
}

// DeleteMovement elimina el movimiento indicado bajo el mismo bloqueo por
// producto que usan las escrituras, de modo que la verificación de reproducción
// y el DELETE sean atómicos frente a registros concurrentes.
func (uc *DeleteMovementUseCase) DeleteMovement(ctx context.Context, movementID string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		mov, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrMovementNotFound
		}

		if _, err := productRepo.GetForUpdate(mov.ProductID); err != nil {
			return err
		}

		history, err := movRepo.ListByProduct(mov.ProductID)
		if err != nil {
			return err
		}
		remaining := history[:0:0]
		for _, m := range history {
			if m.ID != movementID {
				remaining = append(remaining, m)
			}
		}
		if err := ledger.CheckReplay(remaining); err != nil {
			return domain.ErrDeleteBreaksHistory
		}
		return movRepo.Delete(movementID)
	})
}
