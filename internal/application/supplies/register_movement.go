package supplies

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/serviza/dotaciones-api/internal/domain"
	"github.com/serviza/dotaciones-api/internal/domain/entity"
	"github.com/serviza/dotaciones-api/internal/domain/repository"
)

// RegisterMovementUseCase valida y registra movimientos del ledger de dotación
// (PURCHASE, DELIVERY, RETURN, DISPOSAL) de forma transaccional: la fila del
// producto se bloquea (SELECT FOR UPDATE), los saldos se leen dentro de la misma
// transacción y el movimiento solo se inserta si la suficiencia se cumple.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	employeeRepo repository.EmployeeRepository
	postRepo     repository.PostRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	employeeRepo repository.EmployeeRepository,
	postRepo repository.PostRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		employeeRepo: employeeRepo,
		postRepo:     postRepo,
	}
}

// MovementInput entrada para registrar un movimiento.
// Holder vacío para PURCHASE/DISPOSAL, obligatorio para DELIVERY/RETURN.
// AllowInactiveHolder: el destinatario inactivo como destino de una entrega se
// rechaza salvo que el caller lo autorice explícitamente (política del caller,
// no del núcleo).
type MovementInput struct {
	ProductID           string
	Kind                entity.MovementKind
	Quantity            int64
	OccurredOn          time.Time
	Holder              entity.Holder
	Note                string
	UnitCost            *decimal.Decimal
	AllowInactiveHolder bool
	UserID              string
}

// RegisterMovement aplica las precondiciones en orden (cantidad, producto,
// presencia y tipo de destinatario, existencia del destinatario, suficiencia)
// y persiste el movimiento. Devuelve el ID del movimiento creado.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (string, error) {
	if !input.Kind.Valid() {
		return "", domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return "", domain.ErrInvalidQuantity
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrProductNotFound
	}

	// Presencia del destinatario según el tipo de movimiento.
	if input.Kind.RequiresHolder() == input.Holder.IsZero() {
		return "", domain.ErrHolderRequirement
	}

	if input.Kind.RequiresHolder() {
		// Compatibilidad destinatario/categoría antes de resolver la referencia.
		if !input.Holder.MatchesCategory(product.Category) {
			return "", domain.ErrHolderTypeMismatch
		}
		if err := uc.resolveHolder(input); err != nil {
			return "", err
		}
	}

	if input.UnitCost != nil {
		if input.Kind != entity.MovementKindPurchase || input.UnitCost.IsNegative() {
			return "", domain.ErrInvalidInput
		}
	}

	// Por defecto la fecha del movimiento es el día calendario local, no el día
	// UTC: truncar el instante desplazaría la fecha en horarios de la tarde.
	occurredOn := input.OccurredOn
	if occurredOn.IsZero() {
		y, m, d := time.Now().Date()
		occurredOn = time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	}

	mov := &entity.Movement{
		ID:         uuid.New().String(),
		ProductID:  input.ProductID,
		Kind:       input.Kind,
		Quantity:   input.Quantity,
		OccurredOn: occurredOn,
		Holder:     input.Holder,
		Note:       input.Note,
		UnitCost:   input.UnitCost,
		CreatedAt:  time.Now(),
		CreatedBy:  input.UserID,
	}

	// Verificación de suficiencia + append: una sola unidad atómica.
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Serializa todas las escrituras del ledger sobre este producto.
		locked, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrProductNotFound
		}

		switch input.Kind {
		case entity.MovementKindDelivery, entity.MovementKindDisposal:
			balance, err := movRepo.WarehouseBalance(input.ProductID)
			if err != nil {
				return err
			}
			if balance < input.Quantity {
				return domain.ErrInsufficientStock
			}
		case entity.MovementKindReturn:
			balance, err := movRepo.HolderBalance(input.ProductID, input.Holder)
			if err != nil {
				return err
			}
			if balance < input.Quantity {
				return domain.ErrInsufficientHolderBalance
			}
		case entity.MovementKindPurchase:
			// Las compras no tienen verificación de suficiencia.
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return "", err
	}
	return mov.ID, nil
}

// resolveHolder verifica que la referencia del destinatario exista y, para
// entregas, que esté activo (salvo autorización explícita del caller).
func (uc *RegisterMovementUseCase) resolveHolder(input MovementInput) error {
	var active bool
	switch input.Holder.Kind {
	case entity.HolderKindEmployee:
		emp, err := uc.employeeRepo.GetByID(input.Holder.ID)
		if err != nil {
			return err
		}
		if emp == nil {
			return domain.ErrHolderNotFound
		}
		active = emp.Active
	case entity.HolderKindPost:
		post, err := uc.postRepo.GetByID(input.Holder.ID)
		if err != nil {
			return err
		}
		if post == nil {
			return domain.ErrHolderNotFound
		}
		active = post.Active
	default:
		return domain.ErrHolderRequirement
	}

	// Un destinatario inactivo puede devolver lo que aún tiene, pero no recibir.
	if input.Kind == entity.MovementKindDelivery && !active && !input.AllowInactiveHolder {
		return domain.ErrHolderInactive
	}
	return nil
}
