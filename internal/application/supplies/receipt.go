package supplies

import (
	"context"

	"github.com/serviza/dotaciones-api/internal/domain"
	"github.com/serviza/dotaciones-api/internal/domain/entity"
	"github.com/serviza/dotaciones-api/internal/domain/repository"
)

// ReceiptUseCase genera el acta de entrega en PDF de un movimiento DELIVERY,
// para firma del empleado o del responsable del puesto.
type ReceiptUseCase struct {
	movRepo      repository.MovementRepository
	productRepo  repository.ProductRepository
	employeeRepo repository.EmployeeRepository
	postRepo     repository.PostRepository
	generator    ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	employeeRepo repository.EmployeeRepository,
	postRepo repository.PostRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		movRepo:      movRepo,
		productRepo:  productRepo,
		employeeRepo: employeeRepo,
		postRepo:     postRepo,
		generator:    generator,
	}
}

// DeliveryReceipt devuelve los bytes del PDF del acta de entrega.
// Solo los movimientos DELIVERY tienen acta.
func (uc *ReceiptUseCase) DeliveryReceipt(ctx context.Context, movementID string) ([]byte, error) {
	mov, err := uc.movRepo.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrMovementNotFound
	}
	if mov.Kind != entity.MovementKindDelivery {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(mov.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	holderName, err := uc.holderName(mov.Holder)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateDeliveryReceipt(ctx, mov, product, holderName)
}

func (uc *ReceiptUseCase) holderName(h entity.Holder) (string, error) {
	switch h.Kind {
	case entity.HolderKindEmployee:
		emp, err := uc.employeeRepo.GetByID(h.ID)
		if err != nil {
			return "", err
		}
		if emp == nil {
			return "", domain.ErrHolderNotFound
		}
		return emp.FullName, nil
	case entity.HolderKindPost:
		post, err := uc.postRepo.GetByID(h.ID)
		if err != nil {
			return "", err
		}
		if post == nil {
			return "", domain.ErrHolderNotFound
		}
		return post.Name, nil
	}
	return "", domain.ErrHolderRequirement
}
