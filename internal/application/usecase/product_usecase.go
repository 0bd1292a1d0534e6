package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/serviza/dotaciones-api/internal/application/supplies"
	"github.com/serviza/dotaciones-api/internal/domain"
	"github.com/serviza/dotaciones-api/internal/domain/entity"
	"github.com/serviza/dotaciones-api/internal/domain/repository"
)

// ProductUseCase gestiona el catálogo de productos de dotación. El código
// visible se deriva de los campos de texto libre; la categoría queda congelada
// en cuanto el ledger registra movimientos del producto.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	txRunner    supplies.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, txRunner supplies.TxRunner) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, txRunner: txRunner}
}

// Create registra un producto nuevo en el catálogo.
func (uc *ProductUseCase) Create(name, detail string, category entity.ProductCategory) (*entity.Product, error) {
	if name == "" || !category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Code:      entity.DeriveCode(name, detail),
		Name:      name,
		Detail:    detail,
		Category:  category,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto del catálogo.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// List lista el catálogo.
func (uc *ProductUseCase) List(onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(onlyActive, limit, offset)
}

// Update modifica los atributos descriptivos y re-deriva el código. Cambiar la
// categoría solo se permite mientras ningún movimiento referencie al producto;
// la verificación y la escritura corren bajo el lock de la fila del producto,
// igual que los registros del ledger, para que un movimiento concurrente no se
// cuele entre ambas.
func (uc *ProductUseCase) Update(id, name, detail string, category entity.ProductCategory) (*entity.Product, error) {
	if name == "" || !category.Valid() {
		return nil, domain.ErrInvalidInput
	}

	var product *entity.Product
	err := uc.txRunner.Run(context.Background(), func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		var err error
		product, err = productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		if category != product.Category {
			has, err := movRepo.HasMovements(id)
			if err != nil {
				return err
			}
			if has {
				return domain.ErrCategoryLocked
			}
			product.Category = category
		}

		product.Name = name
		product.Detail = detail
		product.Code = entity.DeriveCode(name, detail)
		product.UpdatedAt = time.Now()
		return productRepo.Update(product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Deactivate desactiva el producto (no se borra: el histórico lo referencia).
func (uc *ProductUseCase) Deactivate(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	return uc.productRepo.Deactivate(id)
}
