package supplies

import (
	"context"
	"time"

	"github.com/serviza/dotaciones-api/internal/application/dto"
	"github.com/serviza/dotaciones-api/internal/domain"
	"github.com/serviza/dotaciones-api/internal/domain/entity"
	"github.com/serviza/dotaciones-api/internal/domain/repository"
)

// ViewsUseCase expone las vistas agregadas del módulo de dotación:
// existencias por producto, resumen por puesto, histórico por destinatario y
// log de compras/bajas. Solo lectura.
type ViewsUseCase struct {
	viewsRepo repository.ViewsRepository
	movRepo   repository.MovementRepository
}

// NewViewsUseCase construye el caso de uso.
func NewViewsUseCase(viewsRepo repository.ViewsRepository, movRepo repository.MovementRepository) *ViewsUseCase {
	return &ViewsUseCase{viewsRepo: viewsRepo, movRepo: movRepo}
}

// StockByProduct tabla de existencias: todo producto activo con su saldo de bodega.
func (uc *ViewsUseCase) StockByProduct(ctx context.Context) ([]dto.StockRowDTO, error) {
	rows, err := uc.viewsRepo.StockByProduct(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockRowDTO{
			ProductID:        r.ProductID,
			Code:             r.Code,
			Name:             r.Name,
			Category:         string(r.Category),
			WarehouseBalance: r.WarehouseBalance,
		})
	}
	return out, nil
}

// StockByPost resumen por puesto: total en manos de cada puesto con saldo > 0.
func (uc *ViewsUseCase) StockByPost(ctx context.Context) ([]dto.PostStockDTO, error) {
	rows, err := uc.viewsRepo.StockByPost(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PostStockDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PostStockDTO{
			PostID:    r.PostID,
			PostName:  r.PostName,
			Location:  r.Location,
			TotalHeld: r.TotalHeld,
		})
	}
	return out, nil
}

// HolderHistory histórico de movimientos de un empleado o puesto, fecha descendente.
func (uc *ViewsUseCase) HolderHistory(ctx context.Context, holder entity.Holder, page dto.PageRequest) ([]dto.HolderMovementDTO, error) {
	if holder.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	rows, err := uc.viewsRepo.HolderHistory(ctx, holder, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HolderMovementDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.HolderMovementDTO{
			MovementID:  r.MovementID,
			ProductID:   r.ProductID,
			ProductCode: r.ProductCode,
			ProductName: r.ProductName,
			Kind:        string(r.Kind),
			Quantity:    r.Quantity,
			OccurredOn:  r.OccurredOn,
			Note:        r.Note,
		})
	}
	return out, nil
}

// PurchaseDisposalLog log plano de compras y bajas, filtrable por tipo y rango de fechas.
func (uc *ViewsUseCase) PurchaseDisposalLog(ctx context.Context, kind *entity.MovementKind, from, to *time.Time, page dto.PageRequest) ([]dto.PurchaseLogDTO, error) {
	if kind != nil && *kind != entity.MovementKindPurchase && *kind != entity.MovementKindDisposal {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	rows, err := uc.viewsRepo.PurchaseDisposalLog(ctx, kind, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseLogDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PurchaseLogDTO{
			MovementID:  r.MovementID,
			ProductID:   r.ProductID,
			ProductCode: r.ProductCode,
			ProductName: r.ProductName,
			Kind:        string(r.Kind),
			Quantity:    r.Quantity,
			OccurredOn:  r.OccurredOn,
			Note:        r.Note,
			UnitCost:    r.UnitCost,
			TotalCost:   r.TotalCost,
		})
	}
	return out, nil
}

// WarehouseBalance consulta puntual del saldo de bodega de un producto.
func (uc *ViewsUseCase) WarehouseBalance(productID string) (int64, error) {
	return uc.movRepo.WarehouseBalance(productID)
}

// HolderBalance consulta puntual del saldo de un destinatario para un producto.
func (uc *ViewsUseCase) HolderBalance(productID string, holder entity.Holder) (int64, error) {
	if holder.IsZero() {
		return 0, domain.ErrInvalidInput
	}
	return uc.movRepo.HolderBalance(productID, holder)
}
