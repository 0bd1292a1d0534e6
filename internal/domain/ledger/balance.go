// Package ledger contiene la semántica canónica de saldos del módulo de dotación:
// un saldo nunca se almacena, siempre es un fold sobre los movimientos registrados.
// Los adaptadores SQL deben producir exactamente estos resultados.
package ledger

import (
	"sort"

	"github.com/serviza/dotaciones-api/internal/domain"
	"github.com/serviza/dotaciones-api/internal/domain/entity"
)

// WarehouseBalance calcula el saldo de bodega de un producto:
// Σ compras + Σ devoluciones − Σ entregas − Σ bajas. Sin movimientos el saldo es 0.
func WarehouseBalance(movs []*entity.Movement, productID string) int64 {
	var total int64
	for _, m := range movs {
		if m.ProductID == productID {
			total += m.WarehouseDelta()
		}
	}
	return total
}

// HolderBalance calcula el saldo en manos de un destinatario:
// Σ entregas al destinatario − Σ devoluciones del destinatario.
func HolderBalance(movs []*entity.Movement, productID string, h entity.Holder) int64 {
	var total int64
	for _, m := range movs {
		if m.ProductID == productID && m.Holder == h {
			total += m.HolderDelta()
		}
	}
	return total
}

// CheckReplay reproduce los movimientos de un producto en orden cronológico
// (occurred_on, created_at) y verifica que ningún saldo (bodega o destinatario)
// sea negativo en ningún punto intermedio. Se usa para decidir si un movimiento
// puede eliminarse: basta pasar la historia restante sin él.
//
// Devuelve ErrInsufficientStock o ErrInsufficientHolderBalance según el primer
// saldo que se rompa, o nil si toda la reproducción es válida.
func CheckReplay(movs []*entity.Movement) error {
	ordered := make([]*entity.Movement, len(movs))
	copy(ordered, movs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].OccurredOn.Equal(ordered[j].OccurredOn) {
			return ordered[i].OccurredOn.Before(ordered[j].OccurredOn)
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	warehouse := map[string]int64{}
	holders := map[holderKey]int64{}

	for _, m := range ordered {
		warehouse[m.ProductID] += m.WarehouseDelta()
		if warehouse[m.ProductID] < 0 {
			return domain.ErrInsufficientStock
		}
		if d := m.HolderDelta(); d != 0 {
			k := holderKey{productID: m.ProductID, holder: m.Holder}
			holders[k] += d
			if holders[k] < 0 {
				return domain.ErrInsufficientHolderBalance
			}
		}
	}
	return nil
}

type holderKey struct {
	productID string
	holder    entity.Holder
}
