package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del ledger de dotación.
const (
	MovementKindPurchase MovementKind = "PURCHASE" // compra: entra a bodega
	MovementKindDelivery MovementKind = "DELIVERY" // entrega: bodega -> destinatario
	MovementKindReturn   MovementKind = "RETURN"   // devolución: destinatario -> bodega
	MovementKindDisposal MovementKind = "DISPOSAL" // baja: sale de bodega definitivamente
)

// MovementKind es el tipo de un movimiento. No hay máquina de estados: cada
// movimiento es un hecho independiente del ledger.
type MovementKind string

// Valid indica si el tipo es uno de los cuatro conocidos.
func (k MovementKind) Valid() bool {
	switch k {
	case MovementKindPurchase, MovementKindDelivery, MovementKindReturn, MovementKindDisposal:
		return true
	}
	return false
}

// RequiresHolder indica si el tipo exige destinatario (entregas y devoluciones).
// Compras y bajas operan solo contra bodega y deben venir sin destinatario.
func (k MovementKind) RequiresHolder() bool {
	return k == MovementKindDelivery || k == MovementKindReturn
}

// Tipo de destinatario de un movimiento.
type HolderKind string

const (
	HolderKindEmployee HolderKind = "EMPLOYEE"
	HolderKindPost     HolderKind = "POST"
)

// Holder es la referencia discriminada al destinatario de una entrega o devolución.
// El valor cero (sin Kind ni ID) significa "sin destinatario"; así la exclusión
// mutua empleado/puesto queda en el tipo y no en dos campos anulables.
type Holder struct {
	Kind HolderKind
	ID   string
}

// EmployeeHolder construye un destinatario empleado.
func EmployeeHolder(id string) Holder { return Holder{Kind: HolderKindEmployee, ID: id} }

// PostHolder construye un destinatario puesto de trabajo.
func PostHolder(id string) Holder { return Holder{Kind: HolderKindPost, ID: id} }

// IsZero indica ausencia de destinatario.
func (h Holder) IsZero() bool { return h.Kind == "" && h.ID == "" }

// MatchesCategory verifica la compatibilidad destinatario/categoría:
// empleado solo para Individual, puesto solo para Colectivo.
func (h Holder) MatchesCategory(c ProductCategory) bool {
	switch h.Kind {
	case HolderKindEmployee:
		return c == CategoryIndividual
	case HolderKindPost:
		return c == CategoryCollective
	}
	return false
}

// Movement es el único hecho persistido del ledger. Inmutable una vez creado;
// una corrección se modela como eliminar + recrear, nunca update-in-place.
type Movement struct {
	ID         string
	ProductID  string
	Kind       MovementKind
	Quantity   int64
	OccurredOn time.Time // solo fecha
	Holder     Holder    // obligatorio para DELIVERY/RETURN, vacío para PURCHASE/DISPOSAL
	Note       string
	UnitCost   *decimal.Decimal // solo compras; informativo para el log de compras
	CreatedAt  time.Time
	CreatedBy  string // UserID
}

// WarehouseDelta es el efecto del movimiento sobre el saldo de bodega del producto.
func (m *Movement) WarehouseDelta() int64 {
	switch m.Kind {
	case MovementKindPurchase, MovementKindReturn:
		return m.Quantity
	case MovementKindDelivery, MovementKindDisposal:
		return -m.Quantity
	}
	return 0
}

// HolderDelta es el efecto del movimiento sobre el saldo del destinatario.
func (m *Movement) HolderDelta() int64 {
	switch m.Kind {
	case MovementKindDelivery:
		return m.Quantity
	case MovementKindReturn:
		return -m.Quantity
	}
	return 0
}
