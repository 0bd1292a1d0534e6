package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviza/dotaciones-api/internal/domain"
	"github.com/serviza/dotaciones-api/internal/domain/entity"
	"github.com/serviza/dotaciones-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// mov construye un movimiento con fecha day+offset días; seq desempata el orden
// de creación dentro del mismo día.
func mov(id, productID string, kind entity.MovementKind, qty int64, holder entity.Holder, dayOffset, seq int) *entity.Movement {
	return &entity.Movement{
		ID:         id,
		ProductID:  productID,
		Kind:       kind,
		Quantity:   qty,
		OccurredOn: day.AddDate(0, 0, dayOffset),
		Holder:     holder,
		CreatedAt:  day.Add(time.Duration(seq) * time.Minute),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Saldos como fold sobre los movimientos
// ──────────────────────────────────────────────────────────────────────────────

// Sin movimientos, todo saldo es cero.
func TestBalances_SinMovimientos(t *testing.T) {
	assert.Zero(t, ledger.WarehouseBalance(nil, "p1"))
	assert.Zero(t, ledger.HolderBalance(nil, "p1", entity.EmployeeHolder("e1")))
}

// Escenarios 1-3 de referencia: compra, entrega y devolución sobre un producto
// individual restauran exactamente los saldos originales (conservación).
func TestBalances_CompraEntregaDevolucion(t *testing.T) {
	e1 := entity.EmployeeHolder("e1")

	movs := []*entity.Movement{
		mov("m1", "p1", entity.MovementKindPurchase, 10, entity.Holder{}, 0, 0),
	}
	assert.EqualValues(t, 10, ledger.WarehouseBalance(movs, "p1"))

	movs = append(movs, mov("m2", "p1", entity.MovementKindDelivery, 4, e1, 1, 1))
	assert.EqualValues(t, 6, ledger.WarehouseBalance(movs, "p1"))
	assert.EqualValues(t, 4, ledger.HolderBalance(movs, "p1", e1))

	movs = append(movs, mov("m3", "p1", entity.MovementKindReturn, 4, e1, 2, 2))
	assert.EqualValues(t, 10, ledger.WarehouseBalance(movs, "p1"))
	assert.Zero(t, ledger.HolderBalance(movs, "p1", e1))
}

// Los saldos de un destinatario no se mezclan entre destinatarios ni productos.
func TestBalances_AisladosPorProductoYDestinatario(t *testing.T) {
	e1 := entity.EmployeeHolder("e1")
	e2 := entity.EmployeeHolder("e2")
	pst := entity.PostHolder("pst1")

	movs := []*entity.Movement{
		mov("m1", "p1", entity.MovementKindPurchase, 10, entity.Holder{}, 0, 0),
		mov("m2", "p2", entity.MovementKindPurchase, 5, entity.Holder{}, 0, 1),
		mov("m3", "p1", entity.MovementKindDelivery, 3, e1, 1, 2),
		mov("m4", "p2", entity.MovementKindDelivery, 5, pst, 1, 3),
	}

	assert.EqualValues(t, 7, ledger.WarehouseBalance(movs, "p1"))
	assert.EqualValues(t, 0, ledger.WarehouseBalance(movs, "p2"))
	assert.EqualValues(t, 3, ledger.HolderBalance(movs, "p1", e1))
	assert.Zero(t, ledger.HolderBalance(movs, "p1", e2))
	assert.EqualValues(t, 5, ledger.HolderBalance(movs, "p2", pst))
	assert.Zero(t, ledger.HolderBalance(movs, "p2", e1))
}

// Las bajas descuentan de bodega igual que las entregas, sin destinatario.
func TestBalances_Baja(t *testing.T) {
	movs := []*entity.Movement{
		mov("m1", "p1", entity.MovementKindPurchase, 10, entity.Holder{}, 0, 0),
		mov("m2", "p1", entity.MovementKindDisposal, 4, entity.Holder{}, 1, 1),
	}
	assert.EqualValues(t, 6, ledger.WarehouseBalance(movs, "p1"))
}

// Idempotencia de lecturas: dos folds sin escrituras intermedias coinciden.
func TestBalances_LecturaIdempotente(t *testing.T) {
	e1 := entity.EmployeeHolder("e1")
	movs := []*entity.Movement{
		mov("m1", "p1", entity.MovementKindPurchase, 8, entity.Holder{}, 0, 0),
		mov("m2", "p1", entity.MovementKindDelivery, 3, e1, 1, 1),
	}
	assert.Equal(t, ledger.WarehouseBalance(movs, "p1"), ledger.WarehouseBalance(movs, "p1"))
	assert.Equal(t, ledger.HolderBalance(movs, "p1", e1), ledger.HolderBalance(movs, "p1", e1))
}

// ──────────────────────────────────────────────────────────────────────────────
// CheckReplay: reproducción cronológica para decidir eliminaciones
// ──────────────────────────────────────────────────────────────────────────────

// Una historia válida se reproduce sin error.
func TestCheckReplay_HistoriaValida(t *testing.T) {
	e1 := entity.EmployeeHolder("e1")
	movs := []*entity.Movement{
		mov("m1", "p1", entity.MovementKindPurchase, 10, entity.Holder{}, 0, 0),
		mov("m2", "p1", entity.MovementKindDelivery, 4, e1, 1, 1),
		mov("m3", "p1", entity.MovementKindReturn, 4, e1, 2, 2),
		mov("m4", "p1", entity.MovementKindDisposal, 10, entity.Holder{}, 3, 3),
	}
	require.NoError(t, ledger.CheckReplay(movs))
}

// Escenario 6 de referencia: quitar la compra que habilitó una entrega ya
// registrada deja la bodega negativa en un punto intermedio, aunque el saldo
// final quede en cero.
func TestCheckReplay_SinLaCompraHabilitante(t *testing.T) {
	e1 := entity.EmployeeHolder("e1")
	remaining := []*entity.Movement{
		mov("m2", "p1", entity.MovementKindDelivery, 4, e1, 1, 1),
		mov("m3", "p1", entity.MovementKindReturn, 4, e1, 2, 2),
	}
	err := ledger.CheckReplay(remaining)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Una devolución sin la entrega previa rompe el saldo del destinatario.
func TestCheckReplay_DevolucionSinEntrega(t *testing.T) {
	e1 := entity.EmployeeHolder("e1")
	remaining := []*entity.Movement{
		mov("m1", "p1", entity.MovementKindPurchase, 10, entity.Holder{}, 0, 0),
		mov("m3", "p1", entity.MovementKindReturn, 4, e1, 2, 2),
	}
	err := ledger.CheckReplay(remaining)
	require.ErrorIs(t, err, domain.ErrInsufficientHolderBalance)
}

// El orden de reproducción es (occurred_on, created_at), no el orden del slice.
func TestCheckReplay_OrdenaPorFecha(t *testing.T) {
	e1 := entity.EmployeeHolder("e1")
	movs := []*entity.Movement{
		mov("m2", "p1", entity.MovementKindDelivery, 4, e1, 1, 1),
		mov("m1", "p1", entity.MovementKindPurchase, 10, entity.Holder{}, 0, 0),
	}
	require.NoError(t, ledger.CheckReplay(movs))
}

// CheckReplay no muta el slice recibido.
func TestCheckReplay_NoMutaEntrada(t *testing.T) {
	movs := []*entity.Movement{
		mov("m2", "p1", entity.MovementKindDisposal, 1, entity.Holder{}, 1, 1),
		mov("m1", "p1", entity.MovementKindPurchase, 2, entity.Holder{}, 0, 0),
	}
	_ = ledger.CheckReplay(movs)
	assert.Equal(t, "m2", movs[0].ID)
	assert.Equal(t, "m1", movs[1].ID)
}
