package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/serviza/dotaciones-api/internal/domain/entity"
)

// El código del producto se deriva de los campos de texto libre: mayúsculas,
// sin tildes y con espacios colapsados. No es semánticamente relevante para el
// ledger, solo para visualización.
func TestDeriveCode(t *testing.T) {
	cases := []struct {
		name     string
		parts    []string
		expected string
	}{
		{"simple", []string{"Camisa", "talla M"}, "CAMISA TALLA M"},
		{"tildes", []string{"Camisa Azúl", "pequeña"}, "CAMISA AZUL PEQUENA"},
		{"espacios colapsados", []string{"  Radio   de  comunicación ", " EP450 "}, "RADIO DE COMUNICACION EP450"},
		{"parte vacía", []string{"Botiquín", ""}, "BOTIQUIN"},
		{"sin partes", nil, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, entity.DeriveCode(tc.parts...))
		})
	}
}

func TestHolderMatchesCategory(t *testing.T) {
	emp := entity.EmployeeHolder("e1")
	post := entity.PostHolder("p1")

	assert.True(t, emp.MatchesCategory(entity.CategoryIndividual))
	assert.False(t, emp.MatchesCategory(entity.CategoryCollective))
	assert.True(t, post.MatchesCategory(entity.CategoryCollective))
	assert.False(t, post.MatchesCategory(entity.CategoryIndividual))

	// Sin destinatario no hay compatibilidad con ninguna categoría.
	assert.False(t, entity.Holder{}.MatchesCategory(entity.CategoryIndividual))
}

func TestMovementDeltas(t *testing.T) {
	cases := []struct {
		kind           entity.MovementKind
		warehouseDelta int64
		holderDelta    int64
	}{
		{entity.MovementKindPurchase, 5, 0},
		{entity.MovementKindDelivery, -5, 5},
		{entity.MovementKindReturn, 5, -5},
		{entity.MovementKindDisposal, -5, 0},
	}
	for _, tc := range cases {
		m := &entity.Movement{Kind: tc.kind, Quantity: 5}
		assert.Equal(t, tc.warehouseDelta, m.WarehouseDelta(), string(tc.kind))
		assert.Equal(t, tc.holderDelta, m.HolderDelta(), string(tc.kind))
	}
}
