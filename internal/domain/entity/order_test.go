package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados de la orden:
// draft → pending → processing → shipped → delivered, con cancelled
// alcanzable desde cualquier estado no terminal.
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransitionOrder_CaminoFeliz(t *testing.T) {
	cases := []struct{ from, to string }{
		{entity.OrderStatusDraft, entity.OrderStatusPending},
		{entity.OrderStatusPending, entity.OrderStatusProcessing},
		{entity.OrderStatusProcessing, entity.OrderStatusShipped},
		{entity.OrderStatusShipped, entity.OrderStatusDelivered},
	}
	for _, c := range cases {
		assert.True(t, entity.CanTransitionOrder(c.from, c.to),
			"%s → %s debe estar permitido", c.from, c.to)
	}
}

func TestCanTransitionOrder_CancelledDesdeNoTerminales(t *testing.T) {
	for _, from := range []string{
		entity.OrderStatusDraft,
		entity.OrderStatusPending,
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
	} {
		assert.True(t, entity.CanTransitionOrder(from, entity.OrderStatusCancelled),
			"%s → cancelled debe estar permitido", from)
	}
}

func TestCanTransitionOrder_TerminalesNoSalen(t *testing.T) {
	for _, from := range []string{entity.OrderStatusDelivered, entity.OrderStatusCancelled} {
		for _, to := range []string{
			entity.OrderStatusDraft, entity.OrderStatusPending, entity.OrderStatusProcessing,
			entity.OrderStatusShipped, entity.OrderStatusDelivered, entity.OrderStatusCancelled,
		} {
			assert.False(t, entity.CanTransitionOrder(from, to),
				"%s → %s no debe estar permitido", from, to)
		}
		assert.True(t, entity.IsTerminalOrderStatus(from))
	}
}

func TestCanTransitionOrder_SinSaltosNiRetrocesos(t *testing.T) {
	assert.False(t, entity.CanTransitionOrder(entity.OrderStatusPending, entity.OrderStatusShipped),
		"no se puede saltar processing")
	assert.False(t, entity.CanTransitionOrder(entity.OrderStatusShipped, entity.OrderStatusProcessing),
		"no hay retrocesos")
	assert.False(t, entity.CanTransitionOrder(entity.OrderStatusPending, entity.OrderStatusDraft),
		"nada vuelve a draft")
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, entity.IsValidOrderStatus(entity.OrderStatusDraft))
	assert.True(t, entity.IsValidOrderStatus(entity.OrderStatusCancelled))
	assert.False(t, entity.IsValidOrderStatus("enviado"))
	assert.False(t, entity.IsValidOrderStatus(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de aprobación de cuentas: pending → approved ⇄ disabled.
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransitionApproval(t *testing.T) {
	assert.True(t, entity.CanTransitionApproval(entity.StatusPending, entity.StatusApproved))
	assert.True(t, entity.CanTransitionApproval(entity.StatusApproved, entity.StatusDisabled))
	assert.True(t, entity.CanTransitionApproval(entity.StatusDisabled, entity.StatusApproved))

	// Un pending no puede deshabilitarse sin aprobarse primero.
	assert.False(t, entity.CanTransitionApproval(entity.StatusPending, entity.StatusDisabled))
	// No hay vuelta atrás a pending.
	assert.False(t, entity.CanTransitionApproval(entity.StatusApproved, entity.StatusPending))
	assert.False(t, entity.CanTransitionApproval(entity.StatusDisabled, entity.StatusPending))
}

func TestBuyerDefaultAddress(t *testing.T) {
	b := &entity.Buyer{Addresses: []entity.Address{
		{ID: "a1", Line1: "Calle 1", IsDefault: false},
		{ID: "a2", Line1: "Calle 2", IsDefault: true},
	}}
	addr := b.DefaultAddress()
	assert.NotNil(t, addr)
	assert.Equal(t, "a2", addr.ID)

	assert.Nil(t, (&entity.Buyer{}).DefaultAddress())
}
