package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "preparing", "ready", "delivered", "expired"} {
		st, err := entities.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, st.String())
	}

	_, err := entities.ParseStatus("cancelled")
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)

	_, err = entities.ParseStatus("READY")
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)
}

func TestTransitionPolicy_Check(t *testing.T) {
	testCases := []struct {
		name       string
		policy     entities.TransitionPolicy
		from, to   entities.Status
		wantReject bool
	}{
		{"pending to preparing", entities.TransitionsStrict, entities.StatusPending, entities.StatusPreparing, false},
		{"preparing to ready", entities.TransitionsStrict, entities.StatusPreparing, entities.StatusReady, false},
		{"ready to delivered", entities.TransitionsStrict, entities.StatusReady, entities.StatusDelivered, false},
		{"ready to expired", entities.TransitionsStrict, entities.StatusReady, entities.StatusExpired, false},
		{"skip preparing", entities.TransitionsStrict, entities.StatusPending, entities.StatusReady, true},
		{"delivered back to pending", entities.TransitionsStrict, entities.StatusDelivered, entities.StatusPending, true},
		{"expired to delivered", entities.TransitionsStrict, entities.StatusExpired, entities.StatusDelivered, true},
		{"same status", entities.TransitionsStrict, entities.StatusReady, entities.StatusReady, true},
		{"pending to expired", entities.TransitionsStrict, entities.StatusPending, entities.StatusExpired, true},
		{"permissive reverse", entities.TransitionsPermissive, entities.StatusDelivered, entities.StatusPending, false},
		{"permissive out of expired", entities.TransitionsPermissive, entities.StatusExpired, entities.StatusReady, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.policy.Check(tc.from, tc.to)
			if tc.wantReject {
				assert.ErrorIs(t, err, entities.ErrInvalidTransition)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTransitionPolicy_CheckNamesFinalState(t *testing.T) {
	err := entities.TransitionsStrict.Check(entities.StatusExpired, entities.StatusReady)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "expired is final")
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, entities.StatusDelivered.Terminal())
	assert.True(t, entities.StatusExpired.Terminal())
	assert.False(t, entities.StatusReady.Terminal())
	assert.False(t, entities.StatusPending.Terminal())
}

func TestOrder_Overdue(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	ready := entities.Order{Status: entities.StatusReady, PickupDeadline: now.Add(-time.Minute)}
	assert.True(t, ready.Overdue(now))

	ready.PickupDeadline = now
	assert.False(t, ready.Overdue(now), "deadline must be strictly before now")

	preparing := entities.Order{Status: entities.StatusPreparing, PickupDeadline: now.Add(-time.Hour)}
	assert.False(t, preparing.Overdue(now))
}

func TestOrder_ItemsTotal(t *testing.T) {
	order := entities.Order{Items: []entities.OrderItem{
		{Price: decimal.RequireFromString("2.50"), Quantity: 3},
		{Price: decimal.RequireFromString("1.25"), Quantity: 2},
	}}

	assert.True(t, decimal.RequireFromString("10.00").Equal(order.ItemsTotal()))
}

func TestOrder_UnmarshalBroken(t *testing.T) {
	var order entities.Order
	err := order.Unmarshal([]byte("broken"))
	assert.ErrorIs(t, err, entities.ErrInvalidOrder)
}

func TestInsufficientStockError(t *testing.T) {
	var err error = &entities.InsufficientStockError{ProductID: 7, Name: "Adobo", Available: 2, Requested: 3}

	assert.ErrorIs(t, err, entities.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Adobo")

	var stockErr *entities.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(7), stockErr.ProductID)
}

func TestNotFoundErrors(t *testing.T) {
	assert.ErrorIs(t, entities.ErrOrderNotFound, entities.ErrNotFound)
	assert.ErrorIs(t, entities.ErrUserNotFound, entities.ErrNotFound)
	assert.ErrorIs(t, entities.ErrProductNotFound, entities.ErrNotFound)
	assert.Equal(t, "order not found", entities.ErrOrderNotFound.Error())
}
