package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	valid := []Status{
		StatusCart, StatusPendingPayment, StatusFailed, StatusAwaitingCollect,
		StatusAwaitingShipment, StatusAwaitingPickup, StatusCompleted,
		StatusOnHold, StatusCancelled, StatusRefunded, StatusAuthRequired,
	}
	for _, s := range valid {
		assert.True(t, s.Valid(), string(s))
	}

	assert.False(t, Status("shipped_maybe").Valid())
	assert.False(t, Status("").Valid())
}

func TestTransition(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		wantErr error
	}{
		{StatusCart, StatusPendingPayment, nil},
		{StatusPendingPayment, StatusOnHold, nil},
		{StatusPendingPayment, StatusAwaitingCollect, nil},
		{StatusPendingPayment, StatusFailed, nil},
		{StatusFailed, StatusPendingPayment, nil},
		{StatusAwaitingCollect, StatusAwaitingShipment, nil},
		{StatusAwaitingCollect, StatusAwaitingPickup, nil},
		{StatusAwaitingShipment, StatusCompleted, nil},
		{StatusCompleted, StatusRefunded, nil},

		{StatusPendingPayment, StatusCompleted, ErrInvalidStatusTransition},
		{StatusCancelled, StatusPendingPayment, ErrInvalidStatusTransition},
		{StatusRefunded, StatusCompleted, ErrInvalidStatusTransition},
		{StatusCart, Status("unknown"), ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			o := &PlacedOrder{OrderStatus: tt.from}
			err := o.Transition(tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, o.OrderStatus)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.to, o.OrderStatus)
			}
		})
	}
}

func TestMode(t *testing.T) {
	var o PlacedOrder
	assert.Equal(t, DeliveryMode(""), o.Mode())

	homeDelivery := true
	o.IsHomeDelivery = &homeDelivery
	assert.Equal(t, ModeHomeDelivery, o.Mode())

	pickup := false
	o.IsHomeDelivery = &pickup
	assert.Equal(t, ModePickup, o.Mode())
}
