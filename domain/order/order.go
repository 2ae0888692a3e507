/*
Package order holds the placed-order aggregate: the parent order row, its
line items, order addresses, the customer-of-record snapshot and the
pickup / home-delivery sub-order. The parent exclusively owns the child
rows; deleting an order soft-deletes all of them.
*/
package order

import (
	"time"

	"gorm.io/gorm"
)

// Status Order lifecycle status.
type Status string

const (
	StatusCart              Status = "cart"             // not accepted yet
	StatusPendingPayment    Status = "pending_payment"  // accepted, awaiting payment
	StatusFailed            Status = "failed"           // payment failed or was declined
	StatusAwaitingCollect   Status = "awaiting_collection"
	StatusAwaitingShipment  Status = "awaiting_shipment"
	StatusAwaitingPickup    Status = "awaiting_pickup"
	StatusCompleted         Status = "completed"
	StatusOnHold            Status = "on_hold"
	StatusCancelled         Status = "cancelled"
	StatusRefunded          Status = "refunded"
	StatusAuthRequired      Status = "authentication_required"
)

// statusTransitions lists the allowed moves for each status. Terminal
// statuses (completed, cancelled, refunded) have no outgoing edges beyond
// the admin refund path.
var statusTransitions = map[Status][]Status{
	StatusCart:             {StatusPendingPayment, StatusCancelled},
	StatusPendingPayment:   {StatusFailed, StatusAuthRequired, StatusOnHold, StatusAwaitingCollect, StatusCancelled},
	StatusFailed:           {StatusPendingPayment, StatusCancelled},
	StatusAuthRequired:     {StatusPendingPayment, StatusFailed, StatusCancelled},
	StatusOnHold:           {StatusAwaitingCollect, StatusCancelled},
	StatusAwaitingCollect:  {StatusAwaitingShipment, StatusAwaitingPickup, StatusCancelled},
	StatusAwaitingShipment: {StatusCompleted, StatusCancelled},
	StatusAwaitingPickup:   {StatusCompleted, StatusCancelled},
	StatusCompleted:        {StatusRefunded},
	StatusCancelled:        {},
	StatusRefunded:         {},
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether the move s -> to is allowed.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range statusTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// DeliveryMode distinguishes the two shipping sub-order variants.
type DeliveryMode string

const (
	ModePickup       DeliveryMode = "pickup"
	ModeHomeDelivery DeliveryMode = "home_delivery"
)

// PlacedOrder Aggregate root of a customer purchase.
// IsHomeDelivery stays nil until a shipping sub-order is attached; once the
// order leaves the cart status exactly one sub-order variant exists.
type PlacedOrder struct {
	ID             string         `gorm:"type:char(36);primaryKey" json:"id"`
	TotalPrice     float64        `json:"totalPrice"`
	TotalTaxes     float64        `json:"totalTaxes"`
	DeliveryFee    float64        `json:"deliveryFee"`
	OrderStatus    Status         `gorm:"type:varchar(32);index" json:"orderStatus"`
	UserID         string         `gorm:"type:char(36);index" json:"userID"`
	IsHomeDelivery *bool          `json:"isHomeDelivery"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PlacedOrder) TableName() string { return "placed_orders" }

// Transition moves the order to the given status, enforcing the allowed
// edges above.
func (o *PlacedOrder) Transition(to Status) error {
	if !to.Valid() {
		return ErrUnknownStatus
	}
	if !o.OrderStatus.CanTransitionTo(to) {
		return ErrInvalidStatusTransition
	}
	o.OrderStatus = to
	return nil
}

// Mode returns the delivery mode, or "" while it is still undecided.
func (o *PlacedOrder) Mode() DeliveryMode {
	if o.IsHomeDelivery == nil {
		return ""
	}
	if *o.IsHomeDelivery {
		return ModeHomeDelivery
	}
	return ModePickup
}
