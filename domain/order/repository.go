package order

import "context"

// Repository Persistence boundary for the order aggregate. Each create is
// an independent write; the saga in application/order coordinates them and
// compensates with SoftDelete when a later write fails.
type Repository interface {
	CreateOrder(ctx context.Context, o *PlacedOrder) error
	CreateLineItems(ctx context.Context, items []LineItem) error
	CreateOrderAddresses(ctx context.Context, addresses []OrderAddress) error
	CreateCustomer(ctx context.Context, c *Customer) error
	CreatePickupOrder(ctx context.Context, p *PickupOrder) error
	CreateHomeDeliveryOrder(ctx context.Context, h *HomeDeliveryOrder) error

	// FindByID returns the composite view, or ErrOrderNotFound for unknown
	// and soft-deleted orders.
	FindByID(ctx context.Context, id string) (*View, error)
	FindByUserID(ctx context.Context, userID string) ([]*PlacedOrder, error)
	UpdateStatus(ctx context.Context, o *PlacedOrder) error

	// SoftDelete marks the order and all its child rows deleted. Used by
	// the compensating path; must be safe to call with partially written
	// children.
	SoftDelete(ctx context.Context, orderID string) error
}

// Event Order lifecycle event payload published after a successful saga.
type Event struct {
	Name        string  `json:"name"`
	OrderID     string  `json:"orderId"`
	UserID      string  `json:"userId"`
	TotalPrice  float64 `json:"totalPrice"`
	DeliveryFee float64 `json:"deliveryFee"`
	Mode        string  `json:"mode"`
}

// EventPublisher Best-effort outbound notification. Publish failures are
// logged, never surfaced to the order flow.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event Event) error
}
