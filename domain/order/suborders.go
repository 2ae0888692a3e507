package order

import (
	"time"

	"gorm.io/gorm"
)

// ItemStatus Fulfillment status of a single line item.
type ItemStatus string

const (
	ItemStatusAwaitingFulfillment ItemStatus = "awaiting_fulfillment"
	ItemStatusFulfilled           ItemStatus = "fulfilled"
)

// ShippingStatus Status of a shipping sub-order.
type ShippingStatus string

const (
	ShippingStatusNotShipped ShippingStatus = "not_shipped"
	ShippingStatusShipped    ShippingStatus = "shipped"
)

// LineItem One product+quantity entry within an order. Quantity is
// validated to [1,100] before the writer persists it; it is immutable
// after creation.
type LineItem struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID   string         `gorm:"type:char(36);index" json:"orderID"`
	ProductID string         `gorm:"type:char(36);index" json:"productID"`
	Quantity  int            `json:"quantity"`
	Status    ItemStatus     `gorm:"type:varchar(32)" json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LineItem) TableName() string { return "order_items" }

// OrderAddress Links an order to a pre-existing address. A valid set is
// either one entry with both flags, or two entries forming a disjoint
// billing/shipping pair; never more than two per order.
type OrderAddress struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID   string         `gorm:"type:char(36);index" json:"orderID"`
	AddressID string         `gorm:"type:char(36);index" json:"addressID"`
	Billing   bool           `json:"billingAddress"`
	Shipping  bool           `json:"shippingAddress"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (OrderAddress) TableName() string { return "order_addresses" }

// Customer Snapshot of the recipient identity at order time. One per
// order, immutable after creation.
type Customer struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID   string         `gorm:"type:char(36);uniqueIndex" json:"orderID"`
	UserID    string         `gorm:"type:char(36);index" json:"userID"`
	Firstname string         `gorm:"type:varchar(20)" json:"firstname"`
	Lastname  string         `gorm:"type:varchar(20)" json:"lastname"`
	Email     string         `gorm:"type:varchar(60)" json:"email"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Customer) TableName() string { return "order_customers" }

// PickupOrder Pickup variant of the shipping sub-order. The fee is copied
// from the parent order's computed delivery fee, never recomputed here.
type PickupOrder struct {
	ID               string         `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID          string         `gorm:"type:char(36);uniqueIndex" json:"orderID"`
	PickupID         string         `gorm:"type:char(36);index" json:"pickUpID"`
	Note             string         `gorm:"type:varchar(100)" json:"note"`
	FinalDeliveryFee float64        `json:"finalDeliveryFee"`
	Status           ShippingStatus `gorm:"type:varchar(32)" json:"status"`
	CreatedAt        time.Time      `json:"createdAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PickupOrder) TableName() string { return "pickup_orders" }

// HomeDeliveryOrder Home-delivery variant of the shipping sub-order.
type HomeDeliveryOrder struct {
	ID               string         `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID          string         `gorm:"type:char(36);uniqueIndex" json:"orderID"`
	HomeDeliveryID   string         `gorm:"type:char(36);index" json:"homeDeliveryID"`
	Note             string         `gorm:"type:varchar(100)" json:"note"`
	FinalDeliveryFee float64        `json:"finalDeliveryFee"`
	Status           ShippingStatus `gorm:"type:varchar(32)" json:"status"`
	CreatedAt        time.Time      `json:"createdAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (HomeDeliveryOrder) TableName() string { return "home_delivery_orders" }

// ShippingSuborder Tagged view of the one-of-two sub-order variants.
// Exactly one of Pickup/HomeDelivery is non-nil, matching Mode.
type ShippingSuborder struct {
	Mode         DeliveryMode       `json:"mode"`
	Pickup       *PickupOrder       `json:"pickup,omitempty"`
	HomeDelivery *HomeDeliveryOrder `json:"homeDelivery,omitempty"`
}

// View Composite result of a placed order, as returned to the client.
type View struct {
	Order            PlacedOrder      `json:"order"`
	Customer         Customer         `json:"customer"`
	OrderAddresses   []OrderAddress   `json:"orderAddresses"`
	LineItems        []LineItem       `json:"lineItems"`
	ShippingSuborder ShippingSuborder `json:"shippingSuborder"`
}
