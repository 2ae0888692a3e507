package order

import "farmshop/domain/order"

// PlaceOrderRequest Cart payload for POST /orders. Exactly one of
// Pickup/HomeDelivery must be present and must match IsHomeDelivery;
// Validate enforces that along with the address and quantity rules.
type PlaceOrderRequest struct {
	IsHomeDelivery bool                 `json:"isHomeDelivery"`
	Customer       CustomerPayload      `json:"customer" binding:"required"`
	Addresses      []AddressPayload     `json:"addresses" binding:"required"`
	Items          []ItemPayload        `json:"items" binding:"required"`
	Pickup         *PickupPayload       `json:"pickup,omitempty"`
	HomeDelivery   *HomeDeliveryPayload `json:"homeDelivery,omitempty"`
}

// CustomerPayload Recipient identity snapshotted onto the order.
type CustomerPayload struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// AddressPayload Reference to a pre-existing address plus its role flags.
type AddressPayload struct {
	AddressID       string `json:"addressID"`
	BillingAddress  bool   `json:"billingAddress"`
	ShippingAddress bool   `json:"shippingAddress"`
}

// ItemPayload One product+quantity cart entry.
type ItemPayload struct {
	ProductID string `json:"productID"`
	Quantity  int    `json:"quantity"`
}

// PickupPayload Pickup selection; note is optional.
type PickupPayload struct {
	PickupID string `json:"pickUpID"`
	Note     string `json:"note"`
}

// HomeDeliveryPayload Home-delivery selection; note is required.
type HomeDeliveryPayload struct {
	HomeDeliveryID string `json:"homeDeliveryID"`
	Note           string `json:"note"`
}

// shippingSelection Normalized one-of-two shipping choice, resolved during
// validation so the saga never touches the two optional payloads again.
type shippingSelection struct {
	Mode       order.DeliveryMode
	OfferingID string
	Note       string
}

// UpdateStatusRequest Admin status-transition request.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
