package order

import (
	"context"
	"time"

	"farmshop/domain/order"

	"github.com/google/uuid"
)

// The writers persist the child rows of a freshly created order. They do
// no validation of their own: the saga validates the payload up front and
// holds the range/shape invariants before any writer runs. A writer that
// fails reports the aggregate failure; cleanup of rows that did land is
// the saga's compensating delete, not the writer's concern.

func (s *Service) createLineItems(ctx context.Context, orderID string, items []ItemPayload) ([]order.LineItem, error) {
	lineItems := make([]order.LineItem, len(items))
	now := time.Now()
	for i, item := range items {
		lineItems[i] = order.LineItem{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Status:    order.ItemStatusAwaitingFulfillment,
			CreatedAt: now,
		}
	}
	if err := s.orders.CreateLineItems(ctx, lineItems); err != nil {
		return nil, err
	}
	return lineItems, nil
}

func (s *Service) createOrderAddresses(ctx context.Context, orderID string, addresses []AddressPayload) ([]order.OrderAddress, error) {
	orderAddresses := make([]order.OrderAddress, len(addresses))
	now := time.Now()
	for i, a := range addresses {
		orderAddresses[i] = order.OrderAddress{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			AddressID: a.AddressID,
			Billing:   a.BillingAddress,
			Shipping:  a.ShippingAddress,
			CreatedAt: now,
		}
	}
	if err := s.orders.CreateOrderAddresses(ctx, orderAddresses); err != nil {
		return nil, err
	}
	return orderAddresses, nil
}

func (s *Service) createCustomer(ctx context.Context, orderID, userID string, payload CustomerPayload) (*order.Customer, error) {
	customer := &order.Customer{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		UserID:    userID,
		Firstname: payload.Firstname,
		Lastname:  payload.Lastname,
		Email:     payload.Email,
		CreatedAt: time.Now(),
	}
	if err := s.orders.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// createShippingSuborder attaches the mode-appropriate sub-order variant,
// copying the fee the saga already computed onto the parent order.
func (s *Service) createShippingSuborder(ctx context.Context, o *order.PlacedOrder, sel shippingSelection) (order.ShippingSuborder, error) {
	switch sel.Mode {
	case order.ModeHomeDelivery:
		delivery := &order.HomeDeliveryOrder{
			ID:               uuid.NewString(),
			OrderID:          o.ID,
			HomeDeliveryID:   sel.OfferingID,
			Note:             sel.Note,
			FinalDeliveryFee: o.DeliveryFee,
			Status:           order.ShippingStatusNotShipped,
			CreatedAt:        time.Now(),
		}
		if err := s.orders.CreateHomeDeliveryOrder(ctx, delivery); err != nil {
			return order.ShippingSuborder{}, err
		}
		return order.ShippingSuborder{Mode: order.ModeHomeDelivery, HomeDelivery: delivery}, nil
	default:
		pickup := &order.PickupOrder{
			ID:               uuid.NewString(),
			OrderID:          o.ID,
			PickupID:         sel.OfferingID,
			Note:             sel.Note,
			FinalDeliveryFee: o.DeliveryFee,
			Status:           order.ShippingStatusNotShipped,
			CreatedAt:        time.Now(),
		}
		if err := s.orders.CreatePickupOrder(ctx, pickup); err != nil {
			return order.ShippingSuborder{}, err
		}
		return order.ShippingSuborder{Mode: order.ModePickup, Pickup: pickup}, nil
	}
}
