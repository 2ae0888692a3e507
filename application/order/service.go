/*
Package order orchestrates order placement: validate the cart, price it,
persist the parent order, fan out the child writes, attach the shipping
sub-order and assemble the composite view. There is no multi-statement
transaction around the flow; any failure after the parent order exists
triggers a compensating soft delete of the whole aggregate, and the
original cause is what reaches the caller.
*/
package order

import (
	"context"
	"errors"

	"farmshop/domain/order"
	apperrors "farmshop/pkg/errors"
	"farmshop/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// placeholderTaxes Tax computation is not implemented; every order
// carries this fixed placeholder amount.
const placeholderTaxes = 12.0

// Service Order application service.
type Service struct {
	orders    order.Repository
	calc      *Calculator
	publisher order.EventPublisher
}

func NewService(orders order.Repository, calc *Calculator) *Service {
	return &Service{
		orders: orders,
		calc:   calc,
	}
}

// SetEventPublisher enables best-effort order.placed notifications.
func (s *Service) SetEventPublisher(publisher order.EventPublisher) {
	s.publisher = publisher
}

// PlaceOrder materializes the cart into a persisted, priced, shipped
// order for the authenticated user.
//
// Steps: validate, resolve shipping fee, price every item concurrently,
// persist the parent order, write line items / addresses / customer
// concurrently, attach the shipping sub-order, return the composite view.
// Once the parent order row exists, any failure soft-deletes it (and its
// children) before the error is surfaced.
func (s *Service) PlaceOrder(ctx context.Context, userID string, req PlaceOrderRequest) (*order.View, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	sel := req.shippingSelection()

	fee, err := s.calc.ShippingFee(ctx, sel.OfferingID, sel.Mode)
	if err != nil {
		return nil, err
	}

	// Price all items concurrently; the first missing product aborts the
	// whole sum.
	prices := make([]float64, len(req.Items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range req.Items {
		i, item := i, item
		g.Go(func() error {
			price, err := s.calc.PriceLineItem(gctx, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			prices[i] = price
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := fee
	for _, price := range prices {
		total += price
	}

	isHomeDelivery := sel.Mode == order.ModeHomeDelivery
	placed := &order.PlacedOrder{
		ID:             uuid.NewString(),
		TotalPrice:     total,
		TotalTaxes:     placeholderTaxes,
		DeliveryFee:    fee,
		OrderStatus:    order.StatusPendingPayment,
		UserID:         userID,
		IsHomeDelivery: &isHomeDelivery,
	}
	if err := s.orders.CreateOrder(ctx, placed); err != nil {
		// Nothing else was written yet, no compensation needed.
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to create order")
	}

	var (
		lineItems      []order.LineItem
		orderAddresses []order.OrderAddress
		customer       *order.Customer
	)
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lineItems, err = s.createLineItems(gctx, placed.ID, req.Items)
		return err
	})
	g.Go(func() error {
		var err error
		orderAddresses, err = s.createOrderAddresses(gctx, placed.ID, req.Addresses)
		return err
	})
	g.Go(func() error {
		var err error
		customer, err = s.createCustomer(gctx, placed.ID, userID, req.Customer)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.compensate(ctx, placed.ID, err)
	}

	suborder, err := s.createShippingSuborder(ctx, placed, sel)
	if err != nil {
		return nil, s.compensate(ctx, placed.ID, err)
	}

	view := &order.View{
		Order:            *placed,
		Customer:         *customer,
		OrderAddresses:   orderAddresses,
		LineItems:        lineItems,
		ShippingSuborder: suborder,
	}

	s.publishOrderPlaced(placed)

	return view, nil
}

// compensate soft-deletes the partially built aggregate and returns the
// original cause wrapped as an internal error. A failing delete is logged
// and swallowed: the caller always sees the original failure, not the
// cleanup outcome.
func (s *Service) compensate(ctx context.Context, orderID string, cause error) error {
	logger.Error("order creation failed, rolling back",
		zap.String("order_id", orderID),
		zap.Error(cause))

	if err := s.orders.SoftDelete(ctx, orderID); err != nil {
		logger.Error("failed to delete placed order during rollback",
			zap.String("order_id", orderID),
			zap.Error(err))
	}

	return apperrors.Wrap(cause, apperrors.CodeInternal, "error while creating order data")
}

// publishOrderPlaced notifies downstream consumers, fire-and-forget.
func (s *Service) publishOrderPlaced(placed *order.PlacedOrder) {
	if s.publisher == nil {
		return
	}

	event := order.Event{
		Name:        "order.placed",
		OrderID:     placed.ID,
		UserID:      placed.UserID,
		TotalPrice:  placed.TotalPrice,
		DeliveryFee: placed.DeliveryFee,
		Mode:        string(placed.Mode()),
	}
	go func() {
		if err := s.publisher.Publish(context.Background(), event.Name, event); err != nil {
			logger.Warn("failed to publish order event",
				zap.String("order_id", event.OrderID),
				zap.Error(err))
		}
	}()
}

// GetOrder returns the composite view of one order. Non-admin users can
// only read their own orders.
func (s *Service) GetOrder(ctx context.Context, orderID, requesterID string, requesterIsAdmin bool) (*order.View, error) {
	view, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, apperrors.OrderNotFound()
		}
		return nil, err
	}
	if !requesterIsAdmin && view.Order.UserID != requesterID {
		return nil, apperrors.Forbidden("you cannot access this order")
	}
	return view, nil
}

// ListUserOrders returns the parent orders of one user, newest first.
func (s *Service) ListUserOrders(ctx context.Context, userID string) ([]*order.PlacedOrder, error) {
	return s.orders.FindByUserID(ctx, userID)
}

// UpdateStatus applies a status transition to an order (admin only,
// enforced by routing).
func (s *Service) UpdateStatus(ctx context.Context, orderID string, req UpdateStatusRequest) (*order.PlacedOrder, error) {
	view, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, apperrors.OrderNotFound()
		}
		return nil, err
	}

	placed := view.Order
	if err := placed.Transition(order.Status(req.Status)); err != nil {
		if errors.Is(err, order.ErrUnknownStatus) {
			return nil, apperrors.Validation("unknown order status: " + req.Status)
		}
		return nil, apperrors.InvalidOrderState("cannot move order from " + string(view.Order.OrderStatus) + " to " + req.Status)
	}

	if err := s.orders.UpdateStatus(ctx, &placed); err != nil {
		return nil, err
	}
	return &placed, nil
}
