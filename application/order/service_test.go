package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"farmshop/domain/catalog"
	"farmshop/domain/order"
	"farmshop/domain/shipping"
	"farmshop/infrastructure/persistence/mocks"
	apperrors "farmshop/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	orders   *mocks.OrderRepository
	catalog  *mocks.CatalogRepository
	shipping *mocks.ShippingRepository
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	orders := mocks.NewOrderRepository()
	catalogRepo := mocks.NewCatalogRepository()
	shippingRepo := mocks.NewShippingRepository()

	ctx := context.Background()
	require.NoError(t, catalogRepo.CreateProduct(ctx, &catalog.Product{ID: "prod-1", Price: 10.0}))
	require.NoError(t, catalogRepo.CreateProduct(ctx, &catalog.Product{ID: "prod-2", Price: 3.5}))
	require.NoError(t, shippingRepo.CreatePickup(ctx, &shipping.Pickup{
		ID: "pickup-1", PickupStopID: "stop-1", Price: 5.0, Open: true,
	}))
	require.NoError(t, shippingRepo.CreateHomeDelivery(ctx, &shipping.HomeDelivery{
		ID: "hd-1", CityID: "city-1", Price: 7.5, Open: true,
	}))

	calc := NewCalculator(catalogRepo, shippingRepo)
	return &fixture{
		orders:   orders,
		catalog:  catalogRepo,
		shipping: shippingRepo,
		service:  NewService(orders, calc),
	}
}

func pickupRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		IsHomeDelivery: false,
		Customer: CustomerPayload{
			Firstname: "Anna",
			Lastname:  "Berg",
			Email:     "anna@example.com",
		},
		Addresses: []AddressPayload{
			{AddressID: "addr-1", BillingAddress: true, ShippingAddress: true},
		},
		Items: []ItemPayload{
			{ProductID: "prod-1", Quantity: 2},
		},
		Pickup: &PickupPayload{PickupID: "pickup-1"},
	}
}

func TestPlaceOrder_Pickup(t *testing.T) {
	f := newFixture(t)

	view, err := f.service.PlaceOrder(context.Background(), "user-1", pickupRequest())
	require.NoError(t, err)

	// 2 x 10.00 + 5.00 pickup fee
	assert.Equal(t, 25.0, view.Order.TotalPrice)
	assert.Equal(t, 12.0, view.Order.TotalTaxes)
	assert.Equal(t, 5.0, view.Order.DeliveryFee)
	assert.Equal(t, order.StatusPendingPayment, view.Order.OrderStatus)
	assert.Equal(t, "user-1", view.Order.UserID)
	require.NotNil(t, view.Order.IsHomeDelivery)
	assert.False(t, *view.Order.IsHomeDelivery)

	require.Len(t, view.LineItems, 1)
	assert.Equal(t, order.ItemStatusAwaitingFulfillment, view.LineItems[0].Status)
	assert.Equal(t, 2, view.LineItems[0].Quantity)

	require.Len(t, view.OrderAddresses, 1)
	assert.True(t, view.OrderAddresses[0].Billing)
	assert.True(t, view.OrderAddresses[0].Shipping)

	assert.Equal(t, "anna@example.com", view.Customer.Email)
	assert.Equal(t, view.Order.ID, view.Customer.OrderID)

	assert.Equal(t, order.ModePickup, view.ShippingSuborder.Mode)
	require.NotNil(t, view.ShippingSuborder.Pickup)
	assert.Nil(t, view.ShippingSuborder.HomeDelivery)
	assert.Equal(t, 5.0, view.ShippingSuborder.Pickup.FinalDeliveryFee)
	assert.Equal(t, order.ShippingStatusNotShipped, view.ShippingSuborder.Pickup.Status)
}

func TestPlaceOrder_HomeDelivery(t *testing.T) {
	f := newFixture(t)

	req := pickupRequest()
	req.IsHomeDelivery = true
	req.Pickup = nil
	req.HomeDelivery = &HomeDeliveryPayload{HomeDeliveryID: "hd-1", Note: "leave at the door"}
	req.Items = []ItemPayload{
		{ProductID: "prod-1", Quantity: 1},
		{ProductID: "prod-2", Quantity: 4},
	}

	view, err := f.service.PlaceOrder(context.Background(), "user-1", req)
	require.NoError(t, err)

	// 10.00 + 4 x 3.50 + 7.50 delivery fee
	assert.Equal(t, 31.5, view.Order.TotalPrice)
	require.NotNil(t, view.Order.IsHomeDelivery)
	assert.True(t, *view.Order.IsHomeDelivery)

	assert.Equal(t, order.ModeHomeDelivery, view.ShippingSuborder.Mode)
	require.NotNil(t, view.ShippingSuborder.HomeDelivery)
	assert.Nil(t, view.ShippingSuborder.Pickup)
	assert.Equal(t, "leave at the door", view.ShippingSuborder.HomeDelivery.Note)
	assert.Len(t, view.LineItems, 2)
}

func TestPlaceOrder_UnknownProductCreatesNothing(t *testing.T) {
	f := newFixture(t)

	req := pickupRequest()
	req.Items = []ItemPayload{{ProductID: "prod-missing", Quantity: 1}}

	_, err := f.service.PlaceOrder(context.Background(), "user-1", req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeProductNotFound))
	assert.Equal(t, 0, f.orders.OrderCount())
}

func TestPlaceOrder_UnknownShippingCreatesNothing(t *testing.T) {
	f := newFixture(t)

	req := pickupRequest()
	req.Pickup = &PickupPayload{PickupID: "pickup-missing"}

	_, err := f.service.PlaceOrder(context.Background(), "user-1", req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeShippingNotFound))
	assert.Equal(t, 0, f.orders.OrderCount())
}

func TestPlaceOrder_InvalidPayloadCreatesNothing(t *testing.T) {
	f := newFixture(t)

	req := pickupRequest()
	req.Customer.Email = "bad"

	_, err := f.service.PlaceOrder(context.Background(), "user-1", req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
	assert.Equal(t, 0, f.orders.OrderCount())
}

func TestPlaceOrder_ChildWriteFailureRollsBack(t *testing.T) {
	cause := errors.New("customer insert failed")

	tests := []struct {
		name  string
		setup func(*mocks.OrderRepository)
	}{
		{"line items fail", func(r *mocks.OrderRepository) { r.FailCreateLineItems = cause }},
		{"addresses fail", func(r *mocks.OrderRepository) { r.FailCreateOrderAddresses = cause }},
		{"customer fails", func(r *mocks.OrderRepository) { r.FailCreateCustomer = cause }},
		{"suborder fails", func(r *mocks.OrderRepository) { r.FailCreatePickupOrder = cause }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f.orders)

			_, err := f.service.PlaceOrder(context.Background(), "user-1", pickupRequest())
			require.Error(t, err)

			// The original cause is surfaced, wrapped as internal.
			assert.True(t, apperrors.Is(err, apperrors.CodeInternal))
			assert.ErrorIs(t, err, cause)

			// The parent row was written, then compensated away.
			require.Equal(t, 1, f.orders.OrderCount())
			ids := f.orders.OrderIDs()
			require.Len(t, ids, 1)
			assert.True(t, f.orders.Deleted(ids[0]))
			_, findErr := f.orders.FindByID(context.Background(), ids[0])
			assert.ErrorIs(t, findErr, order.ErrOrderNotFound)
			orders, listErr := f.orders.FindByUserID(context.Background(), "user-1")
			require.NoError(t, listErr)
			assert.Empty(t, orders)
		})
	}
}

func TestPlaceOrder_RollbackFailureStillSurfacesCause(t *testing.T) {
	f := newFixture(t)
	cause := errors.New("customer insert failed")
	f.orders.FailCreateCustomer = cause
	f.orders.FailSoftDelete = errors.New("delete failed too")

	_, err := f.service.PlaceOrder(context.Background(), "user-1", pickupRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestPlaceOrder_PublishesEvent(t *testing.T) {
	f := newFixture(t)
	publisher := mocks.NewEventPublisher()
	f.service.SetEventPublisher(publisher)

	view, err := f.service.PlaceOrder(context.Background(), "user-1", pickupRequest())
	require.NoError(t, err)

	// Publishing runs on its own goroutine after the order is placed.
	require.Eventually(t, func() bool {
		return len(publisher.Events()) == 1
	}, time.Second, 10*time.Millisecond)

	event := publisher.Events()[0]
	assert.Equal(t, "order.placed", event.Name)
	assert.Equal(t, view.Order.ID, event.OrderID)
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, 25.0, event.TotalPrice)
	assert.Equal(t, 5.0, event.DeliveryFee)
	assert.Equal(t, string(order.ModePickup), event.Mode)
}

func TestPlaceOrder_PublishFailureLeavesOrderIntact(t *testing.T) {
	f := newFixture(t)
	publisher := mocks.NewEventPublisher()
	publisher.FailPublish = errors.New("broker unreachable")
	f.service.SetEventPublisher(publisher)

	view, err := f.service.PlaceOrder(context.Background(), "user-1", pickupRequest())
	require.NoError(t, err)

	got, err := f.service.GetOrder(context.Background(), view.Order.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPendingPayment, got.Order.OrderStatus)
	assert.Empty(t, publisher.Events())
}

func TestGetOrder(t *testing.T) {
	f := newFixture(t)

	view, err := f.service.PlaceOrder(context.Background(), "user-1", pickupRequest())
	require.NoError(t, err)

	t.Run("owner reads own order", func(t *testing.T) {
		got, err := f.service.GetOrder(context.Background(), view.Order.ID, "user-1", false)
		require.NoError(t, err)
		assert.Equal(t, view.Order.ID, got.Order.ID)
		assert.Equal(t, view.Order.TotalPrice, got.Order.TotalPrice)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := f.service.GetOrder(context.Background(), view.Order.ID, "user-2", false)
		assert.True(t, apperrors.Is(err, apperrors.CodeForbidden))
	})

	t.Run("repeated reads return the same view", func(t *testing.T) {
		first, err := f.service.GetOrder(context.Background(), view.Order.ID, "user-1", false)
		require.NoError(t, err)
		second, err := f.service.GetOrder(context.Background(), view.Order.ID, "user-1", false)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("admin reads any order", func(t *testing.T) {
		_, err := f.service.GetOrder(context.Background(), view.Order.ID, "admin-1", true)
		assert.NoError(t, err)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := f.service.GetOrder(context.Background(), "order-missing", "user-1", false)
		assert.True(t, apperrors.Is(err, apperrors.CodeOrderNotFound))
	})
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)

	view, err := f.service.PlaceOrder(context.Background(), "user-1", pickupRequest())
	require.NoError(t, err)

	t.Run("allowed transition", func(t *testing.T) {
		placed, err := f.service.UpdateStatus(context.Background(), view.Order.ID, UpdateStatusRequest{Status: "on_hold"})
		require.NoError(t, err)
		assert.Equal(t, order.StatusOnHold, placed.OrderStatus)
	})

	t.Run("disallowed transition", func(t *testing.T) {
		_, err := f.service.UpdateStatus(context.Background(), view.Order.ID, UpdateStatusRequest{Status: "completed"})
		assert.True(t, apperrors.Is(err, apperrors.CodeInvalidOrderState))
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := f.service.UpdateStatus(context.Background(), view.Order.ID, UpdateStatusRequest{Status: "shipped_maybe"})
		assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
	})
}

func TestPricing(t *testing.T) {
	f := newFixture(t)
	calc := NewCalculator(f.catalog, f.shipping)

	price, err := calc.PriceLineItem(context.Background(), "prod-2", 3)
	require.NoError(t, err)
	assert.Equal(t, 10.5, price)

	fee, err := calc.ShippingFee(context.Background(), "hd-1", order.ModeHomeDelivery)
	require.NoError(t, err)
	assert.Equal(t, 7.5, fee)

	_, err = calc.ShippingFee(context.Background(), "pickup-1", order.ModeHomeDelivery)
	assert.True(t, apperrors.Is(err, apperrors.CodeShippingNotFound))
}
