/*
Package mocks provides in-memory repository implementations. They back
the mock database mode and the service tests; the order mock carries
per-method failure hooks so tests can force any step of the placement
flow to fail.
*/
package mocks

import (
	"context"
	"sort"
	"sync"

	"farmshop/domain/order"
)

// OrderRepository In-memory implementation of the order repository.
// Setting one of the Fail* fields makes the matching method return that
// error without writing anything.
type OrderRepository struct {
	mu             sync.RWMutex
	orders         map[string]*order.PlacedOrder
	items          map[string][]order.LineItem
	addresses      map[string][]order.OrderAddress
	customers      map[string]*order.Customer
	pickups        map[string]*order.PickupOrder
	homeDeliveries map[string]*order.HomeDeliveryOrder
	deleted        map[string]bool

	FailCreateOrder             error
	FailCreateLineItems         error
	FailCreateOrderAddresses    error
	FailCreateCustomer          error
	FailCreatePickupOrder       error
	FailCreateHomeDeliveryOrder error
	FailSoftDelete              error
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders:         make(map[string]*order.PlacedOrder),
		items:          make(map[string][]order.LineItem),
		addresses:      make(map[string][]order.OrderAddress),
		customers:      make(map[string]*order.Customer),
		pickups:        make(map[string]*order.PickupOrder),
		homeDeliveries: make(map[string]*order.HomeDeliveryOrder),
		deleted:        make(map[string]bool),
	}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, o *order.PlacedOrder) error {
	if r.FailCreateOrder != nil {
		return r.FailCreateOrder
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *o
	r.orders[o.ID] = &copied
	return nil
}

func (r *OrderRepository) CreateLineItems(ctx context.Context, items []order.LineItem) error {
	if r.FailCreateLineItems != nil {
		return r.FailCreateLineItems
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		r.items[item.OrderID] = append(r.items[item.OrderID], item)
	}
	return nil
}

func (r *OrderRepository) CreateOrderAddresses(ctx context.Context, addresses []order.OrderAddress) error {
	if r.FailCreateOrderAddresses != nil {
		return r.FailCreateOrderAddresses
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range addresses {
		r.addresses[a.OrderID] = append(r.addresses[a.OrderID], a)
	}
	return nil
}

func (r *OrderRepository) CreateCustomer(ctx context.Context, c *order.Customer) error {
	if r.FailCreateCustomer != nil {
		return r.FailCreateCustomer
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *c
	r.customers[c.OrderID] = &copied
	return nil
}

func (r *OrderRepository) CreatePickupOrder(ctx context.Context, p *order.PickupOrder) error {
	if r.FailCreatePickupOrder != nil {
		return r.FailCreatePickupOrder
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *p
	r.pickups[p.OrderID] = &copied
	return nil
}

func (r *OrderRepository) CreateHomeDeliveryOrder(ctx context.Context, h *order.HomeDeliveryOrder) error {
	if r.FailCreateHomeDeliveryOrder != nil {
		return r.FailCreateHomeDeliveryOrder
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *h
	r.homeDeliveries[h.OrderID] = &copied
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.View, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	placed, exists := r.orders[id]
	if !exists || r.deleted[id] {
		return nil, order.ErrOrderNotFound
	}

	view := &order.View{
		Order:          *placed,
		OrderAddresses: append([]order.OrderAddress(nil), r.addresses[id]...),
		LineItems:      append([]order.LineItem(nil), r.items[id]...),
	}
	if c, ok := r.customers[id]; ok {
		view.Customer = *c
	}
	switch placed.Mode() {
	case order.ModeHomeDelivery:
		view.ShippingSuborder.Mode = order.ModeHomeDelivery
		if h, ok := r.homeDeliveries[id]; ok {
			copied := *h
			view.ShippingSuborder.HomeDelivery = &copied
		}
	case order.ModePickup:
		view.ShippingSuborder.Mode = order.ModePickup
		if p, ok := r.pickups[id]; ok {
			copied := *p
			view.ShippingSuborder.Pickup = &copied
		}
	}
	return view, nil
}

func (r *OrderRepository) FindByUserID(ctx context.Context, userID string) ([]*order.PlacedOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []*order.PlacedOrder
	for id, o := range r.orders {
		if o.UserID == userID && !r.deleted[id] {
			copied := *o
			orders = append(orders, &copied)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.PlacedOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.orders[o.ID]
	if !exists || r.deleted[o.ID] {
		return order.ErrOrderNotFound
	}
	existing.OrderStatus = o.OrderStatus
	return nil
}

func (r *OrderRepository) SoftDelete(ctx context.Context, orderID string) error {
	if r.FailSoftDelete != nil {
		return r.FailSoftDelete
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted[orderID] = true
	return nil
}

// Deleted reports whether the order was soft-deleted. Test helper.
func (r *OrderRepository) Deleted(orderID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.deleted[orderID]
}

// OrderIDs returns the IDs of every stored parent order, soft-deleted
// included. Test helper.
func (r *OrderRepository) OrderIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.orders))
	for id := range r.orders {
		ids = append(ids, id)
	}
	return ids
}

// OrderCount returns the number of stored parent orders, soft-deleted
// included. Test helper.
func (r *OrderRepository) OrderCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

var _ order.Repository = (*OrderRepository)(nil)
