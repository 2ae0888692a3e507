package mysql

import (
	"context"
	"errors"

	"farmshop/domain/order"

	"gorm.io/gorm"
)

// OrderRepository MySQL/GORM implementation of the order repository.
// Child rows are written and read explicitly; no GORM associations.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, o *order.PlacedOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) CreateLineItems(ctx context.Context, items []order.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *OrderRepository) CreateOrderAddresses(ctx context.Context, addresses []order.OrderAddress) error {
	if len(addresses) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&addresses).Error
}

func (r *OrderRepository) CreateCustomer(ctx context.Context, c *order.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *OrderRepository) CreatePickupOrder(ctx context.Context, p *order.PickupOrder) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *OrderRepository) CreateHomeDeliveryOrder(ctx context.Context, h *order.HomeDeliveryOrder) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// FindByID assembles the composite view. Soft-deleted orders are
// filtered out by GORM's DeletedAt handling and report not-found.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.View, error) {
	db := r.db.WithContext(ctx)

	var placed order.PlacedOrder
	if err := db.First(&placed, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, err
	}

	var items []order.LineItem
	if err := db.Where("order_id = ?", id).Find(&items).Error; err != nil {
		return nil, err
	}

	var addresses []order.OrderAddress
	if err := db.Where("order_id = ?", id).Find(&addresses).Error; err != nil {
		return nil, err
	}

	var customer order.Customer
	if err := db.First(&customer, "order_id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	suborder, err := r.findSuborder(db, &placed)
	if err != nil {
		return nil, err
	}

	return &order.View{
		Order:            placed,
		Customer:         customer,
		OrderAddresses:   addresses,
		LineItems:        items,
		ShippingSuborder: suborder,
	}, nil
}

func (r *OrderRepository) findSuborder(db *gorm.DB, placed *order.PlacedOrder) (order.ShippingSuborder, error) {
	switch placed.Mode() {
	case order.ModeHomeDelivery:
		var delivery order.HomeDeliveryOrder
		if err := db.First(&delivery, "order_id = ?", placed.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return order.ShippingSuborder{Mode: order.ModeHomeDelivery}, nil
			}
			return order.ShippingSuborder{}, err
		}
		return order.ShippingSuborder{Mode: order.ModeHomeDelivery, HomeDelivery: &delivery}, nil
	case order.ModePickup:
		var pickup order.PickupOrder
		if err := db.First(&pickup, "order_id = ?", placed.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return order.ShippingSuborder{Mode: order.ModePickup}, nil
			}
			return order.ShippingSuborder{}, err
		}
		return order.ShippingSuborder{Mode: order.ModePickup, Pickup: &pickup}, nil
	default:
		return order.ShippingSuborder{}, nil
	}
}

func (r *OrderRepository) FindByUserID(ctx context.Context, userID string) ([]*order.PlacedOrder, error) {
	var orders []*order.PlacedOrder
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.PlacedOrder) error {
	result := r.db.WithContext(ctx).
		Model(&order.PlacedOrder{}).
		Where("id = ?", o.ID).
		Update("order_status", string(o.OrderStatus))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// SoftDelete marks the order and every child row deleted in one
// transaction. Child deletes match on order_id, so it is safe against
// partially written aggregates.
func (r *OrderRepository) SoftDelete(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&order.LineItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&order.OrderAddress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&order.Customer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&order.PickupOrder{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&order.HomeDeliveryOrder{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", orderID).Delete(&order.PlacedOrder{}).Error
	})
}

var _ order.Repository = (*OrderRepository)(nil)
