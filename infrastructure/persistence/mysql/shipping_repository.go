package mysql

import (
	"context"
	"errors"

	"farmshop/domain/shipping"

	"gorm.io/gorm"
)

// ShippingRepository MySQL/GORM implementation of the delivery-offering
// repository.
type ShippingRepository struct {
	db *gorm.DB
}

func NewShippingRepository(db *gorm.DB) *ShippingRepository {
	return &ShippingRepository{db: db}
}

func (r *ShippingRepository) CreateCity(ctx context.Context, c *shipping.City) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ShippingRepository) ListCities(ctx context.Context) ([]shipping.City, error) {
	var cities []shipping.City
	if err := r.db.WithContext(ctx).Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *ShippingRepository) CreatePickupStop(ctx context.Context, s *shipping.PickupStop) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ShippingRepository) ListPickupStops(ctx context.Context, cityID string) ([]shipping.PickupStop, error) {
	var stops []shipping.PickupStop
	if err := r.db.WithContext(ctx).Where("city_id = ?", cityID).Find(&stops).Error; err != nil {
		return nil, err
	}
	return stops, nil
}

func (r *ShippingRepository) CreatePickup(ctx context.Context, p *shipping.Pickup) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ShippingRepository) FindPickup(ctx context.Context, id string) (*shipping.Pickup, error) {
	var pickup shipping.Pickup
	if err := r.db.WithContext(ctx).First(&pickup, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shipping.ErrPickupNotFound
		}
		return nil, err
	}
	return &pickup, nil
}

func (r *ShippingRepository) ListOpenPickups(ctx context.Context, cityID string) ([]shipping.Pickup, error) {
	var pickups []shipping.Pickup
	if err := r.db.WithContext(ctx).
		Joins("JOIN pickup_stops ON pickup_stops.id = pickups.pickup_stop_id").
		Where("pickup_stops.city_id = ? AND pickups.open = ?", cityID, true).
		Find(&pickups).Error; err != nil {
		return nil, err
	}
	return pickups, nil
}

func (r *ShippingRepository) CreateHomeDelivery(ctx context.Context, h *shipping.HomeDelivery) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *ShippingRepository) FindHomeDelivery(ctx context.Context, id string) (*shipping.HomeDelivery, error) {
	var delivery shipping.HomeDelivery
	if err := r.db.WithContext(ctx).First(&delivery, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shipping.ErrHomeDeliveryNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

func (r *ShippingRepository) ListOpenHomeDeliveries(ctx context.Context, cityID string) ([]shipping.HomeDelivery, error) {
	var deliveries []shipping.HomeDelivery
	if err := r.db.WithContext(ctx).
		Where("city_id = ? AND open = ?", cityID, true).
		Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

var _ shipping.Repository = (*ShippingRepository)(nil)
