package mocks

import (
	"context"
	"sync"

	"farmshop/domain/shipping"
)

// ShippingRepository In-memory implementation of the delivery-offering
// repository.
type ShippingRepository struct {
	mu             sync.RWMutex
	cities         map[string]*shipping.City
	stops          map[string]*shipping.PickupStop
	pickups        map[string]*shipping.Pickup
	homeDeliveries map[string]*shipping.HomeDelivery
}

func NewShippingRepository() *ShippingRepository {
	return &ShippingRepository{
		cities:         make(map[string]*shipping.City),
		stops:          make(map[string]*shipping.PickupStop),
		pickups:        make(map[string]*shipping.Pickup),
		homeDeliveries: make(map[string]*shipping.HomeDelivery),
	}
}

func (r *ShippingRepository) CreateCity(ctx context.Context, c *shipping.City) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *c
	r.cities[c.ID] = &copied
	return nil
}

func (r *ShippingRepository) ListCities(ctx context.Context) ([]shipping.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cities := make([]shipping.City, 0, len(r.cities))
	for _, c := range r.cities {
		cities = append(cities, *c)
	}
	return cities, nil
}

func (r *ShippingRepository) CreatePickupStop(ctx context.Context, s *shipping.PickupStop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *s
	r.stops[s.ID] = &copied
	return nil
}

func (r *ShippingRepository) ListPickupStops(ctx context.Context, cityID string) ([]shipping.PickupStop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var stops []shipping.PickupStop
	for _, s := range r.stops {
		if s.CityID == cityID {
			stops = append(stops, *s)
		}
	}
	return stops, nil
}

func (r *ShippingRepository) CreatePickup(ctx context.Context, p *shipping.Pickup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *p
	r.pickups[p.ID] = &copied
	return nil
}

func (r *ShippingRepository) FindPickup(ctx context.Context, id string) (*shipping.Pickup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, exists := r.pickups[id]
	if !exists {
		return nil, shipping.ErrPickupNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *ShippingRepository) ListOpenPickups(ctx context.Context, cityID string) ([]shipping.Pickup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var pickups []shipping.Pickup
	for _, p := range r.pickups {
		if !p.Open {
			continue
		}
		stop, ok := r.stops[p.PickupStopID]
		if ok && stop.CityID == cityID {
			pickups = append(pickups, *p)
		}
	}
	return pickups, nil
}

func (r *ShippingRepository) CreateHomeDelivery(ctx context.Context, h *shipping.HomeDelivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *h
	r.homeDeliveries[h.ID] = &copied
	return nil
}

func (r *ShippingRepository) FindHomeDelivery(ctx context.Context, id string) (*shipping.HomeDelivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, exists := r.homeDeliveries[id]
	if !exists {
		return nil, shipping.ErrHomeDeliveryNotFound
	}
	copied := *h
	return &copied, nil
}

func (r *ShippingRepository) ListOpenHomeDeliveries(ctx context.Context, cityID string) ([]shipping.HomeDelivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var deliveries []shipping.HomeDelivery
	for _, h := range r.homeDeliveries {
		if h.Open && h.CityID == cityID {
			deliveries = append(deliveries, *h)
		}
	}
	return deliveries, nil
}

var _ shipping.Repository = (*ShippingRepository)(nil)
