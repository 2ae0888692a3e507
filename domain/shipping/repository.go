package shipping

import "context"

// Repository Persistence boundary for delivery offerings.
type Repository interface {
	CreateCity(ctx context.Context, c *City) error
	ListCities(ctx context.Context) ([]City, error)

	CreatePickupStop(ctx context.Context, s *PickupStop) error
	ListPickupStops(ctx context.Context, cityID string) ([]PickupStop, error)

	CreatePickup(ctx context.Context, p *Pickup) error
	FindPickup(ctx context.Context, id string) (*Pickup, error)
	// ListOpenPickups returns open pickups for every stop in the city.
	ListOpenPickups(ctx context.Context, cityID string) ([]Pickup, error)

	CreateHomeDelivery(ctx context.Context, h *HomeDelivery) error
	FindHomeDelivery(ctx context.Context, id string) (*HomeDelivery, error)
	ListOpenHomeDeliveries(ctx context.Context, cityID string) ([]HomeDelivery, error)
}
