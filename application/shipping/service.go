/*
Package shipping exposes the delivery-offering surface: cities, pickup
stops, pickups and home deliveries.
*/
package shipping

import (
	"context"
	"errors"

	"farmshop/domain/shipping"
	apperrors "farmshop/pkg/errors"

	"github.com/google/uuid"
)

// Service Shipping application service.
type Service struct {
	repo shipping.Repository
}

func NewService(repo shipping.Repository) *Service {
	return &Service{repo: repo}
}

// CityRequest New city payload.
type CityRequest struct {
	City string `json:"city" binding:"required"`
}

func (s *Service) CreateCity(ctx context.Context, req CityRequest) (*shipping.City, error) {
	city := &shipping.City{ID: uuid.NewString(), Name: req.City}
	if err := s.repo.CreateCity(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *Service) ListCities(ctx context.Context) ([]shipping.City, error) {
	return s.repo.ListCities(ctx)
}

// PickupStopRequest New pickup stop payload.
type PickupStopRequest struct {
	CityID    string `json:"cityID" binding:"required"`
	AddressID string `json:"addressID" binding:"required"`
}

func (s *Service) CreatePickupStop(ctx context.Context, hostID string, req PickupStopRequest) (*shipping.PickupStop, error) {
	stop := &shipping.PickupStop{
		ID:        uuid.NewString(),
		CityID:    req.CityID,
		AddressID: req.AddressID,
		HostID:    hostID,
	}
	if err := s.repo.CreatePickupStop(ctx, stop); err != nil {
		return nil, err
	}
	return stop, nil
}

func (s *Service) ListPickupStops(ctx context.Context, cityID string) ([]shipping.PickupStop, error) {
	return s.repo.ListPickupStops(ctx, cityID)
}

// PickupRequest New pickup slot payload.
type PickupRequest struct {
	PickupStopID string              `json:"pickUpStopID" binding:"required"`
	DeliveryDate string              `json:"deliveryDate" binding:"required"`
	TimePeriod   shipping.TimePeriod `json:"timePeriod" binding:"required,oneof=morning day evening"`
	Price        float64             `json:"price" binding:"gte=0"`
	Limit        int                 `json:"limit" binding:"gte=0"`
	Open         bool                `json:"open"`
}

func (s *Service) CreatePickup(ctx context.Context, req PickupRequest) (*shipping.Pickup, error) {
	pickup := &shipping.Pickup{
		ID:           uuid.NewString(),
		PickupStopID: req.PickupStopID,
		DeliveryDate: req.DeliveryDate,
		TimePeriod:   req.TimePeriod,
		Price:        req.Price,
		Limit:        req.Limit,
		Open:         req.Open,
	}
	if err := s.repo.CreatePickup(ctx, pickup); err != nil {
		return nil, err
	}
	return pickup, nil
}

func (s *Service) GetPickup(ctx context.Context, id string) (*shipping.Pickup, error) {
	pickup, err := s.repo.FindPickup(ctx, id)
	if err != nil {
		if errors.Is(err, shipping.ErrPickupNotFound) {
			return nil, apperrors.ShippingNotFound(id)
		}
		return nil, err
	}
	return pickup, nil
}

func (s *Service) ListOpenPickups(ctx context.Context, cityID string) ([]shipping.Pickup, error) {
	return s.repo.ListOpenPickups(ctx, cityID)
}

// HomeDeliveryRequest New home-delivery window payload.
type HomeDeliveryRequest struct {
	CityID       string              `json:"cityID" binding:"required"`
	DeliveryDate string              `json:"deliveryDate" binding:"required"`
	TimePeriod   shipping.TimePeriod `json:"timePeriod" binding:"required,oneof=morning day evening"`
	Price        float64             `json:"price" binding:"gte=0"`
	Limit        int                 `json:"limit" binding:"gte=0"`
	Open         bool                `json:"open"`
}

func (s *Service) CreateHomeDelivery(ctx context.Context, req HomeDeliveryRequest) (*shipping.HomeDelivery, error) {
	delivery := &shipping.HomeDelivery{
		ID:           uuid.NewString(),
		CityID:       req.CityID,
		DeliveryDate: req.DeliveryDate,
		TimePeriod:   req.TimePeriod,
		Price:        req.Price,
		Limit:        req.Limit,
		Open:         req.Open,
	}
	if err := s.repo.CreateHomeDelivery(ctx, delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

func (s *Service) GetHomeDelivery(ctx context.Context, id string) (*shipping.HomeDelivery, error) {
	delivery, err := s.repo.FindHomeDelivery(ctx, id)
	if err != nil {
		if errors.Is(err, shipping.ErrHomeDeliveryNotFound) {
			return nil, apperrors.ShippingNotFound(id)
		}
		return nil, err
	}
	return delivery, nil
}

func (s *Service) ListOpenHomeDeliveries(ctx context.Context, cityID string) ([]shipping.HomeDelivery, error) {
	return s.repo.ListOpenHomeDeliveries(ctx, cityID)
}
