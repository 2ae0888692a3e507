package order

import (
	"strings"
	"testing"

	apperrors "farmshop/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() PlaceOrderRequest {
	return pickupRequest()
}

func TestValidate_Items(t *testing.T) {
	tests := []struct {
		name    string
		items   []ItemPayload
		wantErr bool
	}{
		{"no items", nil, true},
		{"quantity zero", []ItemPayload{{ProductID: "p", Quantity: 0}}, true},
		{"quantity negative", []ItemPayload{{ProductID: "p", Quantity: -1}}, true},
		{"quantity above limit", []ItemPayload{{ProductID: "p", Quantity: 101}}, true},
		{"missing product id", []ItemPayload{{Quantity: 1}}, true},
		{"quantity at lower bound", []ItemPayload{{ProductID: "p", Quantity: 1}}, false},
		{"quantity at upper bound", []ItemPayload{{ProductID: "p", Quantity: 100}}, false},
		{"second item invalid", []ItemPayload{{ProductID: "p", Quantity: 5}, {ProductID: "q", Quantity: 200}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Items = tt.items
			err := req.Validate()
			if tt.wantErr {
				assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Addresses(t *testing.T) {
	tests := []struct {
		name      string
		addresses []AddressPayload
		wantErr   bool
	}{
		{"no addresses", nil, true},
		{"three addresses", []AddressPayload{
			{AddressID: "a", BillingAddress: true},
			{AddressID: "b", ShippingAddress: true},
			{AddressID: "c"},
		}, true},
		{"single with both roles", []AddressPayload{
			{AddressID: "a", BillingAddress: true, ShippingAddress: true},
		}, false},
		{"single missing a role", []AddressPayload{
			{AddressID: "a", BillingAddress: true},
		}, true},
		{"disjoint pair", []AddressPayload{
			{AddressID: "a", BillingAddress: true},
			{AddressID: "b", ShippingAddress: true},
		}, false},
		{"pair with double-role entry", []AddressPayload{
			{AddressID: "a", BillingAddress: true, ShippingAddress: true},
			{AddressID: "b", ShippingAddress: true},
		}, true},
		{"pair both billing", []AddressPayload{
			{AddressID: "a", BillingAddress: true},
			{AddressID: "b", BillingAddress: true},
		}, true},
		{"pair with missing id", []AddressPayload{
			{AddressID: "", BillingAddress: true},
			{AddressID: "b", ShippingAddress: true},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Addresses = tt.addresses
			err := req.Validate()
			if tt.wantErr {
				assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Customer(t *testing.T) {
	tests := []struct {
		name     string
		customer CustomerPayload
		wantErr  bool
	}{
		{"valid", CustomerPayload{Firstname: "Anna", Lastname: "Berg", Email: "anna@example.com"}, false},
		{"empty firstname", CustomerPayload{Firstname: "", Lastname: "Berg", Email: "anna@example.com"}, true},
		{"firstname too long", CustomerPayload{Firstname: strings.Repeat("a", 21), Lastname: "Berg", Email: "anna@example.com"}, true},
		{"firstname with digit", CustomerPayload{Firstname: "Anna2", Lastname: "Berg", Email: "anna@example.com"}, true},
		{"lastname with symbol", CustomerPayload{Firstname: "Anna", Lastname: "Be-rg", Email: "anna@example.com"}, true},
		{"email too short", CustomerPayload{Firstname: "Anna", Lastname: "Berg", Email: "a@b"}, true},
		{"email too long", CustomerPayload{Firstname: "Anna", Lastname: "Berg", Email: strings.Repeat("a", 55) + "@b.com"}, true},
		{"email malformed", CustomerPayload{Firstname: "Anna", Lastname: "Berg", Email: "anna.example.com"}, true},
		{"unicode name", CustomerPayload{Firstname: "Åsa", Lastname: "Öberg", Email: "asa@example.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Customer = tt.customer
			err := req.Validate()
			if tt.wantErr {
				assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_ShippingExclusivity(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PlaceOrderRequest)
		wantErr bool
	}{
		{"pickup only", func(r *PlaceOrderRequest) {}, false},
		{"pickup flag with home-delivery data", func(r *PlaceOrderRequest) {
			r.HomeDelivery = &HomeDeliveryPayload{HomeDeliveryID: "hd-1", Note: "n"}
		}, true},
		{"pickup missing data", func(r *PlaceOrderRequest) {
			r.Pickup = nil
		}, true},
		{"pickup missing id", func(r *PlaceOrderRequest) {
			r.Pickup = &PickupPayload{}
		}, true},
		{"pickup note optional", func(r *PlaceOrderRequest) {
			r.Pickup = &PickupPayload{PickupID: "pickup-1", Note: ""}
		}, false},
		{"pickup note too long", func(r *PlaceOrderRequest) {
			r.Pickup = &PickupPayload{PickupID: "pickup-1", Note: strings.Repeat("x", 101)}
		}, true},
		{"home delivery valid", func(r *PlaceOrderRequest) {
			r.IsHomeDelivery = true
			r.Pickup = nil
			r.HomeDelivery = &HomeDeliveryPayload{HomeDeliveryID: "hd-1", Note: "ring twice"}
		}, false},
		{"home delivery note required", func(r *PlaceOrderRequest) {
			r.IsHomeDelivery = true
			r.Pickup = nil
			r.HomeDelivery = &HomeDeliveryPayload{HomeDeliveryID: "hd-1"}
		}, true},
		{"home delivery with pickup data", func(r *PlaceOrderRequest) {
			r.IsHomeDelivery = true
			r.HomeDelivery = &HomeDeliveryPayload{HomeDeliveryID: "hd-1", Note: "n"}
		}, true},
		{"home delivery missing data", func(r *PlaceOrderRequest) {
			r.IsHomeDelivery = true
			r.Pickup = nil
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShippingSelection(t *testing.T) {
	req := validRequest()
	req.Pickup.Note = "back entrance"
	require.NoError(t, req.Validate())

	sel := req.shippingSelection()
	assert.Equal(t, "pickup-1", sel.OfferingID)
	assert.Equal(t, "back entrance", sel.Note)
}
