package order

import (
	"fmt"
	"regexp"
	"unicode"

	"farmshop/domain/order"
	apperrors "farmshop/pkg/errors"
)

const (
	minQuantity  = 1
	maxQuantity  = 100
	maxNameLen   = 20
	minEmailLen  = 5
	maxEmailLen  = 60
	maxNoteLen   = 100
	maxAddresses = 2
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks the cart payload structurally before any write happens.
// It returns a validation error describing the first violated rule.
func (r *PlaceOrderRequest) Validate() error {
	if err := r.validateItems(); err != nil {
		return err
	}
	if err := r.validateAddresses(); err != nil {
		return err
	}
	if err := r.validateCustomer(); err != nil {
		return err
	}
	return r.validateShipping()
}

func (r *PlaceOrderRequest) validateItems() error {
	if len(r.Items) == 0 {
		return apperrors.Validation("there are no order items selected")
	}
	for _, item := range r.Items {
		if item.ProductID == "" {
			return apperrors.Validation("order item is missing a product ID")
		}
		if item.Quantity < minQuantity || item.Quantity > maxQuantity {
			return apperrors.Validation(fmt.Sprintf("product quantity must be between %d and %d", minQuantity, maxQuantity))
		}
	}
	return nil
}

// validateAddresses enforces the address-pair invariant: one entry with
// both flags set, or two entries forming a disjoint billing/shipping pair.
func (r *PlaceOrderRequest) validateAddresses() error {
	if len(r.Addresses) == 0 || len(r.Addresses) > maxAddresses {
		return apperrors.Validation("an order needs one or two addresses")
	}
	for _, a := range r.Addresses {
		if a.AddressID == "" {
			return apperrors.Validation("order address is missing an address ID")
		}
	}
	if len(r.Addresses) == 1 {
		a := r.Addresses[0]
		if !a.BillingAddress || !a.ShippingAddress {
			return apperrors.Validation("a single order address must be both billing and shipping address")
		}
		return nil
	}

	billing := 0
	shipping := 0
	for _, a := range r.Addresses {
		if a.BillingAddress && a.ShippingAddress {
			return apperrors.Validation("with two addresses, billing and shipping must be separate entries")
		}
		if a.BillingAddress {
			billing++
		}
		if a.ShippingAddress {
			shipping++
		}
	}
	if billing != 1 || shipping != 1 {
		return apperrors.Validation("two order addresses must be exactly one billing and one shipping address")
	}
	return nil
}

func (r *PlaceOrderRequest) validateCustomer() error {
	if err := validateName(r.Customer.Firstname, "first name"); err != nil {
		return err
	}
	if err := validateName(r.Customer.Lastname, "last name"); err != nil {
		return err
	}

	email := r.Customer.Email
	if len(email) < minEmailLen || len(email) > maxEmailLen {
		return apperrors.Validation(fmt.Sprintf("email must be between %d and %d characters", minEmailLen, maxEmailLen))
	}
	if !emailPattern.MatchString(email) {
		return apperrors.Validation("email address is not valid")
	}
	return nil
}

func validateName(name, field string) error {
	if name == "" {
		return apperrors.Validation("the " + field + " is required")
	}
	if len([]rune(name)) > maxNameLen {
		return apperrors.Validation(fmt.Sprintf("the %s can have at most %d characters", field, maxNameLen))
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return apperrors.Validation("the " + field + " can't contain special characters or numbers")
		}
	}
	return nil
}

// validateShipping enforces mode exclusivity: the payload matching
// IsHomeDelivery must be present and the other absent.
func (r *PlaceOrderRequest) validateShipping() error {
	if r.IsHomeDelivery {
		if r.HomeDelivery == nil || r.Pickup != nil {
			return apperrors.Validation("a home-delivery order needs home-delivery data and no pickup data")
		}
		if r.HomeDelivery.HomeDeliveryID == "" {
			return apperrors.Validation("the home-delivery ID is required")
		}
		if r.HomeDelivery.Note == "" {
			return apperrors.Validation("a home-delivery order needs a delivery note")
		}
		if len([]rune(r.HomeDelivery.Note)) > maxNoteLen {
			return apperrors.Validation(fmt.Sprintf("the note can have at most %d characters", maxNoteLen))
		}
		return nil
	}

	if r.Pickup == nil || r.HomeDelivery != nil {
		return apperrors.Validation("a pickup order needs pickup data and no home-delivery data")
	}
	if r.Pickup.PickupID == "" {
		return apperrors.Validation("the pickup ID is required")
	}
	if len([]rune(r.Pickup.Note)) > maxNoteLen {
		return apperrors.Validation(fmt.Sprintf("the note can have at most %d characters", maxNoteLen))
	}
	return nil
}

// shippingSelection resolves the one-of-two payload into a tagged choice.
// Only valid after Validate has passed.
func (r *PlaceOrderRequest) shippingSelection() shippingSelection {
	if r.IsHomeDelivery {
		return shippingSelection{
			Mode:       order.ModeHomeDelivery,
			OfferingID: r.HomeDelivery.HomeDeliveryID,
			Note:       r.HomeDelivery.Note,
		}
	}
	return shippingSelection{
		Mode:       order.ModePickup,
		OfferingID: r.Pickup.PickupID,
		Note:       r.Pickup.Note,
	}
}
