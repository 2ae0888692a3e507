package order

import "errors"

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrUnknownStatus           = errors.New("unknown order status")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)
