package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of application error. HTTP status mapping
// lives in the api/response package, not here.
type ErrorCode string

const (
	// Generic codes
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest   ErrorCode = "BAD_REQUEST"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeConflict     ErrorCode = "CONFLICT"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Business codes
	CodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	CodeEmailExists       ErrorCode = "EMAIL_EXISTS"
	CodeOrderNotFound     ErrorCode = "ORDER_NOT_FOUND"
	CodeProductNotFound   ErrorCode = "PRODUCT_NOT_FOUND"
	CodeShippingNotFound  ErrorCode = "SHIPPING_NOT_FOUND"
	CodeAddressNotFound   ErrorCode = "ADDRESS_NOT_FOUND"
	CodeInvalidOrderState ErrorCode = "INVALID_ORDER_STATE"
)

// AppError carries an error code and a user-visible message. The wrapped
// error is for logs only and never serialized.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new application error.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an underlying error with a code and message.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common constructors

func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return New(CodeForbidden, message)
}

func Conflict(message string) *AppError {
	return New(CodeConflict, message)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

// Business constructors

func UserNotFound() *AppError {
	return New(CodeUserNotFound, "user not found")
}

func EmailExists() *AppError {
	return New(CodeEmailExists, "email already exists")
}

func OrderNotFound() *AppError {
	return New(CodeOrderNotFound, "order not found")
}

func ProductNotFound(productID string) *AppError {
	return New(CodeProductNotFound, "product not found: "+productID)
}

func ShippingNotFound(shippingID string) *AppError {
	return New(CodeShippingNotFound, "shipping offering not found: "+shippingID)
}

func AddressNotFound(addressID string) *AppError {
	return New(CodeAddressNotFound, "address not found: "+addressID)
}

func InvalidOrderState(message string) *AppError {
	return New(CodeInvalidOrderState, message)
}

// Is reports whether err carries the given error code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// AsAppError converts err to an AppError, wrapping unknown errors as
// internal so no raw message leaks to clients.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeInternal, "internal server error")
}
