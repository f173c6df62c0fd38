package entities

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrGateway            = errors.New("payment gateway error")
	ErrPaymentNotCaptured = errors.New("payment not captured")
	ErrOrderNotFound      = errors.New("order not found")
	ErrAddressNotFound    = errors.New("address not found")
	ErrStore              = errors.New("store error")
	ErrInvalidOrder       = errors.New("invalid order data")
)

// Reason codes returned to API clients.
const (
	ReasonMissingFields      = "missing_required_fields"
	ReasonInvalidAmount      = "invalid_amount"
	ReasonInvalidProducts    = "invalid_products"
	ReasonInvalidStatus      = "invalid_status"
	ReasonInvalidTrackingKey = "invalid_tracking_key"
	ReasonInvalidAddress     = "invalid_address"
)

type ValidationError struct {
	Reason string
	Field  string
}

func NewValidationError(reason, field string) *ValidationError {
	return &ValidationError{Reason: reason, Field: field}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed: %s (%s)", e.Reason, e.Field)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// GatewayError is a transport failure or a non-2xx response of the payment gateway.
type GatewayError struct {
	Op          string
	StatusCode  int
	Code        string
	Description string
	Err         error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gateway %s: status %d: %s %s", e.Op, e.StatusCode, e.Code, e.Description)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func (e *GatewayError) Is(target error) bool {
	return target == ErrGateway
}

type PaymentNotCapturedError struct {
	PaymentID string
	Status    string
}

func (e *PaymentNotCapturedError) Error() string {
	return fmt.Sprintf("payment %s not captured: status %q", e.PaymentID, e.Status)
}

func (e *PaymentNotCapturedError) Is(target error) bool {
	return target == ErrPaymentNotCaptured
}

type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}
