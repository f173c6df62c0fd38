package entities

import (
	"strings"
	"time"
)

const PaymentStatusCaptured = "captured"

// GatewayOrder is the gateway-side order the checkout UI collects payment for.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

type PaymentLink struct {
	ID          string
	ShortURL    string
	ReferenceID string
	Amount      int64
	Currency    string
	Status      string
}

type GatewayPayment struct {
	ID         string
	OrderID    string
	Status     string
	Amount     int64
	Currency   string
	Email      string
	Contact    string
	CustomerID string
}

func (p GatewayPayment) Captured() bool {
	return strings.EqualFold(p.Status, PaymentStatusCaptured)
}

// Resolution tells how a verified payment was matched to an order.
type Resolution string

const (
	ResolvedByOrderNumber Resolution = "by_order_number"
	ResolvedByReference   Resolution = "by_reference"
	ResolvedByPaymentLink Resolution = "by_payment_link"
	ResolvedSynthesized   Resolution = "synthesized"
)

type Reconciliation struct {
	OrderNumber string
	Resolution  Resolution
}

func (r Reconciliation) Synthesized() bool {
	return r.Resolution == ResolvedSynthesized
}

type OrderEventType string

const (
	EventOrderCreated OrderEventType = "order.created"
	EventOrderPaid    OrderEventType = "order.paid"
)

type OrderEvent struct {
	Type        OrderEventType `json:"type"`
	OrderNumber string         `json:"orderNumber"`
	Status      OrderStatus    `json:"status"`
	TotalPrice  int64          `json:"totalPrice"`
	Currency    string         `json:"currency"`
	PaymentID   string         `json:"paymentId,omitempty"`
	Recovered   bool           `json:"recovered,omitempty"`
	OccurredAt  time.Time      `json:"occurredAt"`
}

// PaymentLinkRequest describes a hosted payment link tied to an order number.
type PaymentLinkRequest struct {
	Amount        int64
	Currency      string
	ReferenceID   string
	Description   string
	CustomerName  string
	CustomerEmail string
	CallbackURL   string
}
