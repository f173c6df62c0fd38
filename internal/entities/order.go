package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusProcessing     OrderStatus = "processing"
	StatusPaid           OrderStatus = "paid"
	StatusShipped        OrderStatus = "shipped"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusPaid, StatusShipped,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Tracking keys accepted by administrative status updates.
var TrackingKeys = []string{"placed", "packed", "in_transit", "out_for_delivery", "delivered"}

func ValidTrackingKey(key string) bool {
	for _, k := range TrackingKeys {
		if k == key {
			return true
		}
	}
	return false
}

type LineItem struct {
	ProductRef string
	Quantity   int
}

// AddressSnapshot is a copy of the shipping address taken when the order was
// created. Later edits of the saved address do not touch it.
type AddressSnapshot struct {
	Name    string
	Street  string
	City    string
	State   string
	Zip     string
	Default bool
}

type Order struct {
	ID              string
	OrderNumber     string
	CustomerName    string
	Email           string
	ExternalUserRef string
	Products        []LineItem
	Address         AddressSnapshot

	// Суммы хранятся в минорных единицах (пайсы)
	TotalPrice     int64
	Currency       string
	AmountDiscount int64

	Status      OrderStatus
	OrderDate   time.Time
	PaymentDate time.Time

	GatewayPaymentID     string
	GatewayPaymentLinkID string
	GatewayCustomerID    string

	TrackingDates map[string]time.Time

	// Recovered marks an order synthesized by payment verification because no
	// matching cart-originated order was found.
	Recovered bool
}

// OrderPatch lists the fields a patch overwrites. Nil fields are left as is.
type OrderPatch struct {
	Status               *OrderStatus
	GatewayPaymentID     *string
	GatewayPaymentLinkID *string
	GatewayCustomerID    *string
	PaymentDate          *time.Time

	// TrackingKey, when set, stamps TrackingDates[TrackingKey] = TrackingDate.
	TrackingKey  string
	TrackingDate time.Time
}

func (p OrderPatch) Apply(o *Order) {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.GatewayPaymentID != nil {
		o.GatewayPaymentID = *p.GatewayPaymentID
	}
	if p.GatewayPaymentLinkID != nil {
		o.GatewayPaymentLinkID = *p.GatewayPaymentLinkID
	}
	if p.GatewayCustomerID != nil {
		o.GatewayCustomerID = *p.GatewayCustomerID
	}
	if p.PaymentDate != nil {
		o.PaymentDate = *p.PaymentDate
	}
	if p.TrackingKey != "" {
		if o.TrackingDates == nil {
			o.TrackingDates = make(map[string]time.Time)
		}
		o.TrackingDates[p.TrackingKey] = p.TrackingDate
	}
}

type OrderSummary struct {
	ID          string
	OrderNumber string
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(AddressSnapshot{})
	gob.Register(LineItem{})
}
