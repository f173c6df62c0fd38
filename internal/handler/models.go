package handler

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"
)

// Суммы во входящих запросах и в ответах в основных единицах (рубли, рупии).
// Исключение: ответ на создание платёжного заказа, там минорные единицы шлюза.

type LineItem struct {
	ProductRef string `json:"productRef" example:"prod_42"`
	Quantity   int    `json:"quantity" example:"2"`
}

type AddressSnapshot struct {
	Name    string `json:"name" example:"Asha Rao"`
	Street  string `json:"address" example:"12 MG Road"`
	City    string `json:"city" example:"Bengaluru"`
	State   string `json:"state" example:"KA"`
	Zip     string `json:"zip" example:"560001"`
	Default bool   `json:"default"`
}

type CreateOrderRequest struct {
	CustomerName    string           `json:"customerName" validate:"required" example:"Asha Rao"`
	Email           string           `json:"email" validate:"required,email" example:"asha@example.com"`
	ExternalUserRef string           `json:"externalUserRef" example:"user_2abc"`
	Products        []LineItem       `json:"products"`
	Address         *AddressSnapshot `json:"address"`
	AddressID       string           `json:"addressId" example:"addr_1"`
	TotalPrice      float64          `json:"totalPrice" validate:"required" example:"499.99"`
	AmountDiscount  float64          `json:"amountDiscount" example:"50"`
	Currency        string           `json:"currency" example:"INR"`
}

func (r CreateOrderRequest) toInput() service.CreateOrderInput {
	in := service.CreateOrderInput{
		CustomerName:    r.CustomerName,
		Email:           r.Email,
		ExternalUserRef: r.ExternalUserRef,
		AddressID:       r.AddressID,
		TotalPrice:      toDecimal(r.TotalPrice),
		AmountDiscount:  toDecimal(r.AmountDiscount),
		Currency:        r.Currency,
	}
	for _, p := range r.Products {
		in.Products = append(in.Products, entities.LineItem{ProductRef: p.ProductRef, Quantity: p.Quantity})
	}
	if r.Address != nil {
		snapshot := AddressSnapshotJSONToEntity(*r.Address)
		in.Address = &snapshot
	}
	return in
}

type CreateOrderResponse struct {
	OK          bool   `json:"ok" example:"true"`
	OrderNumber string `json:"orderNumber" example:"ORD_1718000000000_a1b2c3"`
}

type Order struct {
	OrderNumber          string               `json:"orderNumber" example:"ORD_1718000000000_a1b2c3"`
	CustomerName         string               `json:"customerName"`
	Email                string               `json:"email"`
	ExternalUserRef      string               `json:"externalUserRef,omitempty"`
	Products             []LineItem           `json:"products"`
	Address              AddressSnapshot      `json:"address"`
	TotalPrice           float64              `json:"totalPrice" example:"499.99"`
	AmountDiscount       float64              `json:"amountDiscount" example:"0"`
	Currency             string               `json:"currency" example:"INR"`
	Status               string               `json:"status" example:"paid"`
	OrderDate            time.Time            `json:"orderDate"`
	PaymentDate          *time.Time           `json:"paymentDate,omitempty"`
	GatewayPaymentID     string               `json:"gatewayPaymentId,omitempty"`
	GatewayPaymentLinkID string               `json:"gatewayPaymentLinkId,omitempty"`
	GatewayCustomerID    string               `json:"gatewayCustomerId,omitempty"`
	TrackingDates        map[string]time.Time `json:"trackingDates,omitempty"`
	Recovered            bool                 `json:"recovered,omitempty"`
}

func OrderEntityToJSON(o entities.Order) Order {
	res := Order{
		OrderNumber:          o.OrderNumber,
		CustomerName:         o.CustomerName,
		Email:                o.Email,
		ExternalUserRef:      o.ExternalUserRef,
		Products:             make([]LineItem, 0, len(o.Products)),
		Address:              AddressSnapshotEntityToJSON(o.Address),
		TotalPrice:           money.MinorToFloat(o.TotalPrice),
		AmountDiscount:       money.MinorToFloat(o.AmountDiscount),
		Currency:             o.Currency,
		Status:               string(o.Status),
		OrderDate:            o.OrderDate,
		GatewayPaymentID:     o.GatewayPaymentID,
		GatewayPaymentLinkID: o.GatewayPaymentLinkID,
		GatewayCustomerID:    o.GatewayCustomerID,
		TrackingDates:        o.TrackingDates,
		Recovered:            o.Recovered,
	}
	for _, p := range o.Products {
		res.Products = append(res.Products, LineItem{ProductRef: p.ProductRef, Quantity: p.Quantity})
	}
	if !o.PaymentDate.IsZero() {
		paid := o.PaymentDate
		res.PaymentDate = &paid
	}
	return res
}

func AddressSnapshotEntityToJSON(a entities.AddressSnapshot) AddressSnapshot {
	return AddressSnapshot{
		Name:    a.Name,
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Default: a.Default,
	}
}

func AddressSnapshotJSONToEntity(a AddressSnapshot) entities.AddressSnapshot {
	return entities.AddressSnapshot{
		Name:    a.Name,
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Default: a.Default,
	}
}

type GatewayOrderRequest struct {
	OrderNumber string  `json:"orderNumber" validate:"required" example:"ORD_1718000000000_a1b2c3"`
	Amount      float64 `json:"amount" validate:"required" example:"499.99"`
	Currency    string  `json:"currency" example:"INR"`
}

type GatewayOrderResponse struct {
	OK bool   `json:"ok" example:"true"`
	ID string `json:"id" example:"order_NXa1b2c3"`
	// Минорные единицы
	Amount   int64  `json:"amount" example:"49999"`
	Currency string `json:"currency" example:"INR"`
	KeyID    string `json:"keyId" example:"rzp_test_abc"`
}

type PaymentLinkRequest struct {
	OrderNumber string `json:"orderNumber" validate:"required" example:"ORD_1718000000000_a1b2c3"`
}

type PaymentLinkResponse struct {
	OK            bool   `json:"ok" example:"true"`
	PaymentLinkID string `json:"paymentLinkId" example:"plink_abc"`
	ShortURL      string `json:"short_url" example:"https://rzp.io/i/abc"`
}

type VerifyPaymentRequest struct {
	PaymentID      string `json:"paymentId" validate:"required" example:"pay_abc"`
	GatewayOrderID string `json:"gatewayOrderId" validate:"required" example:"order_NXa1b2c3"`
	Signature      string `json:"signature" validate:"required"`
	OrderNumber    string `json:"orderNumber" validate:"required" example:"ORD_1718000000000_a1b2c3"`
}

type VerifyPaymentResponse struct {
	OK          bool   `json:"ok" example:"true"`
	OrderNumber string `json:"orderNumber" example:"ORD_1718000000000_a1b2c3"`
	Resolution  string `json:"resolution" example:"by_order_number"`
}

type Address struct {
	ID        string    `json:"id" example:"addr_1"`
	Name      string    `json:"name" example:"Asha Rao"`
	Email     string    `json:"email" example:"asha@example.com"`
	Street    string    `json:"address" example:"12 MG Road"`
	City      string    `json:"city" example:"Bengaluru"`
	State     string    `json:"state" example:"KA"`
	Zip       string    `json:"zip" example:"560001"`
	Default   bool      `json:"default"`
	CreatedAt time.Time `json:"createdAt"`
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		Zip:       a.Zip,
		Default:   a.Default,
		CreatedAt: a.CreatedAt,
	}
}

type CreateAddressRequest struct {
	Name    string `json:"name" validate:"required" example:"Asha Rao"`
	Email   string `json:"email" validate:"required,email" example:"asha@example.com"`
	Street  string `json:"address" validate:"required" example:"12 MG Road"`
	City    string `json:"city" validate:"required" example:"Bengaluru"`
	State   string `json:"state" validate:"required" example:"KA"`
	Zip     string `json:"zip" validate:"required" example:"560001"`
	Default bool   `json:"default"`
}

type CreateAddressResponse struct {
	OK      bool    `json:"ok" example:"true"`
	Address Address `json:"address"`
}

type AddressListResponse struct {
	Addresses []Address `json:"addresses"`
}

// StatusUpdate приходит и в админский эндпоинт, и из топика статусов.
type StatusUpdate struct {
	OrderNumber string     `json:"orderNumber" validate:"required" example:"ORD_1718000000000_a1b2c3"`
	Status      string     `json:"status" validate:"required" example:"shipped"`
	TrackingKey string     `json:"trackingKey,omitempty" example:"in_transit"`
	Date        *time.Time `json:"date,omitempty"`
}

func (u StatusUpdate) toInput() service.UpdateStatusInput {
	in := service.UpdateStatusInput{
		OrderNumber: u.OrderNumber,
		Status:      entities.OrderStatus(u.Status),
		TrackingKey: u.TrackingKey,
	}
	if u.Date != nil {
		in.TrackingDate = *u.Date
	}
	return in
}

type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

type OrderSummary struct {
	ID          string `json:"id" example:"order_7b0c"`
	OrderNumber string `json:"orderNumber" example:"ORD_1718000000000_a1b2c3"`
}

type OrderListResponse struct {
	Count int            `json:"count" example:"1"`
	List  []OrderSummary `json:"list"`
}
