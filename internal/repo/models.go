package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

var orderColumns = []string{
	"id", "order_number", "customer_name", "email", "external_user_ref",
	"total_price", "currency", "amount_discount",
	"address_name", "address_street", "address_city", "address_state", "address_zip", "address_default",
	"status", "order_date", "payment_date",
	"gateway_payment_id", "gateway_payment_link_id", "gateway_customer_id",
	"tracking_dates", "recovered",
}

var itemColumns = []string{"order_id", "position", "product_ref", "quantity"}

var addressColumns = []string{"id", "name", "email", "street", "city", "state", "zip", "is_default", "created_at"}

type Order struct {
	ID              string `db:"id"`
	OrderNumber     string `db:"order_number"`
	CustomerName    string `db:"customer_name"`
	Email           string `db:"email"`
	ExternalUserRef string `db:"external_user_ref"`

	TotalPrice     int64  `db:"total_price"`
	Currency       string `db:"currency"`
	AmountDiscount int64  `db:"amount_discount"`

	AddressName    sql.NullString `db:"address_name"`
	AddressStreet  sql.NullString `db:"address_street"`
	AddressCity    sql.NullString `db:"address_city"`
	AddressState   sql.NullString `db:"address_state"`
	AddressZip     sql.NullString `db:"address_zip"`
	AddressDefault bool           `db:"address_default"`

	Status      string       `db:"status"`
	OrderDate   time.Time    `db:"order_date"`
	PaymentDate sql.NullTime `db:"payment_date"`

	GatewayPaymentID     sql.NullString `db:"gateway_payment_id"`
	GatewayPaymentLinkID sql.NullString `db:"gateway_payment_link_id"`
	GatewayCustomerID    sql.NullString `db:"gateway_customer_id"`

	TrackingDates []byte `db:"tracking_dates"`
	Recovered     bool   `db:"recovered"`
}

// values follows the order of orderColumns. JSONB goes as text: lib/pq would
// send []byte as bytea.
func (o Order) values() []any {
	return []any{
		o.ID, o.OrderNumber, o.CustomerName, o.Email, o.ExternalUserRef,
		o.TotalPrice, o.Currency, o.AmountDiscount,
		o.AddressName, o.AddressStreet, o.AddressCity, o.AddressState, o.AddressZip, o.AddressDefault,
		o.Status, o.OrderDate, o.PaymentDate,
		o.GatewayPaymentID, o.GatewayPaymentLinkID, o.GatewayCustomerID,
		string(o.TrackingDates), o.Recovered,
	}
}

type Item struct {
	OrderID    string `db:"order_id"`
	Position   int    `db:"position"`
	ProductRef string `db:"product_ref"`
	Quantity   int    `db:"quantity"`
}

type Address struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Street    string    `db:"street"`
	City      string    `db:"city"`
	State     string    `db:"state"`
	Zip       string    `db:"zip"`
	IsDefault bool      `db:"is_default"`
	CreatedAt time.Time `db:"created_at"`
}

func OrderFromEntity(o entities.Order) (Order, error) {
	tracking := []byte("{}")
	if len(o.TrackingDates) > 0 {
		data, err := json.Marshal(o.TrackingDates)
		if err != nil {
			return Order{}, err
		}
		tracking = data
	}

	return Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		Email:           o.Email,
		ExternalUserRef: o.ExternalUserRef,

		TotalPrice:     o.TotalPrice,
		Currency:       o.Currency,
		AmountDiscount: o.AmountDiscount,

		AddressName:    nullString(o.Address.Name),
		AddressStreet:  nullString(o.Address.Street),
		AddressCity:    nullString(o.Address.City),
		AddressState:   nullString(o.Address.State),
		AddressZip:     nullString(o.Address.Zip),
		AddressDefault: o.Address.Default,

		Status:      string(o.Status),
		OrderDate:   o.OrderDate,
		PaymentDate: nullTime(o.PaymentDate),

		GatewayPaymentID:     nullString(o.GatewayPaymentID),
		GatewayPaymentLinkID: nullString(o.GatewayPaymentLinkID),
		GatewayCustomerID:    nullString(o.GatewayCustomerID),

		TrackingDates: tracking,
		Recovered:     o.Recovered,
	}, nil
}

func OrderToEntity(o Order, items []Item) (entities.Order, error) {
	order := entities.Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		Email:           o.Email,
		ExternalUserRef: o.ExternalUserRef,
		TotalPrice:      o.TotalPrice,
		Currency:        o.Currency,
		AmountDiscount:  o.AmountDiscount,
		Address: entities.AddressSnapshot{
			Name:    nullStringToString(o.AddressName),
			Street:  nullStringToString(o.AddressStreet),
			City:    nullStringToString(o.AddressCity),
			State:   nullStringToString(o.AddressState),
			Zip:     nullStringToString(o.AddressZip),
			Default: o.AddressDefault,
		},
		Status:               entities.OrderStatus(o.Status),
		OrderDate:            o.OrderDate,
		PaymentDate:          nullTimeToTime(o.PaymentDate),
		GatewayPaymentID:     nullStringToString(o.GatewayPaymentID),
		GatewayPaymentLinkID: nullStringToString(o.GatewayPaymentLinkID),
		GatewayCustomerID:    nullStringToString(o.GatewayCustomerID),
		Recovered:            o.Recovered,
	}

	if len(o.TrackingDates) > 0 {
		var tracking map[string]time.Time
		if err := json.Unmarshal(o.TrackingDates, &tracking); err != nil {
			return entities.Order{}, err
		}
		if len(tracking) > 0 {
			order.TrackingDates = tracking
		}
	}

	if len(items) > 0 {
		order.Products = make([]entities.LineItem, 0, len(items))
		for _, it := range items {
			order.Products = append(order.Products, entities.LineItem{
				ProductRef: it.ProductRef,
				Quantity:   it.Quantity,
			})
		}
	}

	return order, nil
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		Zip:       a.Zip,
		Default:   a.IsDefault,
		CreatedAt: a.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func nullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}
