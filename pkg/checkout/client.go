package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	adminSecretHeader    = "X-Admin-Secret"
)

// APIError is a non-2xx response of the storefront API.
type APIError struct {
	StatusCode int
	Reason     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("storefront api: status %d: %s", e.StatusCode, e.Reason)
}

// HasReason reports whether err is an APIError carrying reason.
func HasReason(err error, reason string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Reason == reason
}

// Retryable reports whether repeating the call may succeed: transport
// failures and 5xx responses.
func Retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

type LineItem struct {
	ProductRef string `json:"productRef"`
	Quantity   int    `json:"quantity"`
}

type Address struct {
	Name    string `json:"name"`
	Street  string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Default bool   `json:"default"`
}

type Order struct {
	OrderNumber          string               `json:"orderNumber"`
	CustomerName         string               `json:"customerName"`
	Email                string               `json:"email"`
	ExternalUserRef      string               `json:"externalUserRef"`
	Products             []LineItem           `json:"products"`
	Address              Address              `json:"address"`
	TotalPrice           float64              `json:"totalPrice"`
	AmountDiscount       float64              `json:"amountDiscount"`
	Currency             string               `json:"currency"`
	Status               string               `json:"status"`
	OrderDate            time.Time            `json:"orderDate"`
	PaymentDate          *time.Time           `json:"paymentDate"`
	GatewayPaymentID     string               `json:"gatewayPaymentId"`
	GatewayPaymentLinkID string               `json:"gatewayPaymentLinkId"`
	GatewayCustomerID    string               `json:"gatewayCustomerId"`
	TrackingDates        map[string]time.Time `json:"trackingDates"`
	Recovered            bool                 `json:"recovered"`
}

// GatewayOrder is what the payment UI needs to collect a payment. Amount is in
// minor units.
type GatewayOrder struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	KeyID       string `json:"keyId"`
	OrderNumber string `json:"-"`
}

type PaymentLink struct {
	ID       string `json:"paymentLinkId"`
	ShortURL string `json:"short_url"`
}

type PaymentConfirmation struct {
	PaymentID      string
	GatewayOrderID string
	Signature      string
}

type Verification struct {
	OrderNumber string `json:"orderNumber"`
	Resolution  string `json:"resolution"`
}

type OrderSummary struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`
}

type StatusUpdate struct {
	OrderNumber string     `json:"orderNumber"`
	Status      string     `json:"status"`
	TrackingKey string     `json:"trackingKey,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// Client calls the storefront checkout HTTP API.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	adminSecret string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

func WithAdminSecret(secret string) Option {
	return func(cl *Client) { cl.adminSecret = secret }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type createOrderRequest struct {
	CustomerName    string     `json:"customerName"`
	Email           string     `json:"email"`
	ExternalUserRef string     `json:"externalUserRef,omitempty"`
	Products        []LineItem `json:"products"`
	Address         *Address   `json:"address,omitempty"`
	AddressID       string     `json:"addressId,omitempty"`
	TotalPrice      float64    `json:"totalPrice"`
	AmountDiscount  float64    `json:"amountDiscount"`
	Currency        string     `json:"currency,omitempty"`
}

// CreateOrder creates an order. Calls with the same non-empty idempotency key
// return the same order number.
func (c *Client) CreateOrder(ctx context.Context, idempotencyKey string, cart Cart) (string, error) {
	body := createOrderRequest{
		CustomerName:    cart.CustomerName,
		Email:           cart.Email,
		ExternalUserRef: cart.ExternalUserRef,
		Products:        cart.Products,
		Address:         cart.Address,
		AddressID:       cart.AddressID,
		TotalPrice:      cart.Total.InexactFloat64(),
		AmountDiscount:  cart.Discount.InexactFloat64(),
		Currency:        cart.Currency,
	}
	header := http.Header{}
	if idempotencyKey != "" {
		header.Set(idempotencyKeyHeader, idempotencyKey)
	}

	var res struct {
		OrderNumber string `json:"orderNumber"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/orders", header, body, &res); err != nil {
		return "", err
	}
	return res.OrderNumber, nil
}

func (c *Client) GetOrder(ctx context.Context, orderNumber string) (Order, error) {
	var order Order
	err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderNumber), nil, nil, &order)
	return order, err
}

func (c *Client) CreateGatewayOrder(ctx context.Context, orderNumber string, amount decimal.Decimal, currency string) (GatewayOrder, error) {
	body := map[string]any{
		"orderNumber": orderNumber,
		"amount":      amount.InexactFloat64(),
		"currency":    currency,
	}
	var res GatewayOrder
	if err := c.do(ctx, http.MethodPost, "/api/gateway/orders", nil, body, &res); err != nil {
		return GatewayOrder{}, err
	}
	res.OrderNumber = orderNumber
	return res, nil
}

func (c *Client) CreatePaymentLink(ctx context.Context, orderNumber string) (PaymentLink, error) {
	var res PaymentLink
	err := c.do(ctx, http.MethodPost, "/api/payment-links", nil, map[string]string{"orderNumber": orderNumber}, &res)
	return res, err
}

func (c *Client) VerifyPayment(ctx context.Context, orderNumber string, p PaymentConfirmation) (Verification, error) {
	body := map[string]string{
		"paymentId":      p.PaymentID,
		"gatewayOrderId": p.GatewayOrderID,
		"signature":      p.Signature,
		"orderNumber":    orderNumber,
	}
	var res Verification
	err := c.do(ctx, http.MethodPost, "/api/payments/verify", nil, body, &res)
	return res, err
}

func (c *Client) ListOrders(ctx context.Context, limit int) ([]OrderSummary, error) {
	path := "/api/admin/orders"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var res struct {
		List []OrderSummary `json:"list"`
	}
	if err := c.do(ctx, http.MethodGet, path, c.adminHeader(), nil, &res); err != nil {
		return nil, err
	}
	return res.List, nil
}

func (c *Client) UpdateStatus(ctx context.Context, u StatusUpdate) error {
	return c.do(ctx, http.MethodPost, "/api/admin/orders/status", c.adminHeader(), u, nil)
}

func (c *Client) adminHeader() http.Header {
	h := http.Header{}
	h.Set(adminSecretHeader, c.adminSecret)
	return h
}

func (c *Client) do(ctx context.Context, method, path string, header http.Header, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &APIError{StatusCode: resp.StatusCode, Reason: e.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// WaitForStatus polls the order until its status is one of statuses.
func (c *Client) WaitForStatus(ctx context.Context, orderNumber string, interval time.Duration, statuses ...string) (Order, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		order, err := c.GetOrder(ctx, orderNumber)
		if err != nil && !HasReason(err, "order_not_found") {
			return Order{}, err
		}
		if err == nil {
			for _, s := range statuses {
				if order.Status == s {
					return order, nil
				}
			}
		}

		select {
		case <-ctx.Done():
			return order, ctx.Err()
		case <-ticker.C:
		}
	}
}
