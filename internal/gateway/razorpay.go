// Package gateway is a client for the Razorpay-compatible payment gateway REST
// API: orders, payment links and payment lookups.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
}

func NewClient(cfg config.Gateway) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// KeyID is the public key identifier handed to the client-side payment UI.
func (c *Client) KeyID() string {
	return c.keyID
}

type orderRequest struct {
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Receipt        string            `json:"receipt"`
	PaymentCapture int               `json:"payment_capture"`
	Notes          map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder creates a gateway order for amount minor units with auto capture.
// The order number goes into both the receipt and the notes.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, orderNumber string) (entities.GatewayOrder, error) {
	const op = "create_order"

	req := orderRequest{
		Amount:         amount,
		Currency:       currency,
		Receipt:        orderNumber,
		PaymentCapture: 1,
		Notes:          map[string]string{"orderNumber": orderNumber},
	}

	var res orderResponse
	if err := c.do(ctx, op, http.MethodPost, "/orders", req, &res); err != nil {
		return entities.GatewayOrder{}, err
	}

	return entities.GatewayOrder{
		ID:       res.ID,
		Amount:   res.Amount,
		Currency: res.Currency,
		Receipt:  res.Receipt,
		Status:   res.Status,
	}, nil
}

type paymentLinkCustomer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type paymentLinkRequest struct {
	Amount         int64                `json:"amount"`
	Currency       string               `json:"currency"`
	Description    string               `json:"description,omitempty"`
	ReferenceID    string               `json:"reference_id"`
	Customer       *paymentLinkCustomer `json:"customer,omitempty"`
	CallbackURL    string               `json:"callback_url"`
	CallbackMethod string               `json:"callback_method"`
	Notes          map[string]string    `json:"notes,omitempty"`
}

type paymentLinkResponse struct {
	ID          string `json:"id"`
	ShortURL    string `json:"short_url"`
	ReferenceID string `json:"reference_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
}

func (c *Client) CreatePaymentLink(ctx context.Context, in entities.PaymentLinkRequest) (entities.PaymentLink, error) {
	const op = "create_payment_link"

	req := paymentLinkRequest{
		Amount:      in.Amount,
		Currency:    in.Currency,
		Description: in.Description,
		ReferenceID: in.ReferenceID,
		CallbackURL: in.CallbackURL,
		// callback_url requires callback_method
		CallbackMethod: "get",
		Notes:          map[string]string{"orderNumber": in.ReferenceID},
	}
	if in.CustomerName != "" || in.CustomerEmail != "" {
		req.Customer = &paymentLinkCustomer{Name: in.CustomerName, Email: in.CustomerEmail}
	}

	var res paymentLinkResponse
	if err := c.do(ctx, op, http.MethodPost, "/payment_links", req, &res); err != nil {
		return entities.PaymentLink{}, err
	}

	return entities.PaymentLink{
		ID:          res.ID,
		ShortURL:    res.ShortURL,
		ReferenceID: res.ReferenceID,
		Amount:      res.Amount,
		Currency:    res.Currency,
		Status:      res.Status,
	}, nil
}

type paymentResponse struct {
	ID         string `json:"id"`
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	Email      string `json:"email"`
	Contact    string `json:"contact"`
	CustomerID string `json:"customer_id"`
}

func (c *Client) FetchPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error) {
	const op = "fetch_payment"

	var res paymentResponse
	if err := c.do(ctx, op, http.MethodGet, "/payments/"+url.PathEscape(paymentID), nil, &res); err != nil {
		return entities.GatewayPayment{}, err
	}

	return entities.GatewayPayment{
		ID:         res.ID,
		OrderID:    res.OrderID,
		Status:     res.Status,
		Amount:     res.Amount,
		Currency:   res.Currency,
		Email:      res.Email,
		Contact:    res.Contact,
		CustomerID: res.CustomerID,
	}, nil
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	if c.keyID == "" || c.keySecret == "" {
		return &entities.GatewayError{Op: op, Err: fmt.Errorf("credentials are not configured")}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &entities.GatewayError{Op: op, Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &entities.GatewayError{Op: op, Err: err}
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &entities.GatewayError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		gerr := &entities.GatewayError{Op: op, StatusCode: resp.StatusCode}
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil {
			gerr.Code = e.Error.Code
			gerr.Description = e.Error.Description
		}
		return gerr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &entities.GatewayError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
