package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(h interface{ Init(chi.Router) }, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.Init(r)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	validBody := `{
		"customerName": "Asha Rao",
		"email": "asha@example.com",
		"products": [{"productRef": "prod_1", "quantity": 2}],
		"address": {"name": "Asha Rao", "address": "12 MG Road", "city": "Bengaluru", "state": "KA", "zip": "560001"},
		"totalPrice": 499.99,
		"currency": "INR"
	}`

	testCases := []struct {
		name           string
		body           string
		idempotencyKey string
		mockBehavior   func(svc *mocks.MockOrderService)
		wantStatus     int
		wantBody       string
		wantReplayed   bool
	}{
		{
			name: "created",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(in service.CreateOrderInput) bool {
					return in.TotalPrice.Equal(decimal.RequireFromString("499.99")) &&
						in.IdempotencyKey == "" &&
						len(in.Products) == 1 && in.Products[0].Quantity == 2 &&
						in.Address != nil && in.Address.Street == "12 MG Road"
				})).Return("ORD_1_abcdef", false, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orderNumber":"ORD_1_abcdef"`,
		},
		{
			name:           "replayed with idempotency key",
			body:           validBody,
			idempotencyKey: "cart-42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(in service.CreateOrderInput) bool {
					return in.IdempotencyKey == "cart-42"
				})).Return("ORD_1_abcdef", true, nil).Once()
			},
			wantStatus:   http.StatusOK,
			wantBody:     `"orderNumber":"ORD_1_abcdef"`,
			wantReplayed: true,
		},
		{
			name:         "missing fields",
			body:         `{"email": "asha@example.com", "totalPrice": 10}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"missing_required_fields"`,
		},
		{
			name: "products are optional",
			body: `{"customerName": "Asha Rao", "email": "asha@example.com", "totalPrice": 10}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(in service.CreateOrderInput) bool {
					return len(in.Products) == 0
				})).Return("ORD_2_abcdef", false, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orderNumber":"ORD_2_abcdef"`,
		},
		{
			name:         "invalid json",
			body:         `{"customerName":`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid_json"`,
		},
		{
			name: "negative amount",
			body: strings.Replace(validBody, "499.99", "-5", 1),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return("", false, entities.NewValidationError(entities.ReasonInvalidAmount, "totalPrice")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid_amount"`,
		},
		{
			name: "address not found",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return("", false, entities.ErrAddressNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"address_not_found"`,
		},
		{
			name: "store failure",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return("", false, &entities.StoreError{Op: "create_order", Err: errors.New("conn refused")}).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"server_error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tc.body))
			if tc.idempotencyKey != "" {
				req.Header.Set(handler.IdempotencyKeyHeader, tc.idempotencyKey)
			}
			rr := serve(handler.NewOrderHandler(discardLogger(), svc), req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
			if tc.wantReplayed {
				assert.Equal(t, "true", rr.Header().Get(handler.ReplayedHeader))
			} else {
				assert.Empty(t, rr.Header().Get(handler.ReplayedHeader))
			}
		})
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	paidAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	validOrder := entities.Order{
		OrderNumber:  "ORD_1_abcdef",
		CustomerName: "Asha Rao",
		Email:        "asha@example.com",
		Products:     []entities.LineItem{{ProductRef: "prod_1", Quantity: 2}},
		TotalPrice:   49999,
		Currency:     "INR",
		Status:       entities.StatusPaid,
		PaymentDate:  paidAt,
	}

	testCases := []struct {
		name         string
		orderNumber  string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:        "success",
			orderNumber: "ORD_1_abcdef",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, "ORD_1_abcdef").Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orderNumber":"ORD_1_abcdef"`,
		},
		{
			name:        "not found",
			orderNumber: "ORD_missing",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, "ORD_missing").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order_not_found"`,
		},
		{
			name:        "internal error",
			orderNumber: "ORD_1_abcdef",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, "ORD_1_abcdef").Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"server_error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/orders/"+tc.orderNumber, nil)
			rr := serve(handler.NewOrderHandler(discardLogger(), svc), req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrderHandler_GetOrder_MajorUnits(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().GetOrder(mock.Anything, "ORD_1").Return(entities.Order{
		OrderNumber:    "ORD_1",
		TotalPrice:     49999,
		AmountDiscount: 5000,
		Status:         entities.StatusPending,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD_1", nil)
	rr := serve(handler.NewOrderHandler(discardLogger(), svc), req)
	require.Equal(t, http.StatusOK, rr.Code)

	var got handler.Order
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 499.99, got.TotalPrice)
	assert.Equal(t, 50.0, got.AmountDiscount)
	assert.Nil(t, got.PaymentDate)
	assert.NotContains(t, rr.Body.String(), "paymentDate")
}
