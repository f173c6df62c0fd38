package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCheckoutHandler_CreateGatewayOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCheckoutService)
		wantStatus   int
		wantBody     []string
	}{
		{
			name: "success",
			body: `{"orderNumber":"ORD_1","amount":499.99}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().CreateGatewayOrder(mock.Anything, mock.MatchedBy(func(in service.GatewayOrderInput) bool {
					return in.OrderNumber == "ORD_1" && in.Amount.Equal(decimal.RequireFromString("499.99"))
				})).Return(service.GatewayOrderResult{ID: "order_gw_1", Amount: 49999, Currency: "INR", KeyID: "rzp_test_key"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"id":"order_gw_1"`, `"amount":49999`, `"keyId":"rzp_test_key"`},
		},
		{
			name:         "missing amount",
			body:         `{"orderNumber":"ORD_1"}`,
			mockBehavior: func(*mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     []string{`"missing_required_fields"`},
		},
		{
			name: "invalid amount",
			body: `{"orderNumber":"ORD_1","amount":-1}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().CreateGatewayOrder(mock.Anything, mock.Anything).
					Return(service.GatewayOrderResult{}, entities.NewValidationError(entities.ReasonInvalidAmount, "amount")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"invalid_amount"`},
		},
		{
			name: "gateway failure",
			body: `{"orderNumber":"ORD_1","amount":10}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().CreateGatewayOrder(mock.Anything, mock.Anything).
					Return(service.GatewayOrderResult{}, &entities.GatewayError{Op: "create_order", StatusCode: 401}).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   []string{`"gateway_error"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCheckoutService(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/gateway/orders", strings.NewReader(tc.body))
			rr := serve(handler.NewCheckoutHandler(discardLogger(), svc), req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			for _, want := range tc.wantBody {
				assert.Contains(t, rr.Body.String(), want)
			}
		})
	}
}

func TestCheckoutHandler_CreatePaymentLink(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCheckoutService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"orderNumber":"ORD_1"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().CreatePaymentLink(mock.Anything, "ORD_1").
					Return(entities.PaymentLink{ID: "plink_1", ShortURL: "https://rzp.io/i/abc"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"short_url":"https://rzp.io/i/abc"`,
		},
		{
			name: "order not found",
			body: `{"orderNumber":"ORD_9"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().CreatePaymentLink(mock.Anything, "ORD_9").
					Return(entities.PaymentLink{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order_not_found"`,
		},
		{
			name:         "missing order number",
			body:         `{}`,
			mockBehavior: func(*mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"missing_required_fields"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCheckoutService(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/payment-links", strings.NewReader(tc.body))
			rr := serve(handler.NewCheckoutHandler(discardLogger(), svc), req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestCheckoutHandler_Middlewares(t *testing.T) {
	svc := mocks.NewMockCheckoutService(t)
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}

	req := httptest.NewRequest(http.MethodPost, "/api/payment-links", strings.NewReader(`{"orderNumber":"ORD_1"}`))
	rr := serve(handler.NewCheckoutHandler(discardLogger(), svc, deny), req)

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}
