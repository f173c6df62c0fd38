package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const siteURL = "https://shop.example.com/"

func TestPaymentHandler_VerifyPayment(t *testing.T) {
	body := `{"paymentId":"pay_1","gatewayOrderId":"order_gw_1","signature":"sig","orderNumber":"ORD_1"}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "paid",
			body: body,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().VerifyPayment(mock.Anything, service.VerifyPaymentInput{
					PaymentID:      "pay_1",
					GatewayOrderID: "order_gw_1",
					Signature:      "sig",
					OrderNumber:    "ORD_1",
				}).Return(entities.Reconciliation{OrderNumber: "ORD_1", Resolution: entities.ResolvedByOrderNumber}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"resolution":"by_order_number"`,
		},
		{
			name: "synthesized",
			body: body,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().VerifyPayment(mock.Anything, mock.Anything).
					Return(entities.Reconciliation{OrderNumber: "ORD_1", Resolution: entities.ResolvedSynthesized}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"resolution":"synthesized"`,
		},
		{
			name:         "missing signature",
			body:         `{"paymentId":"pay_1","gatewayOrderId":"order_gw_1","orderNumber":"ORD_1"}`,
			mockBehavior: func(*mocks.MockPaymentService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"missing_required_fields"`,
		},
		{
			name: "invalid signature",
			body: body,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().VerifyPayment(mock.Anything, mock.Anything).
					Return(entities.Reconciliation{}, entities.ErrInvalidSignature).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid_signature"`,
		},
		{
			name: "not captured",
			body: body,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().VerifyPayment(mock.Anything, mock.Anything).
					Return(entities.Reconciliation{}, &entities.PaymentNotCapturedError{PaymentID: "pay_1", Status: "authorized"}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"payment_not_captured"`,
		},
		{
			name: "gateway unavailable",
			body: body,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().VerifyPayment(mock.Anything, mock.Anything).
					Return(entities.Reconciliation{}, &entities.GatewayError{Op: "fetch_payment", Err: errors.New("timeout")}).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"gateway_error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(tc.body))
			rr := serve(handler.NewPaymentHandler(discardLogger(), svc, siteURL), req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestPaymentHandler_PaymentLinkCallback(t *testing.T) {
	testCases := []struct {
		name         string
		query        url.Values
		mockBehavior func(svc *mocks.MockPaymentService)
		wantQuery    url.Values
	}{
		{
			name: "paid",
			query: url.Values{
				"razorpay_payment_id":                {"pay_1"},
				"razorpay_payment_link_id":           {"plink_1"},
				"razorpay_payment_link_reference_id": {"ORD_1"},
				"razorpay_payment_link_status":       {"paid"},
				"razorpay_signature":                 {"sig"},
			},
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().HandlePaymentLinkCallback(mock.Anything, service.PaymentLinkCallbackInput{
					PaymentID:     "pay_1",
					PaymentLinkID: "plink_1",
					ReferenceID:   "ORD_1",
					Signature:     "sig",
				}).Return(entities.Reconciliation{OrderNumber: "ORD_1", Resolution: entities.ResolvedByReference}, nil).Once()
			},
			wantQuery: url.Values{"orderNumber": {"ORD_1"}, "status": {"paid"}},
		},
		{
			name: "short parameter names",
			query: url.Values{
				"payment_id":      {"pay_1"},
				"payment_link_id": {"plink_1"},
				"reference":       {"ORD_1"},
				"signature":       {"sig"},
			},
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().HandlePaymentLinkCallback(mock.Anything, service.PaymentLinkCallbackInput{
					PaymentID:     "pay_1",
					PaymentLinkID: "plink_1",
					ReferenceID:   "ORD_1",
					Signature:     "sig",
				}).Return(entities.Reconciliation{OrderNumber: "ORD_1", Resolution: entities.ResolvedByReference}, nil).Once()
			},
			wantQuery: url.Values{"orderNumber": {"ORD_1"}, "status": {"paid"}},
		},
		{
			name: "synthesized order",
			query: url.Values{
				"razorpay_payment_id":      {"pay_1"},
				"razorpay_payment_link_id": {"plink_orphan"},
				"razorpay_signature":       {"sig"},
			},
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().HandlePaymentLinkCallback(mock.Anything, mock.Anything).
					Return(entities.Reconciliation{OrderNumber: "ORD_2_ffffff", Resolution: entities.ResolvedSynthesized}, nil).Once()
			},
			wantQuery: url.Values{"orderNumber": {"ORD_2_ffffff"}, "status": {"paid"}},
		},
		{
			name: "invalid signature",
			query: url.Values{
				"razorpay_payment_id":                {"pay_1"},
				"razorpay_payment_link_id":           {"plink_1"},
				"razorpay_payment_link_reference_id": {"ORD_1"},
				"razorpay_signature":                 {"forged"},
			},
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().HandlePaymentLinkCallback(mock.Anything, mock.Anything).
					Return(entities.Reconciliation{}, entities.ErrInvalidSignature).Once()
			},
			wantQuery: url.Values{"orderNumber": {"ORD_1"}, "status": {"failed"}},
		},
		{
			name:  "missing parameters",
			query: url.Values{},
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().HandlePaymentLinkCallback(mock.Anything, service.PaymentLinkCallbackInput{}).
					Return(entities.Reconciliation{}, entities.NewValidationError(entities.ReasonMissingFields, "")).Once()
			},
			wantQuery: url.Values{"status": {"error"}},
		},
		{
			name: "store failure",
			query: url.Values{
				"razorpay_payment_id":      {"pay_1"},
				"razorpay_payment_link_id": {"plink_1"},
				"razorpay_signature":       {"sig"},
			},
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().HandlePaymentLinkCallback(mock.Anything, mock.Anything).
					Return(entities.Reconciliation{}, &entities.StoreError{Op: "patch_order", Err: errors.New("down")}).Once()
			},
			wantQuery: url.Values{"status": {"error"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, service.CallbackPath+"?"+tc.query.Encode(), nil)
			rr := serve(handler.NewPaymentHandler(discardLogger(), svc, siteURL), req)

			require.Equal(t, http.StatusSeeOther, rr.Code)
			loc, err := url.Parse(rr.Header().Get("Location"))
			require.NoError(t, err)
			assert.Equal(t, "shop.example.com", loc.Host)
			assert.Equal(t, "/order/confirm", loc.Path)
			assert.Equal(t, tc.wantQuery, loc.Query())
		})
	}
}
