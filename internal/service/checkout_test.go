package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/service/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_CreateGatewayOrder(t *testing.T) {
	testCases := []struct {
		name         string
		input        service.GatewayOrderInput
		mockBehavior func(gw *mocks.MockGateway)
		want         service.GatewayOrderResult
		wantErr      error
		wantReason   string
	}{
		{
			name:  "converts major units",
			input: service.GatewayOrderInput{OrderNumber: "ORD_1", Amount: decimal.RequireFromString("499.99")},
			mockBehavior: func(gw *mocks.MockGateway) {
				gw.EXPECT().CreateOrder(mock.Anything, int64(49999), "INR", "ORD_1").
					Return(entities.GatewayOrder{ID: "order_gw_1", Amount: 49999, Currency: "INR"}, nil).Once()
				gw.EXPECT().KeyID().Return("rzp_test_key").Once()
			},
			want: service.GatewayOrderResult{ID: "order_gw_1", Amount: 49999, Currency: "INR", KeyID: "rzp_test_key"},
		},
		{
			name:  "whole amount",
			input: service.GatewayOrderInput{OrderNumber: "ORD_1", Amount: decimal.NewFromInt(500), Currency: "inr"},
			mockBehavior: func(gw *mocks.MockGateway) {
				gw.EXPECT().CreateOrder(mock.Anything, int64(50000), "INR", "ORD_1").
					Return(entities.GatewayOrder{ID: "order_gw_2", Amount: 50000, Currency: "INR"}, nil).Once()
				gw.EXPECT().KeyID().Return("rzp_test_key").Once()
			},
			want: service.GatewayOrderResult{ID: "order_gw_2", Amount: 50000, Currency: "INR", KeyID: "rzp_test_key"},
		},
		{
			name:         "negative amount",
			input:        service.GatewayOrderInput{OrderNumber: "ORD_1", Amount: decimal.NewFromInt(-1)},
			mockBehavior: func(*mocks.MockGateway) {},
			wantErr:      entities.ErrValidation,
			wantReason:   entities.ReasonInvalidAmount,
		},
		{
			name:         "amount rounds to zero",
			input:        service.GatewayOrderInput{OrderNumber: "ORD_1", Amount: decimal.RequireFromString("0.004")},
			mockBehavior: func(*mocks.MockGateway) {},
			wantErr:      entities.ErrValidation,
			wantReason:   entities.ReasonInvalidAmount,
		},
		{
			name:         "missing order number",
			input:        service.GatewayOrderInput{Amount: decimal.NewFromInt(1)},
			mockBehavior: func(*mocks.MockGateway) {},
			wantErr:      entities.ErrValidation,
			wantReason:   entities.ReasonMissingFields,
		},
		{
			name:  "gateway failure",
			input: service.GatewayOrderInput{OrderNumber: "ORD_1", Amount: decimal.NewFromInt(10)},
			mockBehavior: func(gw *mocks.MockGateway) {
				gw.EXPECT().CreateOrder(mock.Anything, int64(1000), "INR", "ORD_1").
					Return(entities.GatewayOrder{}, &entities.GatewayError{Op: "create_order", StatusCode: 500}).Once()
			},
			wantErr: entities.ErrGateway,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gw := mocks.NewMockGateway(t)
			tc.mockBehavior(gw)

			svc := service.NewCheckoutService(discardLogger(), mocks.NewMockOrderRepo(t), gw, mocks.NewMockCache(t), "http://svc")
			got, err := svc.CreateGatewayOrder(context.Background(), tc.input)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				if tc.wantReason != "" {
					var verr *entities.ValidationError
					require.ErrorAs(t, err, &verr)
					assert.Equal(t, tc.wantReason, verr.Reason)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCheckoutService_CreatePaymentLink(t *testing.T) {
	order := entities.Order{
		ID:           "order_1",
		OrderNumber:  "ORD_1",
		CustomerName: "Asha",
		Email:        "asha@example.com",
		TotalPrice:   50000,
		Currency:     "INR",
	}
	link := entities.PaymentLink{ID: "plink_1", ShortURL: "https://rzp.io/i/abc"}

	testCases := []struct {
		name         string
		orderNumber  string
		mockBehavior func(repo *mocks.MockOrderRepo, gw *mocks.MockGateway, cache *mocks.MockCache)
		wantErr      error
	}{
		{
			name:        "OK uses stored minor amount",
			orderNumber: "ORD_1",
			mockBehavior: func(repo *mocks.MockOrderRepo, gw *mocks.MockGateway, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD_1").Return(order, nil).Once()
				gw.EXPECT().CreatePaymentLink(mock.Anything, entities.PaymentLinkRequest{
					Amount:        50000,
					Currency:      "INR",
					ReferenceID:   "ORD_1",
					Description:   "Payment for order ORD_1",
					CustomerName:  "Asha",
					CustomerEmail: "asha@example.com",
					CallbackURL:   "http://svc/api/payments/verify-link/callback",
				}).Return(link, nil).Once()
				repo.EXPECT().PatchOrder(mock.Anything, "order_1", mock.MatchedBy(func(p entities.OrderPatch) bool {
					return p.GatewayPaymentLinkID != nil && *p.GatewayPaymentLinkID == "plink_1" && p.Status == nil
				})).Return(nil).Once()
				cache.EXPECT().Delete("ORD_1").Return().Once()
			},
		},
		{
			name:        "persist failure is tolerated",
			orderNumber: "ORD_1",
			mockBehavior: func(repo *mocks.MockOrderRepo, gw *mocks.MockGateway, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD_1").Return(order, nil).Once()
				gw.EXPECT().CreatePaymentLink(mock.Anything, mock.Anything).Return(link, nil).Once()
				repo.EXPECT().PatchOrder(mock.Anything, "order_1", mock.Anything).Return(errors.New("timeout")).Once()
			},
		},
		{
			name:        "order not found",
			orderNumber: "ORD_9",
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockGateway, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD_9").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:         "missing order number",
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockGateway, *mocks.MockCache) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:        "gateway failure",
			orderNumber: "ORD_1",
			mockBehavior: func(repo *mocks.MockOrderRepo, gw *mocks.MockGateway, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD_1").Return(order, nil).Once()
				gw.EXPECT().CreatePaymentLink(mock.Anything, mock.Anything).
					Return(entities.PaymentLink{}, &entities.GatewayError{Op: "create_payment_link", StatusCode: 400}).Once()
			},
			wantErr: entities.ErrGateway,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			gw := mocks.NewMockGateway(t)
			cache := mocks.NewMockCache(t)
			tc.mockBehavior(repo, gw, cache)

			svc := service.NewCheckoutService(discardLogger(), repo, gw, cache, "http://svc/")
			got, err := svc.CreatePaymentLink(context.Background(), tc.orderNumber)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, link, got)
		})
	}
}
