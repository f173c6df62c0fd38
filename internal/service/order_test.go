package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/service/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var orderNumberRe = regexp.MustCompile(`^ORD_\d{13}_[0-9a-f]{6}$`)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validInput() service.CreateOrderInput {
	return service.CreateOrderInput{
		CustomerName: "Asha",
		Email:        "asha@example.com",
		Products:     []entities.LineItem{{ProductRef: "prod-1", Quantity: 1}},
		Address:      &entities.AddressSnapshot{Name: "Home", Street: "12 MG Road", City: "Pune", State: "MH", Zip: "411001"},
		TotalPrice:   decimal.RequireFromString("500.00"),
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, addresses *mocks.MockAddressRepo, events *mocks.MockEventPublisher)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		input        func() service.CreateOrderInput
		mockBehavior MockBehavior
		wantReplayed bool
		wantNumber   string
		wantErr      error
		wantReason   string
	}{
		{
			name:  "OK",
			input: validInput,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockAddressRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().CreateIfAbsent(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Status == entities.StatusPending &&
						o.TotalPrice == 50000 &&
						o.Currency == "INR" &&
						orderNumberRe.MatchString(o.OrderNumber)
				})).RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, bool, error) {
					return o, true, nil
				}).Once()
				events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
					return e.Type == entities.EventOrderCreated
				})).Return(nil).Once()
			},
		},
		{
			name:  "replay returns stored order number",
			input: validInput,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockAddressRepo, _ *mocks.MockEventPublisher) {
				repo.EXPECT().CreateIfAbsent(mock.Anything, mock.Anything).
					Return(entities.Order{OrderNumber: "ORD_1_aaaaaa"}, false, nil).Once()
			},
			wantReplayed: true,
			wantNumber:   "ORD_1_aaaaaa",
		},
		{
			name:  "publish failure does not fail creation",
			input: validInput,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockAddressRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().CreateIfAbsent(mock.Anything, mock.Anything).
					Return(entities.Order{OrderNumber: "ORD_2_bbbbbb"}, true, nil).Once()
				events.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			wantNumber: "ORD_2_bbbbbb",
		},
		{
			name: "missing name",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.CustomerName = "  "
				return in
			},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockAddressRepo, *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrValidation,
			wantReason:   entities.ReasonMissingFields,
		},
		{
			name: "missing email",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.Email = ""
				return in
			},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockAddressRepo, *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrValidation,
			wantReason:   entities.ReasonMissingFields,
		},
		{
			name: "zero total",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.TotalPrice = decimal.Zero
				return in
			},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockAddressRepo, *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrValidation,
			wantReason:   entities.ReasonMissingFields,
		},
		{
			name: "negative total",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.TotalPrice = decimal.NewFromInt(-5)
				return in
			},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockAddressRepo, *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrValidation,
			wantReason:   entities.ReasonInvalidAmount,
		},
		{
			name: "bad line item",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.Products = []entities.LineItem{{ProductRef: "prod-1", Quantity: 0}}
				return in
			},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockAddressRepo, *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrValidation,
			wantReason:   entities.ReasonInvalidProducts,
		},
		{
			name: "saved address is copied",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.Address = nil
				in.AddressID = "addr_1"
				return in
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, addresses *mocks.MockAddressRepo, events *mocks.MockEventPublisher) {
				addresses.EXPECT().GetAddress(mock.Anything, "addr_1").
					Return(entities.Address{ID: "addr_1", Name: "Office", City: "Mumbai", Default: true}, nil).Once()
				repo.EXPECT().CreateIfAbsent(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Address == entities.AddressSnapshot{Name: "Office", City: "Mumbai", Default: true}
				})).Return(entities.Order{OrderNumber: "ORD_3_cccccc"}, true, nil).Once()
				events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantNumber: "ORD_3_cccccc",
		},
		{
			name: "saved address missing",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.Address = nil
				in.AddressID = "addr_x"
				return in
			},
			mockBehavior: func(_ *mocks.MockOrderRepo, addresses *mocks.MockAddressRepo, _ *mocks.MockEventPublisher) {
				addresses.EXPECT().GetAddress(mock.Anything, "addr_x").
					Return(entities.Address{}, entities.ErrAddressNotFound).Once()
			},
			wantErr: entities.ErrAddressNotFound,
		},
		{
			name:  "store failure",
			input: validInput,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockAddressRepo, _ *mocks.MockEventPublisher) {
				repo.EXPECT().CreateIfAbsent(mock.Anything, mock.Anything).
					Return(entities.Order{}, false, dbError).Once()
			},
			wantErr: entities.ErrStore,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			addresses := mocks.NewMockAddressRepo(t)
			cache := mocks.NewMockCache(t)
			events := mocks.NewMockEventPublisher(t)

			tc.mockBehavior(repo, addresses, events)

			svc := service.NewOrderService(discardLogger(), repo, addresses, cache, events)
			number, replayed, err := svc.CreateOrder(context.Background(), tc.input())

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
			assert.Equal(t, tc.wantReplayed, replayed)
			if tc.wantNumber != "" {
				assert.Equal(t, tc.wantNumber, number)
			} else {
				assert.Regexp(t, orderNumberRe, number)
			}
		})
	}
}

func TestOrderService_CreateOrder_IdempotencyKeyDerivesID(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	events := mocks.NewMockEventPublisher(t)

	var ids []string
	repo.EXPECT().CreateIfAbsent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, bool, error) {
			ids = append(ids, o.ID)
			return o, true, nil
		}).Times(3)
	events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	svc := service.NewOrderService(discardLogger(), repo, mocks.NewMockAddressRepo(t), mocks.NewMockCache(t), events)

	in := validInput()
	in.IdempotencyKey = "key-1"
	_, _, err := svc.CreateOrder(context.Background(), in)
	require.NoError(t, err)
	_, _, err = svc.CreateOrder(context.Background(), in)
	require.NoError(t, err)

	in.IdempotencyKey = ""
	_, _, err = svc.CreateOrder(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, ids, 3)
	assert.Equal(t, ids[0], ids[1])
	assert.NotEqual(t, ids[0], ids[2])
	assert.Regexp(t, `^order_[0-9a-f-]{36}$`, ids[0])
}

func TestOrderService_GetOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)

	validOrder := entities.Order{ID: "order_1", OrderNumber: "ORD_1"}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantOrder    entities.Order
		wantErr      error
	}{
		{
			name: "cache hit",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("ORD_1").Return(validData, true).Once()
			},
			wantOrder: validOrder,
		},
		{
			name: "cache miss loads and caches",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("ORD_1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD_1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("ORD_1", mock.Anything).Return().Once()
			},
			wantOrder: validOrder,
		},
		{
			name: "corrupted cache entry is dropped",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("ORD_1").Return([]byte("garbage"), true).Once()
				cache.EXPECT().Delete("ORD_1").Return().Once()
				repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD_1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("ORD_1", mock.Anything).Return().Once()
			},
			wantOrder: validOrder,
		},
		{
			name: "not found",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("ORD_1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD_1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "store failure",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("ORD_1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD_1").Return(entities.Order{}, errors.New("conn refused")).Once()
			},
			wantErr: entities.ErrStore,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(discardLogger(), repo, mocks.NewMockAddressRepo(t), cache, mocks.NewMockEventPublisher(t))
			order, err := svc.GetOrder(context.Background(), "ORD_1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOrder, order)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)

	order := entities.Order{ID: "order_1", OrderNumber: "ORD_1", Status: entities.StatusPaid}

	testCases := []struct {
		name         string
		input        service.UpdateStatusInput
		mockBehavior MockBehavior
		wantErr      error
		wantReason   string
	}{
		{
			name:  "OK with tracking key",
			input: service.UpdateStatusInput{OrderNumber: "ORD_1", Status: entities.StatusShipped, TrackingKey: "in_transit"},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD_1").Return(order, nil).Once()
				repo.EXPECT().PatchOrder(mock.Anything, "order_1", mock.MatchedBy(func(p entities.OrderPatch) bool {
					return p.Status != nil && *p.Status == entities.StatusShipped &&
						p.TrackingKey == "in_transit" && !p.TrackingDate.IsZero()
				})).Return(nil).Once()
				cache.EXPECT().Delete("ORD_1").Return().Once()
			},
		},
		{
			name:  "status can move backwards",
			input: service.UpdateStatusInput{OrderNumber: "ORD_1", Status: entities.StatusPending},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD_1").Return(order, nil).Once()
				repo.EXPECT().PatchOrder(mock.Anything, "order_1", mock.Anything).Return(nil).Once()
				cache.EXPECT().Delete("ORD_1").Return().Once()
			},
		},
		{
			name:         "missing fields",
			input:        service.UpdateStatusInput{OrderNumber: "ORD_1"},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCache) {},
			wantErr:      entities.ErrValidation,
			wantReason:   entities.ReasonMissingFields,
		},
		{
			name:         "unknown status",
			input:        service.UpdateStatusInput{OrderNumber: "ORD_1", Status: "lost"},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCache) {},
			wantErr:      entities.ErrValidation,
			wantReason:   entities.ReasonInvalidStatus,
		},
		{
			name:         "unknown tracking key",
			input:        service.UpdateStatusInput{OrderNumber: "ORD_1", Status: entities.StatusShipped, TrackingKey: "teleported"},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCache) {},
			wantErr:      entities.ErrValidation,
			wantReason:   entities.ReasonInvalidTrackingKey,
		},
		{
			name:  "order not found",
			input: service.UpdateStatusInput{OrderNumber: "ORD_9", Status: entities.StatusShipped},
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD_9").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(discardLogger(), repo, mocks.NewMockAddressRepo(t), cache, mocks.NewMockEventPublisher(t))
			err := svc.UpdateStatus(context.Background(), tc.input)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				if tc.wantReason != "" {
					var verr *entities.ValidationError
					require.ErrorAs(t, err, &verr)
					assert.Equal(t, tc.wantReason, verr.Reason)
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_WarmUpCache(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)

	// первая попытка - база ещё не поднялась
	repo.EXPECT().LatestOrders(mock.Anything, 2).Return(nil, errors.New("connection refused")).Once()
	repo.EXPECT().LatestOrders(mock.Anything, 2).Return([]entities.Order{
		{ID: "order_1", OrderNumber: "ORD_1"},
		{ID: "order_2", OrderNumber: "ORD_2"},
	}, nil).Once()
	cache.EXPECT().Set("ORD_1", mock.Anything).Return().Once()
	cache.EXPECT().Set("ORD_2", mock.Anything).Return().Once()

	svc := service.NewOrderService(discardLogger(), repo, mocks.NewMockAddressRepo(t), cache, mocks.NewMockEventPublisher(t))
	assert.NoError(t, svc.WarmUpCache(context.Background(), 2))
}

func TestOrderService_ListOrders(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	repo.EXPECT().ListOrders(mock.Anything, 0).Return([]entities.OrderSummary{{ID: "order_1", OrderNumber: "ORD_1"}}, nil).Once()

	svc := service.NewOrderService(discardLogger(), repo, mocks.NewMockAddressRepo(t), mocks.NewMockCache(t), mocks.NewMockEventPublisher(t))
	list, err := svc.ListOrders(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
