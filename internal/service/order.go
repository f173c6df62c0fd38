package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/shopspring/decimal"
)

const defaultCurrency = "INR"

type OrderRepo interface {
	// Атомарно: из параллельных вызовов с одним id создаёт запись только один
	CreateIfAbsent(ctx context.Context, o entities.Order) (entities.Order, bool, error)

	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	GetOrderByPaymentLinkID(ctx context.Context, linkID string) (entities.Order, error)
	PatchOrder(ctx context.Context, id string, patch entities.OrderPatch) error
	ListOrders(ctx context.Context, limit int) ([]entities.OrderSummary, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type AddressRepo interface {
	CreateAddress(ctx context.Context, a entities.Address) error
	GetAddress(ctx context.Context, id string) (entities.Address, error)
	ListAddresses(ctx context.Context, email string) ([]entities.Address, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type CreateOrderInput struct {
	IdempotencyKey  string
	CustomerName    string
	Email           string
	ExternalUserRef string
	Products        []entities.LineItem

	// Address важнее AddressID
	Address   *entities.AddressSnapshot
	AddressID string

	// Основные единицы
	TotalPrice     decimal.Decimal
	AmountDiscount decimal.Decimal
	Currency       string
}

type UpdateStatusInput struct {
	OrderNumber string
	Status      entities.OrderStatus
	TrackingKey string
	// По умолчанию now
	TrackingDate time.Time
}

type orderService struct {
	logger    *slog.Logger
	repo      OrderRepo
	addresses AddressRepo
	cache     Cache
	events    EventPublisher
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, addresses AddressRepo, cache Cache, events EventPublisher) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		repo:      repo,
		addresses: addresses,
		cache:     cache,
		events:    events,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (orderNumber string, replayed bool, err error) {
	order, err := s.buildOrder(ctx, in)
	if err != nil {
		return "", false, err
	}

	stored, created, err := s.repo.CreateIfAbsent(ctx, order)
	if err != nil {
		return "", false, &entities.StoreError{Op: "create_order", Err: err}
	}

	if !created {
		s.logger.Debug("order creation replayed", slog.String("order_number", stored.OrderNumber))
		return stored.OrderNumber, true, nil
	}

	s.logger.Info("order created", slog.String("order_number", stored.OrderNumber), slog.Int64("total_price", stored.TotalPrice))
	publish(ctx, s.logger, s.events, orderEvent(entities.EventOrderCreated, stored))
	return stored.OrderNumber, false, nil
}

func (s *orderService) buildOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	name := strings.TrimSpace(in.CustomerName)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		return entities.Order{}, entities.NewValidationError(entities.ReasonMissingFields, "customerName")
	}
	if email == "" {
		return entities.Order{}, entities.NewValidationError(entities.ReasonMissingFields, "email")
	}

	total := money.ToMinor(in.TotalPrice)
	if total == 0 {
		return entities.Order{}, entities.NewValidationError(entities.ReasonMissingFields, "totalPrice")
	}
	if total < 0 {
		return entities.Order{}, entities.NewValidationError(entities.ReasonInvalidAmount, "totalPrice")
	}
	discount := money.ToMinor(in.AmountDiscount)
	if discount < 0 {
		return entities.Order{}, entities.NewValidationError(entities.ReasonInvalidAmount, "amountDiscount")
	}

	for _, p := range in.Products {
		if strings.TrimSpace(p.ProductRef) == "" || p.Quantity < 1 {
			return entities.Order{}, entities.NewValidationError(entities.ReasonInvalidProducts, "products")
		}
	}

	var address entities.AddressSnapshot
	switch {
	case in.Address != nil:
		address = *in.Address
	case in.AddressID != "":
		saved, err := s.addresses.GetAddress(ctx, in.AddressID)
		if errors.Is(err, entities.ErrAddressNotFound) {
			return entities.Order{}, err
		}
		if err != nil {
			return entities.Order{}, &entities.StoreError{Op: "get_address", Err: err}
		}
		address = saved.Snapshot()
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	id := newOrderID()
	if in.IdempotencyKey != "" {
		id = orderIDFromKey(in.IdempotencyKey)
	}

	now := time.Now().UTC()
	return entities.Order{
		ID:              id,
		OrderNumber:     newOrderNumber(now),
		CustomerName:    name,
		Email:           email,
		ExternalUserRef: in.ExternalUserRef,
		Products:        append([]entities.LineItem(nil), in.Products...),
		Address:         address,
		TotalPrice:      total,
		Currency:        currency,
		AmountDiscount:  discount,
		Status:          entities.StatusPending,
		OrderDate:       now,
	}, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderNumber string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderNumber); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			return order, nil
		}
		s.logger.Warn("dropping unreadable cache entry", slog.String("order_number", orderNumber))
		s.cache.Delete(orderNumber)
	}

	order, err := s.repo.GetOrderByNumber(ctx, orderNumber)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{}, err
	}
	if err != nil {
		return entities.Order{}, &entities.StoreError{Op: "get_order", Err: err}
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, limit int) ([]entities.OrderSummary, error) {
	list, err := s.repo.ListOrders(ctx, limit)
	if err != nil {
		return nil, &entities.StoreError{Op: "list_orders", Err: err}
	}
	return list, nil
}

// Админ может выставить любой статус, не только следующий
func (s *orderService) UpdateStatus(ctx context.Context, in UpdateStatusInput) error {
	if in.OrderNumber == "" || in.Status == "" {
		return entities.NewValidationError(entities.ReasonMissingFields, "")
	}
	if !in.Status.Valid() {
		return entities.NewValidationError(entities.ReasonInvalidStatus, "status")
	}
	if in.TrackingKey != "" && !entities.ValidTrackingKey(in.TrackingKey) {
		return entities.NewValidationError(entities.ReasonInvalidTrackingKey, "trackingKey")
	}

	order, err := s.repo.GetOrderByNumber(ctx, in.OrderNumber)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return err
	}
	if err != nil {
		return &entities.StoreError{Op: "get_order", Err: err}
	}

	status := in.Status
	patch := entities.OrderPatch{Status: &status}
	if in.TrackingKey != "" {
		patch.TrackingKey = in.TrackingKey
		patch.TrackingDate = in.TrackingDate
		if patch.TrackingDate.IsZero() {
			patch.TrackingDate = time.Now().UTC()
		}
	}

	if err := s.repo.PatchOrder(ctx, order.ID, patch); err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			return err
		}
		return &entities.StoreError{Op: "update_status", Err: err}
	}
	s.cache.Delete(in.OrderNumber)

	s.logger.Info("order status updated",
		slog.String("order_number", in.OrderNumber),
		slog.String("status", string(in.Status)),
		slog.String("tracking_key", in.TrackingKey),
	)
	return nil
}

// БД может подняться позже сервиса, поэтому с ретраями
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.LatestOrders(ctx, count)
		return err
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(ctx, cfg, fn); err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}

	for _, order := range orders {
		s.cacheOrder(order)
	}

	s.logger.Info("cache warmed up", slog.Int("count", len(orders)))
	return nil
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_number", order.OrderNumber), slog.Any("error", err))
		return
	}
	s.cache.Set(order.OrderNumber, data)
}

func orderEvent(t entities.OrderEventType, o entities.Order) entities.OrderEvent {
	return entities.OrderEvent{
		Type:        t,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		TotalPrice:  o.TotalPrice,
		Currency:    o.Currency,
		PaymentID:   o.GatewayPaymentID,
		Recovered:   o.Recovered,
		OccurredAt:  time.Now().UTC(),
	}
}

// Потерянное событие не ломает запрос
func publish(ctx context.Context, logger *slog.Logger, events EventPublisher, event entities.OrderEvent) {
	if err := events.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish order event",
			slog.String("type", string(event.Type)),
			slog.String("order_number", event.OrderNumber),
			slog.Any("error", err),
		)
	}
}
