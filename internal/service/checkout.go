package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"

	"github.com/shopspring/decimal"
)

const CallbackPath = "/api/payments/verify-link/callback"

type Gateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, amount int64, currency, orderNumber string) (entities.GatewayOrder, error)
	CreatePaymentLink(ctx context.Context, req entities.PaymentLinkRequest) (entities.PaymentLink, error)
	FetchPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error)
}

type GatewayOrderInput struct {
	OrderNumber string
	// Основные единицы
	Amount   decimal.Decimal
	Currency string
}

type GatewayOrderResult struct {
	ID string
	// В пайсах
	Amount   int64
	Currency string
	KeyID    string
}

type checkoutService struct {
	logger      *slog.Logger
	repo        OrderRepo
	gateway     Gateway
	cache       Cache
	callbackURL string
}

func NewCheckoutService(logger *slog.Logger, repo OrderRepo, gateway Gateway, cache Cache, publicURL string) *checkoutService {
	return &checkoutService{
		logger:      logger.With(slog.String("service", "checkout")),
		repo:        repo,
		gateway:     gateway,
		cache:       cache,
		callbackURL: strings.TrimRight(publicURL, "/") + CallbackPath,
	}
}

// Шлюз получает round(amount*100) минорных единиц
func (s *checkoutService) CreateGatewayOrder(ctx context.Context, in GatewayOrderInput) (GatewayOrderResult, error) {
	if in.OrderNumber == "" || in.Amount.IsZero() {
		return GatewayOrderResult{}, entities.NewValidationError(entities.ReasonMissingFields, "")
	}

	amount := money.ToMinor(in.Amount)
	if amount <= 0 {
		return GatewayOrderResult{}, entities.NewValidationError(entities.ReasonInvalidAmount, "amount")
	}

	currency := strings.ToUpper(in.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	order, err := s.gateway.CreateOrder(ctx, amount, currency, in.OrderNumber)
	if err != nil {
		s.logger.Error("failed to create gateway order", slog.String("order_number", in.OrderNumber), slog.Any("error", err))
		return GatewayOrderResult{}, err
	}

	s.logger.Info("gateway order created",
		slog.String("order_number", in.OrderNumber),
		slog.String("gateway_order_id", order.ID),
		slog.Int64("amount", order.Amount),
	)

	return GatewayOrderResult{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.gateway.KeyID(),
	}, nil
}

func (s *checkoutService) CreatePaymentLink(ctx context.Context, orderNumber string) (entities.PaymentLink, error) {
	if orderNumber == "" {
		return entities.PaymentLink{}, entities.NewValidationError(entities.ReasonMissingFields, "orderNumber")
	}

	order, err := s.repo.GetOrderByNumber(ctx, orderNumber)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.PaymentLink{}, err
	}
	if err != nil {
		return entities.PaymentLink{}, &entities.StoreError{Op: "get_order", Err: err}
	}

	if order.TotalPrice <= 0 {
		return entities.PaymentLink{}, entities.NewValidationError(entities.ReasonInvalidAmount, "totalPrice")
	}

	currency := order.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	link, err := s.gateway.CreatePaymentLink(ctx, entities.PaymentLinkRequest{
		Amount:        order.TotalPrice,
		Currency:      currency,
		ReferenceID:   order.OrderNumber,
		Description:   fmt.Sprintf("Payment for order %s", order.OrderNumber),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.Email,
		CallbackURL:   s.callbackURL,
	})
	if err != nil {
		s.logger.Error("failed to create payment link", slog.String("order_number", orderNumber), slog.Any("error", err))
		return entities.PaymentLink{}, err
	}

	linkID := link.ID
	if err := s.repo.PatchOrder(ctx, order.ID, entities.OrderPatch{GatewayPaymentLinkID: &linkID}); err != nil {
		s.logger.Warn("failed to save payment link id",
			slog.String("order_number", orderNumber),
			slog.String("payment_link_id", linkID),
			slog.Any("error", err),
		)
	} else {
		s.cache.Delete(orderNumber)
	}

	s.logger.Info("payment link created", slog.String("order_number", orderNumber), slog.String("payment_link_id", linkID))
	return link, nil
}
