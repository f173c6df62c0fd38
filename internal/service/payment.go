package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/signature"
)

const unknownPaymentLinkCustomer = "Unknown (payment-link)"

type VerifyPaymentInput struct {
	PaymentID      string
	GatewayOrderID string
	Signature      string
	OrderNumber    string
}

type PaymentLinkCallbackInput struct {
	PaymentID     string
	PaymentLinkID string
	ReferenceID   string
	Signature     string
}

type paymentService struct {
	logger  *slog.Logger
	repo    OrderRepo
	gateway Gateway
	cache   Cache
	events  EventPublisher
	secret  string
}

func NewPaymentService(logger *slog.Logger, repo OrderRepo, gateway Gateway, cache Cache, events EventPublisher, secret string) *paymentService {
	return &paymentService{
		logger:  logger.With(slog.String("service", "payment")),
		repo:    repo,
		gateway: gateway,
		cache:   cache,
		events:  events,
		secret:  secret,
	}
}

// Подпись проверяется до любого запроса в шлюз
func (s *paymentService) VerifyPayment(ctx context.Context, in VerifyPaymentInput) (entities.Reconciliation, error) {
	if in.PaymentID == "" || in.GatewayOrderID == "" || in.Signature == "" || in.OrderNumber == "" {
		return entities.Reconciliation{}, entities.NewValidationError(entities.ReasonMissingFields, "")
	}

	if err := s.checkSignature(signature.OrderPayload(in.GatewayOrderID, in.PaymentID), in.Signature); err != nil {
		s.logger.Warn("invalid payment signature",
			slog.String("order_number", in.OrderNumber),
			slog.String("payment_id", in.PaymentID),
		)
		return entities.Reconciliation{}, err
	}

	payment, err := s.gateway.FetchPayment(ctx, in.PaymentID)
	if err != nil {
		return entities.Reconciliation{}, err
	}
	if !payment.Captured() {
		return entities.Reconciliation{}, &entities.PaymentNotCapturedError{PaymentID: in.PaymentID, Status: payment.Status}
	}

	paymentID := payment.ID
	if paymentID == "" {
		paymentID = in.PaymentID
	}
	now := time.Now().UTC()

	order, err := s.repo.GetOrderByNumber(ctx, in.OrderNumber)
	if errors.Is(err, entities.ErrOrderNotFound) {
		name := payment.Contact
		if name == "" {
			name = "Unknown"
		}
		currency := payment.Currency
		if currency == "" {
			currency = defaultCurrency
		}

		return s.synthesize(ctx, entities.Order{
			ID:                recoveryIDForNumber(in.OrderNumber),
			OrderNumber:       in.OrderNumber,
			CustomerName:      name,
			Email:             payment.Email,
			TotalPrice:        payment.Amount,
			Currency:          currency,
			Status:            entities.StatusPaid,
			OrderDate:         now,
			PaymentDate:       now,
			GatewayPaymentID:  paymentID,
			GatewayCustomerID: payment.CustomerID,
			Recovered:         true,
		})
	}
	if err != nil {
		return entities.Reconciliation{}, &entities.StoreError{Op: "get_order", Err: err}
	}

	patch := entities.OrderPatch{
		GatewayPaymentID: &paymentID,
		PaymentDate:      &now,
	}
	if payment.CustomerID != "" {
		patch.GatewayCustomerID = &payment.CustomerID
	}

	return s.markPaid(ctx, order, patch, entities.ResolvedByOrderNumber)
}

func (s *paymentService) HandlePaymentLinkCallback(ctx context.Context, in PaymentLinkCallbackInput) (entities.Reconciliation, error) {
	if in.PaymentID == "" || in.PaymentLinkID == "" || in.Signature == "" {
		return entities.Reconciliation{}, entities.NewValidationError(entities.ReasonMissingFields, "")
	}

	if err := s.checkSignature(signature.PaymentLinkPayload(in.PaymentID, in.PaymentLinkID), in.Signature); err != nil {
		s.logger.Warn("invalid payment link signature",
			slog.String("payment_link_id", in.PaymentLinkID),
			slog.String("reference_id", in.ReferenceID),
		)
		return entities.Reconciliation{}, err
	}

	now := time.Now().UTC()
	patch := entities.OrderPatch{
		GatewayPaymentID:     &in.PaymentID,
		GatewayPaymentLinkID: &in.PaymentLinkID,
		PaymentDate:          &now,
	}

	if in.ReferenceID != "" {
		order, err := s.repo.GetOrderByNumber(ctx, in.ReferenceID)
		if err == nil {
			return s.markPaid(ctx, order, patch, entities.ResolvedByReference)
		}
		if !errors.Is(err, entities.ErrOrderNotFound) {
			return entities.Reconciliation{}, &entities.StoreError{Op: "get_order", Err: err}
		}
	}

	order, err := s.repo.GetOrderByPaymentLinkID(ctx, in.PaymentLinkID)
	if err == nil {
		return s.markPaid(ctx, order, patch, entities.ResolvedByPaymentLink)
	}
	if !errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Reconciliation{}, &entities.StoreError{Op: "get_order_by_link", Err: err}
	}

	return s.synthesize(ctx, entities.Order{
		ID:                   recoveryIDForLink(in.PaymentLinkID),
		OrderNumber:          newOrderNumber(now),
		CustomerName:         unknownPaymentLinkCustomer,
		Currency:             defaultCurrency,
		Status:               entities.StatusPaid,
		OrderDate:            now,
		PaymentDate:          now,
		GatewayPaymentID:     in.PaymentID,
		GatewayPaymentLinkID: in.PaymentLinkID,
		Recovered:            true,
	})
}

func (s *paymentService) checkSignature(payload, sig string) error {
	if s.secret == "" {
		return &entities.GatewayError{Op: "verify_signature", Err: errors.New("key secret is not configured")}
	}
	if !signature.Verify(payload, sig, s.secret) {
		return entities.ErrInvalidSignature
	}
	return nil
}

// Статус не откатываем: продвинутый админом заказ остаётся как есть
func (s *paymentService) markPaid(ctx context.Context, order entities.Order, patch entities.OrderPatch, resolution entities.Resolution) (entities.Reconciliation, error) {
	switch order.Status {
	case entities.StatusPending, entities.StatusPaid, "":
		paid := entities.StatusPaid
		patch.Status = &paid
	default:
		s.logger.Info("payment recorded without status change",
			slog.String("order_number", order.OrderNumber),
			slog.String("status", string(order.Status)),
		)
	}

	if err := s.repo.PatchOrder(ctx, order.ID, patch); err != nil {
		return entities.Reconciliation{}, &entities.StoreError{Op: "patch_order", Err: err}
	}
	s.cache.Delete(order.OrderNumber)

	patch.Apply(&order)
	s.logger.Info("payment reconciled",
		slog.String("order_number", order.OrderNumber),
		slog.String("payment_id", order.GatewayPaymentID),
		slog.String("resolution", string(resolution)),
	)
	publish(ctx, s.logger, s.events, orderEvent(entities.EventOrderPaid, order))

	return entities.Reconciliation{OrderNumber: order.OrderNumber, Resolution: resolution}, nil
}

func (s *paymentService) synthesize(ctx context.Context, order entities.Order) (entities.Reconciliation, error) {
	stored, created, err := s.repo.CreateIfAbsent(ctx, order)
	if err != nil {
		return entities.Reconciliation{}, &entities.StoreError{Op: "create_recovery_order", Err: err}
	}

	s.logger.Warn("payment recovered into synthesized order",
		slog.String("order_number", stored.OrderNumber),
		slog.String("payment_id", stored.GatewayPaymentID),
		slog.String("payment_link_id", stored.GatewayPaymentLinkID),
		slog.Bool("created", created),
	)
	if created {
		publish(ctx, s.logger, s.events, orderEvent(entities.EventOrderPaid, stored))
		return entities.Reconciliation{OrderNumber: stored.OrderNumber, Resolution: entities.ResolvedSynthesized}, nil
	}
	if stored.GatewayPaymentID == order.GatewayPaymentID {
		return entities.Reconciliation{OrderNumber: stored.OrderNumber, Resolution: entities.ResolvedSynthesized}, nil
	}

	// Под этим id лежит запись без этого платежа, платёж пишем в неё.
	return s.markPaid(ctx, stored, recoveryPatch(order), entities.ResolvedSynthesized)
}

func recoveryPatch(order entities.Order) entities.OrderPatch {
	patch := entities.OrderPatch{
		GatewayPaymentID: &order.GatewayPaymentID,
		PaymentDate:      &order.PaymentDate,
	}
	if order.GatewayPaymentLinkID != "" {
		patch.GatewayPaymentLinkID = &order.GatewayPaymentLinkID
	}
	if order.GatewayCustomerID != "" {
		patch.GatewayCustomerID = &order.GatewayCustomerID
	}
	return patch
}
