package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CheckoutService interface {
	CreateGatewayOrder(ctx context.Context, in service.GatewayOrderInput) (service.GatewayOrderResult, error)
	CreatePaymentLink(ctx context.Context, orderNumber string) (entities.PaymentLink, error)
}

type CheckoutHandler struct {
	logger      *slog.Logger
	validate    *validator.Validate
	svc         CheckoutService
	middlewares chi.Middlewares
}

// NewCheckoutHandler wraps its routes with middlewares, typically a rate limiter.
func NewCheckoutHandler(logger *slog.Logger, svc CheckoutService, middlewares ...func(http.Handler) http.Handler) *CheckoutHandler {
	return &CheckoutHandler{
		logger:      logger.With(slog.String("handler", "checkout")),
		validate:    utils.NewValidator(),
		svc:         svc,
		middlewares: middlewares,
	}
}

func (h *CheckoutHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.middlewares...)
		r.Post("/api/gateway/orders", h.CreateGatewayOrder)
		r.Post("/api/payment-links", h.CreatePaymentLink)
	})
}

// CreateGatewayOrder создаёт заказ в платёжном шлюзе.
// @Summary      Создать платёжный заказ
// @Description  Создаёт заказ в шлюзе на сумму в основных единицах. В ответе сумма в минорных единицах и публичный ключ
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      GatewayOrderRequest  true  "Платёжный заказ"
// @Success      200  {object}  GatewayOrderResponse
// @Failure      400  {object}  utils.ErrorResponse "missing_required_fields, invalid_amount"
// @Failure      429  {object}  utils.ErrorResponse "too_many_requests"
// @Failure      502  {object}  utils.ErrorResponse "gateway_error"
// @Router       /api/gateway/orders [post]
func (h *CheckoutHandler) CreateGatewayOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req GatewayOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, utils.ReasonInvalidJSON, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.svc.CreateGatewayOrder(ctx, service.GatewayOrderInput{
		OrderNumber: req.OrderNumber,
		Amount:      toDecimal(req.Amount),
		Currency:    req.Currency,
	})
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to create gateway order", err)
		return
	}

	utils.WriteJSON(w, GatewayOrderResponse{
		OK:       true,
		ID:       res.ID,
		Amount:   res.Amount,
		Currency: res.Currency,
		KeyID:    res.KeyID,
	}, http.StatusOK)
}

// CreatePaymentLink создаёт ссылку на оплату заказа.
// @Summary      Создать платёжную ссылку
// @Description  Создаёт платёжную ссылку на сумму заказа. Номер заказа передаётся в шлюз как reference
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      PaymentLinkRequest  true  "Номер заказа"
// @Success      200  {object}  PaymentLinkResponse
// @Failure      400  {object}  utils.ErrorResponse "missing_required_fields"
// @Failure      404  {object}  utils.ErrorResponse "order_not_found"
// @Failure      429  {object}  utils.ErrorResponse "too_many_requests"
// @Failure      502  {object}  utils.ErrorResponse "gateway_error"
// @Router       /api/payment-links [post]
func (h *CheckoutHandler) CreatePaymentLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PaymentLinkRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, utils.ReasonInvalidJSON, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	link, err := h.svc.CreatePaymentLink(ctx, req.OrderNumber)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to create payment link", err)
		return
	}

	utils.WriteJSON(w, PaymentLinkResponse{OK: true, PaymentLinkID: link.ID, ShortURL: link.ShortURL}, http.StatusOK)
}
