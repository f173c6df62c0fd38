package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	flowCheckout    = "checkout"
	flowPaymentLink = "payment_link"

	confirmPath = "/order/confirm"
)

// Статусы для страницы подтверждения заказа.
const (
	confirmPaid   = "paid"
	confirmFailed = "failed"
	confirmError  = "error"
)

type PaymentService interface {
	VerifyPayment(ctx context.Context, in service.VerifyPaymentInput) (entities.Reconciliation, error)
	HandlePaymentLinkCallback(ctx context.Context, in service.PaymentLinkCallbackInput) (entities.Reconciliation, error)
}

type PaymentHandler struct {
	logger      *slog.Logger
	validate    *validator.Validate
	svc         PaymentService
	siteURL     string
	middlewares chi.Middlewares
}

// NewPaymentHandler redirects payment-link callbacks to the order confirmation
// page of siteURL.
func NewPaymentHandler(logger *slog.Logger, svc PaymentService, siteURL string, middlewares ...func(http.Handler) http.Handler) *PaymentHandler {
	return &PaymentHandler{
		logger:      logger.With(slog.String("handler", "payments")),
		validate:    utils.NewValidator(),
		svc:         svc,
		siteURL:     strings.TrimRight(siteURL, "/"),
		middlewares: middlewares,
	}
}

func (h *PaymentHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.middlewares...)
		r.Post("/api/payments/verify", h.VerifyPayment)
		r.Get(service.CallbackPath, h.PaymentLinkCallback)
	})
}

// VerifyPayment подтверждает оплату из встроенного чекаута.
// @Summary      Подтвердить оплату
// @Description  Проверяет подпись, статус платежа в шлюзе и отмечает заказ оплаченным. Неизвестный заказ восстанавливается по данным платежа
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      VerifyPaymentRequest  true  "Данные платежа"
// @Success      200  {object}  VerifyPaymentResponse
// @Failure      400  {object}  utils.ErrorResponse "missing_required_fields, invalid_signature, payment_not_captured"
// @Failure      429  {object}  utils.ErrorResponse "too_many_requests"
// @Failure      502  {object}  utils.ErrorResponse "gateway_error"
// @Failure      500  {object}  utils.ErrorResponse "server_error"
// @Router       /api/payments/verify [post]
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	defer func() {
		paymentVerifyDuration.WithLabelValues(flowCheckout).Observe(time.Since(start).Seconds())
	}()

	var req VerifyPaymentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, utils.ReasonInvalidJSON, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		paymentVerifications.WithLabelValues(flowCheckout, utils.ValidationReason(err)).Inc()
		utils.WriteValidationError(w, err)
		return
	}

	rec, err := h.svc.VerifyPayment(ctx, service.VerifyPaymentInput{
		PaymentID:      req.PaymentID,
		GatewayOrderID: req.GatewayOrderID,
		Signature:      req.Signature,
		OrderNumber:    req.OrderNumber,
	})
	observeVerification(flowCheckout, rec, err)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to verify payment", err)
		return
	}

	utils.WriteJSON(w, VerifyPaymentResponse{
		OK:          true,
		OrderNumber: rec.OrderNumber,
		Resolution:  string(rec.Resolution),
	}, http.StatusOK)
}

// PaymentLinkCallback принимает редирект шлюза после оплаты по ссылке.
// @Summary      Callback платёжной ссылки
// @Description  Проверяет подпись, находит или восстанавливает заказ и перенаправляет покупателя на страницу подтверждения
// @Tags         payments
// @Param        razorpay_payment_id                 query  string  true   "Платёж"
// @Param        razorpay_payment_link_id            query  string  true   "Платёжная ссылка"
// @Param        razorpay_payment_link_reference_id  query  string  false  "Номер заказа"
// @Param        razorpay_payment_link_status        query  string  false  "Статус ссылки"
// @Param        razorpay_signature                  query  string  true   "Подпись"
// @Success      303
// @Router       /api/payments/verify-link/callback [get]
func (h *PaymentHandler) PaymentLinkCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	defer func() {
		paymentVerifyDuration.WithLabelValues(flowPaymentLink).Observe(time.Since(start).Seconds())
	}()

	q := r.URL.Query()
	in := service.PaymentLinkCallbackInput{
		PaymentID:     firstParam(q, "razorpay_payment_id", "payment_id"),
		PaymentLinkID: firstParam(q, "razorpay_payment_link_id", "payment_link_id"),
		ReferenceID:   firstParam(q, "razorpay_payment_link_reference_id", "reference_id", "reference"),
		Signature:     firstParam(q, "razorpay_signature", "signature"),
	}

	rec, err := h.svc.HandlePaymentLinkCallback(ctx, in)
	observeVerification(flowPaymentLink, rec, err)

	orderNumber, status := rec.OrderNumber, confirmPaid
	if err != nil {
		orderNumber = in.ReferenceID
		status = confirmError
		if errors.Is(err, entities.ErrInvalidSignature) {
			status = confirmFailed
		}

		code, _ := errorStatus(err)
		if code >= http.StatusInternalServerError {
			h.logger.Error("payment link callback failed", slog.String("payment_link_id", in.PaymentLinkID), slog.Any("error", err))
		} else {
			h.logger.Warn("payment link callback rejected", slog.String("payment_link_id", in.PaymentLinkID), slog.Any("error", err))
		}
	}

	http.Redirect(w, r, h.confirmURL(orderNumber, status), http.StatusSeeOther)
}

func (h *PaymentHandler) confirmURL(orderNumber, status string) string {
	q := url.Values{}
	if orderNumber != "" {
		q.Set("orderNumber", orderNumber)
	}
	q.Set("status", status)
	return h.siteURL + confirmPath + "?" + q.Encode()
}

// firstParam returns the first non-empty query value among names.
func firstParam(q url.Values, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(q.Get(name)); v != "" {
			return v
		}
	}
	return ""
}

func observeVerification(flow string, rec entities.Reconciliation, err error) {
	if err != nil {
		_, reason := errorStatus(err)
		paymentVerifications.WithLabelValues(flow, reason).Inc()
		return
	}
	paymentVerifications.WithLabelValues(flow, confirmPaid).Inc()
	if rec.Synthesized() {
		paymentRecoveries.WithLabelValues(flow).Inc()
	}
}
