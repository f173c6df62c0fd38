package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	ReplayedHeader       = "Idempotent-Replayed"
)

// Reason codes that do not come from a validation error.
const (
	reasonInvalidSignature   = "invalid_signature"
	reasonPaymentNotCaptured = "payment_not_captured"
	reasonOrderNotFound      = "order_not_found"
	reasonAddressNotFound    = "address_not_found"
	reasonGatewayError       = "gateway_error"
	reasonServerError        = "server_error"
)

// errorStatus maps a service error to an HTTP status and reason code.
func errorStatus(err error) (int, string) {
	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Reason
	case errors.Is(err, entities.ErrInvalidSignature):
		return http.StatusBadRequest, reasonInvalidSignature
	case errors.Is(err, entities.ErrPaymentNotCaptured):
		return http.StatusBadRequest, reasonPaymentNotCaptured
	case errors.Is(err, entities.ErrOrderNotFound):
		return http.StatusNotFound, reasonOrderNotFound
	case errors.Is(err, entities.ErrAddressNotFound):
		return http.StatusNotFound, reasonAddressNotFound
	case errors.Is(err, entities.ErrGateway):
		return http.StatusBadGateway, reasonGatewayError
	default:
		return http.StatusInternalServerError, reasonServerError
	}
}

func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, msg string, err error) {
	code, reason := errorStatus(err)
	if code >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, slog.Any("error", err))
	} else {
		logger.DebugContext(ctx, msg, slog.String("reason", reason), slog.Any("error", err))
	}
	utils.WriteError(w, reason, code)
}

type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (string, bool, error)
	GetOrder(ctx context.Context, orderNumber string) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Post("/api/orders", h.CreateOrder)
	r.Get("/api/orders/{orderNumber}", h.GetOrder)
}

// CreateOrder создаёт заказ в статусе pending.
// @Summary      Создать заказ
// @Description  Создаёт заказ. Повтор с тем же Idempotency-Key возвращает номер уже созданного заказа
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string              false  "Ключ идемпотентности"
// @Param        request          body      CreateOrderRequest  true   "Заказ"
// @Success      200  {object}  CreateOrderResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "missing_required_fields, invalid_amount, invalid_products"
// @Failure      404  {object}  utils.ErrorResponse "address_not_found"
// @Failure      500  {object}  utils.ErrorResponse "server_error"
// @Router       /api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, utils.ReasonInvalidJSON, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		ordersCreated.WithLabelValues("invalid").Inc()
		utils.WriteValidationError(w, err)
		return
	}

	in := req.toInput()
	in.IdempotencyKey = r.Header.Get(IdempotencyKeyHeader)

	orderNumber, replayed, err := h.svc.CreateOrder(ctx, in)
	if err != nil {
		ordersCreated.WithLabelValues("failed").Inc()
		writeServiceError(ctx, h.logger, w, "failed to create order", err)
		return
	}

	if replayed {
		ordersCreated.WithLabelValues("replayed").Inc()
		w.Header().Set(ReplayedHeader, "true")
	} else {
		ordersCreated.WithLabelValues("created").Inc()
	}
	utils.WriteJSON(w, CreateOrderResponse{OK: true, OrderNumber: orderNumber}, http.StatusOK)
}

// GetOrder возвращает заказ по номеру.
// @Summary      Получить заказ по номеру
// @Description  Возвращает заказ для страницы подтверждения
// @Tags         orders
// @Produce      json
// @Param        orderNumber  path      string  true  "Номер заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "order_not_found"
// @Failure      500  {object}  utils.ErrorResponse "server_error"
// @Router       /api/orders/{orderNumber} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderRequestsInProgress.Inc()
	defer orderRequestsInProgress.Dec()
	start := time.Now()
	defer func() {
		orderRequestDuration.Observe(time.Since(start).Seconds())
	}()

	ctx := r.Context()
	orderNumber := chi.URLParam(r, "orderNumber")

	if err := h.validate.Var(orderNumber, "required"); err != nil {
		orderRequestTotal.WithLabelValues("bad_request").Inc()
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(ctx, orderNumber)
	if err != nil {
		_, reason := errorStatus(err)
		orderRequestTotal.WithLabelValues(reason).Inc()
		writeServiceError(ctx, h.logger, w, "failed to get order", err)
		return
	}

	orderRequestTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func toDecimal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
