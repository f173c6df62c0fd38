package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AdminService interface {
	UpdateStatus(ctx context.Context, in service.UpdateStatusInput) error
	ListOrders(ctx context.Context, limit int) ([]entities.OrderSummary, error)
}

type AdminHandler struct {
	logger      *slog.Logger
	validate    *validator.Validate
	svc         AdminService
	middlewares chi.Middlewares
}

// NewAdminHandler mounts the admin routes behind middlewares, which are
// expected to authenticate the caller.
func NewAdminHandler(logger *slog.Logger, svc AdminService, middlewares ...func(http.Handler) http.Handler) *AdminHandler {
	return &AdminHandler{
		logger:      logger.With(slog.String("handler", "admin")),
		validate:    utils.NewValidator(),
		svc:         svc,
		middlewares: middlewares,
	}
}

func (h *AdminHandler) Init(r chi.Router) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(h.middlewares...)
		r.Post("/orders/status", h.UpdateStatus)
		r.Get("/orders", h.ListOrders)
	})
}

// UpdateStatus меняет статус заказа.
// @Summary      Обновить статус заказа
// @Description  Устанавливает любой статус жизненного цикла и, при наличии trackingKey, отметку времени трекинга
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-Secret  header    string        true  "Секрет администратора"
// @Param        request         body      StatusUpdate  true  "Новый статус"
// @Success      200  {object}  OKResponse
// @Failure      400  {object}  utils.ErrorResponse "missing_required_fields, invalid_status, invalid_tracking_key"
// @Failure      401  {object}  utils.ErrorResponse "unauthorized"
// @Failure      404  {object}  utils.ErrorResponse "order_not_found"
// @Router       /api/admin/orders/status [post]
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StatusUpdate
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, utils.ReasonInvalidJSON, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.UpdateStatus(ctx, req.toInput()); err != nil {
		writeServiceError(ctx, h.logger, w, "failed to update order status", err)
		return
	}

	utils.WriteJSON(w, OKResponse{OK: true}, http.StatusOK)
}

// ListOrders возвращает номера заказов.
// @Summary      Список заказов
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Secret  header    string  true   "Секрет администратора"
// @Param        limit           query     int     false  "Максимум записей"
// @Success      200  {object}  OrderListResponse
// @Failure      400  {object}  utils.ErrorResponse "invalid_request"
// @Failure      401  {object}  utils.ErrorResponse "unauthorized"
// @Router       /api/admin/orders [get]
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.WriteError(w, "invalid_request", http.StatusBadRequest)
			return
		}
		limit = n
	}

	list, err := h.svc.ListOrders(ctx, limit)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to list orders", err)
		return
	}

	res := OrderListResponse{Count: len(list), List: make([]OrderSummary, 0, len(list))}
	for _, o := range list {
		res.List = append(res.List, OrderSummary{ID: o.ID, OrderNumber: o.OrderNumber})
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
