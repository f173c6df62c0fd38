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

type AddressService interface {
	CreateAddress(ctx context.Context, in service.AddressInput) (entities.Address, error)
	ListAddresses(ctx context.Context, email string) ([]entities.Address, error)
}

type AddressHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AddressService
}

func NewAddressHandler(logger *slog.Logger, svc AddressService) *AddressHandler {
	return &AddressHandler{
		logger:   logger.With(slog.String("handler", "addresses")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *AddressHandler) Init(r chi.Router) {
	r.Post("/api/addresses", h.CreateAddress)
	r.Get("/api/addresses", h.ListAddresses)
}

// CreateAddress сохраняет адрес в адресную книгу покупателя.
// @Summary      Сохранить адрес
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        request  body      CreateAddressRequest  true  "Адрес"
// @Success      201  {object}  CreateAddressResponse
// @Failure      400  {object}  utils.ErrorResponse "missing_required_fields, invalid_address"
// @Failure      500  {object}  utils.ErrorResponse "server_error"
// @Router       /api/addresses [post]
func (h *AddressHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateAddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, utils.ReasonInvalidJSON, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	address, err := h.svc.CreateAddress(ctx, service.AddressInput{
		Name:    req.Name,
		Email:   req.Email,
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		Zip:     req.Zip,
		Default: req.Default,
	})
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to create address", err)
		return
	}

	utils.WriteJSON(w, CreateAddressResponse{OK: true, Address: AddressEntityToJSON(address)}, http.StatusCreated)
}

// ListAddresses возвращает адреса покупателя, адрес по умолчанию первым.
// @Summary      Адреса покупателя
// @Tags         addresses
// @Produce      json
// @Param        email  query     string  true  "Email покупателя"
// @Success      200  {object}  AddressListResponse
// @Failure      400  {object}  utils.ErrorResponse "missing_required_fields"
// @Failure      500  {object}  utils.ErrorResponse "server_error"
// @Router       /api/addresses [get]
func (h *AddressHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	email := r.URL.Query().Get("email")

	if err := h.validate.Var(email, "required,email"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	list, err := h.svc.ListAddresses(ctx, email)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "failed to list addresses", err)
		return
	}

	res := AddressListResponse{Addresses: make([]Address, 0, len(list))}
	for _, a := range list {
		res.Addresses = append(res.Addresses, AddressEntityToJSON(a))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
