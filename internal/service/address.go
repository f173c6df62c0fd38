package service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

	"github.com/google/uuid"
)

var zipPattern = regexp.MustCompile(`^\d{6}(-\d{5})?$`)

const (
	maxAddressNameLen = 50
	minStreetLen      = 6
	maxStreetLen      = 100
)

type AddressInput struct {
	Name    string
	Email   string
	Street  string
	City    string
	State   string
	Zip     string
	Default bool
}

type addressService struct {
	logger *slog.Logger
	repo   AddressRepo
}

func NewAddressService(logger *slog.Logger, repo AddressRepo) *addressService {
	return &addressService{
		logger: logger.With(slog.String("service", "address")),
		repo:   repo,
	}
}

func (s *addressService) CreateAddress(ctx context.Context, in AddressInput) (entities.Address, error) {
	a := entities.Address{
		ID:        "addr_" + uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Street:    strings.TrimSpace(in.Street),
		City:      strings.TrimSpace(in.City),
		State:     strings.TrimSpace(in.State),
		Zip:       strings.TrimSpace(in.Zip),
		Default:   in.Default,
		CreatedAt: time.Now().UTC(),
	}
	if err := validateAddress(a); err != nil {
		return entities.Address{}, err
	}

	if err := s.repo.CreateAddress(ctx, a); err != nil {
		return entities.Address{}, &entities.StoreError{Op: "create_address", Err: err}
	}

	s.logger.Info("address created", slog.String("address_id", a.ID), slog.Bool("default", a.Default))
	return a, nil
}

func (s *addressService) ListAddresses(ctx context.Context, email string) ([]entities.Address, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, entities.NewValidationError(entities.ReasonMissingFields, "email")
	}

	list, err := s.repo.ListAddresses(ctx, email)
	if err != nil {
		return nil, &entities.StoreError{Op: "list_addresses", Err: err}
	}
	return list, nil
}

func validateAddress(a entities.Address) error {
	if a.Name == "" || a.Email == "" || a.Street == "" || a.City == "" || a.State == "" || a.Zip == "" {
		return entities.NewValidationError(entities.ReasonMissingFields, "")
	}
	if utf8.RuneCountInString(a.Name) > maxAddressNameLen {
		return entities.NewValidationError(entities.ReasonInvalidAddress, "name")
	}
	if n := utf8.RuneCountInString(a.Street); n < minStreetLen || n > maxStreetLen {
		return entities.NewValidationError(entities.ReasonInvalidAddress, "street")
	}
	if !zipPattern.MatchString(a.Zip) {
		return entities.NewValidationError(entities.ReasonInvalidAddress, "zip")
	}
	return nil
}
