package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validAddress() service.AddressInput {
	return service.AddressInput{
		Name:    "Home",
		Email:   "asha@example.com",
		Street:  "12 MG Road",
		City:    "Pune",
		State:   "MH",
		Zip:     "411001",
		Default: true,
	}
}

func TestAddressService_CreateAddress(t *testing.T) {
	testCases := []struct {
		name       string
		modify     func(in *service.AddressInput)
		repoErr    error
		callsRepo  bool
		wantErr    error
		wantReason string
	}{
		{name: "OK", modify: func(*service.AddressInput) {}, callsRepo: true},
		{name: "extended zip", modify: func(in *service.AddressInput) { in.Zip = "411001-12345" }, callsRepo: true},
		{
			name:       "missing city",
			modify:     func(in *service.AddressInput) { in.City = "" },
			wantErr:    entities.ErrValidation,
			wantReason: entities.ReasonMissingFields,
		},
		{
			name:       "name too long",
			modify:     func(in *service.AddressInput) { in.Name = strings.Repeat("a", 51) },
			wantErr:    entities.ErrValidation,
			wantReason: entities.ReasonInvalidAddress,
		},
		{
			name:       "street too short",
			modify:     func(in *service.AddressInput) { in.Street = "12 MG" },
			wantErr:    entities.ErrValidation,
			wantReason: entities.ReasonInvalidAddress,
		},
		{
			name:       "bad zip",
			modify:     func(in *service.AddressInput) { in.Zip = "4110" },
			wantErr:    entities.ErrValidation,
			wantReason: entities.ReasonInvalidAddress,
		},
		{
			name:      "store failure",
			modify:    func(*service.AddressInput) {},
			callsRepo: true,
			repoErr:   errors.New("db down"),
			wantErr:   entities.ErrStore,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockAddressRepo(t)
			if tc.callsRepo {
				repo.EXPECT().CreateAddress(mock.Anything, mock.MatchedBy(func(a entities.Address) bool {
					return strings.HasPrefix(a.ID, "addr_") && !a.CreatedAt.IsZero()
				})).Return(tc.repoErr).Once()
			}

			in := validAddress()
			tc.modify(&in)

			svc := service.NewAddressService(discardLogger(), repo)
			got, err := svc.CreateAddress(context.Background(), in)

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
			assert.Equal(t, in.Zip, got.Zip)
			assert.True(t, got.Default)
		})
	}
}

func TestAddressService_ListAddresses(t *testing.T) {
	repo := mocks.NewMockAddressRepo(t)
	repo.EXPECT().ListAddresses(mock.Anything, "asha@example.com").
		Return([]entities.Address{{ID: "addr_1"}}, nil).Once()

	svc := service.NewAddressService(discardLogger(), repo)

	list, err := svc.ListAddresses(context.Background(), " asha@example.com ")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListAddresses(context.Background(), "")
	assert.ErrorIs(t, err, entities.ErrValidation)
}
