package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAddressHandler_CreateAddress(t *testing.T) {
	body := `{"name":"Asha Rao","email":"asha@example.com","address":"12 MG Road","city":"Bengaluru","state":"KA","zip":"560001","default":true}`
	created := entities.Address{
		ID:        "addr_1",
		Name:      "Asha Rao",
		Email:     "asha@example.com",
		Street:    "12 MG Road",
		City:      "Bengaluru",
		State:     "KA",
		Zip:       "560001",
		Default:   true,
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockAddressService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: body,
			mockBehavior: func(svc *mocks.MockAddressService) {
				svc.EXPECT().CreateAddress(mock.Anything, service.AddressInput{
					Name:    "Asha Rao",
					Email:   "asha@example.com",
					Street:  "12 MG Road",
					City:    "Bengaluru",
					State:   "KA",
					Zip:     "560001",
					Default: true,
				}).Return(created, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"addr_1"`,
		},
		{
			name:         "missing zip",
			body:         `{"name":"Asha Rao","email":"asha@example.com","address":"12 MG Road","city":"Bengaluru","state":"KA"}`,
			mockBehavior: func(*mocks.MockAddressService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"missing_required_fields"`,
		},
		{
			name: "invalid zip",
			body: strings.Replace(body, "560001", "ABC", 1),
			mockBehavior: func(svc *mocks.MockAddressService) {
				svc.EXPECT().CreateAddress(mock.Anything, mock.Anything).
					Return(entities.Address{}, entities.NewValidationError(entities.ReasonInvalidAddress, "zip")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid_address"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAddressService(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/addresses", strings.NewReader(tc.body))
			rr := serve(handler.NewAddressHandler(discardLogger(), svc), req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestAddressHandler_ListAddresses(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(svc *mocks.MockAddressService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "success",
			query: "?email=asha@example.com",
			mockBehavior: func(svc *mocks.MockAddressService) {
				svc.EXPECT().ListAddresses(mock.Anything, "asha@example.com").
					Return([]entities.Address{{ID: "addr_1", Default: true}, {ID: "addr_2"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"addr_1"`,
		},
		{
			name:  "empty",
			query: "?email=new@example.com",
			mockBehavior: func(svc *mocks.MockAddressService) {
				svc.EXPECT().ListAddresses(mock.Anything, "new@example.com").Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"addresses":[]`,
		},
		{
			name:         "missing email",
			mockBehavior: func(*mocks.MockAddressService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"missing_required_fields"`,
		},
		{
			name:  "store failure",
			query: "?email=asha@example.com",
			mockBehavior: func(svc *mocks.MockAddressService) {
				svc.EXPECT().ListAddresses(mock.Anything, "asha@example.com").
					Return(nil, &entities.StoreError{Op: "list_addresses", Err: errors.New("down")}).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"server_error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAddressService(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/addresses"+tc.query, nil)
			rr := serve(handler.NewAddressHandler(discardLogger(), svc), req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
