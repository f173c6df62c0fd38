package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	OrderNumber string  `json:"orderNumber" validate:"required"`
	Email       string  `json:"email,omitempty" validate:"omitempty,email"`
	Amount      float64 `json:"amount" validate:"gte=0"`
}

func TestWriteValidationError(t *testing.T) {
	v := NewValidator()

	testCases := []struct {
		name       string
		req        testRequest
		wantReason string
		wantFields map[string]string
	}{
		{
			name:       "missing required",
			req:        testRequest{Email: "bad"},
			wantReason: ReasonMissingFields,
			wantFields: map[string]string{"orderNumber": "required", "email": "email"},
		},
		{
			name:       "invalid only",
			req:        testRequest{OrderNumber: "ORD_1", Amount: -1},
			wantReason: ReasonInvalidRequest,
			wantFields: map[string]string{"amount": "gte"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)
			require.Error(t, err)
			assert.Equal(t, tc.wantReason, ValidationReason(err))

			rr := httptest.NewRecorder()
			require.NoError(t, WriteValidationError(rr, err))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			var body ValidationErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tc.wantReason, body.Message)
			assert.Equal(t, tc.wantFields, body.Fields)
		})
	}
}

func TestDecodeBody_TooLarge(t *testing.T) {
	body := `{"orderNumber":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))

	var v testRequest
	assert.Error(t, DecodeBody(req, &v))
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, WriteError(rr, "order_not_found", http.StatusNotFound))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"order_not_found"}`, rr.Body.String())
}
