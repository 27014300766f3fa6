package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"notblank"`
}

func TestDecodeJSON(t *testing.T) {
	t.Run("ignores unknown fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Alice","id":5}`))

		var body testRequest
		require.NoError(t, DecodeJSON(req, &body))
		assert.Equal(t, "Alice", body.Name)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

		var body testRequest
		assert.Error(t, DecodeJSON(req, &body))
	})

	t.Run("rejects a second JSON value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"} {"name":"b"}`))

		var body testRequest
		assert.ErrorIs(t, DecodeJSON(req, &body), ErrTrailingData)
	})

	t.Run("rejects trailing garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}}`))

		var body testRequest
		assert.ErrorIs(t, DecodeJSON(req, &body), ErrTrailingData)
	})

	t.Run("allows trailing whitespace", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{\"name\":\"a\"}\n  "))

		var body testRequest
		require.NoError(t, DecodeJSON(req, &body))
		assert.Equal(t, "a", body.Name)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))

		var body testRequest
		assert.Error(t, DecodeJSON(req, &body))
	})
}

func TestValidateRequest_NotBlank(t *testing.T) {
	tests := []struct {
		name          string
		req           testRequest
		expectedField string
	}{
		{name: "valid", req: testRequest{Name: "Alice", Email: "a@x.io"}},
		{name: "empty name", req: testRequest{Email: "a@x.io"}, expectedField: "Name"},
		{name: "whitespace name", req: testRequest{Name: " \t", Email: "a@x.io"}, expectedField: "Name"},
		{name: "both blank reports name first", req: testRequest{}, expectedField: "Name"},
		{name: "blank email", req: testRequest{Name: "Alice", Email: "  "}, expectedField: "Email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.expectedField == "" {
				assert.NoError(t, err)
				return
			}

			var fieldErrs validator.ValidationErrors
			require.True(t, errors.As(err, &fieldErrs))
			assert.Equal(t, tt.expectedField, fieldErrs[0].Field())
			assert.Equal(t, "notblank", fieldErrs[0].Tag())
		})
	}
}
