package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hapkiduki/shipping-console/internal/application/dto"
	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/application/service"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/internal/domain/repository"
	"github.com/hapkiduki/shipping-console/internal/infrastructure/logging"
	"github.com/hapkiduki/shipping-console/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"validation", &validation.Error{Fields: []validation.FieldError{{Field: "pieces", Message: "pieces is required"}}}, http.StatusBadRequest, dto.CodeValidation},
		{"query parameter", &dto.FieldError{Field: "page", Message: "bad"}, http.StatusBadRequest, dto.CodeValidation},
		{"invalid service", entity.ErrInvalidServiceType, http.StatusBadRequest, dto.CodeValidation},
		{"wrapped not found", fmt.Errorf("get: %w", repository.ErrDraftNotFound), http.StatusNotFound, dto.CodeNotFound},
		{"customer not found", repository.ErrCustomerNotFound, http.StatusNotFound, dto.CodeNotFound},
		{"credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, dto.CodeUnauthorized},
		{"duplicate", repository.ErrDuplicateID, http.StatusConflict, dto.CodeConflict},
		{"backend unavailable", fmt.Errorf("submit: %w", port.ErrSubmitterUnavailable), http.StatusServiceUnavailable, dto.CodeServiceUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, dto.CodeTimeout},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, dto.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(rec, req, logging.Nop(), tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			var resp dto.APIResponse[any]
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantErr, resp.Error.Code)
		})
	}
}

func TestHandleError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	handleError(rec, req, logging.Nop(), errors.New("connection refused to 10.0.0.7"))

	assert.NotContains(t, rec.Body.String(), "10.0.0.7")
}

type stubCounter struct {
	n   int64
	err error
}

func (s stubCounter) Count(context.Context) (int64, error) { return s.n, s.err }

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		h := NewHealthHandler("1.2.3", map[string]Counter{"drafts": stubCounter{n: 3}})
		rec := httptest.NewRecorder()
		h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "1.2.3", resp.Version)
		assert.Equal(t, "3 records", resp.Checks["drafts"].Message)
	})

	t.Run("failing store", func(t *testing.T) {
		h := NewHealthHandler("1.2.3", map[string]Counter{
			"drafts":    stubCounter{n: 1},
			"customers": stubCounter{err: errors.New("store closed")},
		})
		rec := httptest.NewRecorder()
		h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var resp dto.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "healthy", resp.Checks["drafts"].Status)
		assert.Equal(t, "1 record", resp.Checks["drafts"].Message)
		assert.Equal(t, "store closed", resp.Checks["customers"].Message)
	})
}
