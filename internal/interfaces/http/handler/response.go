// Package handler contains the HTTP handlers of the console API.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/hapkiduki/shipping-console/internal/application/dto"
	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/application/service"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/internal/domain/repository"
	"github.com/hapkiduki/shipping-console/internal/interfaces/http/middleware"
	"github.com/hapkiduki/shipping-console/pkg/validation"
)

// respond writes data in the success envelope.
func respond[T any](w http.ResponseWriter, r *http.Request, status int, data T) {
	resp := dto.NewSuccessResponse(data)
	resp.Meta = meta(r)
	render.Status(r, status)
	render.JSON(w, r, resp)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	resp := dto.NewErrorResponse[any](code, message)
	resp.Meta = meta(r)
	render.Status(r, status)
	render.JSON(w, r, resp)
}

func respondValidation(w http.ResponseWriter, r *http.Request, fields []dto.ValidationError) {
	resp := dto.NewValidationErrorResponse[any](fields)
	resp.Meta = meta(r)
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, resp)
}

func meta(r *http.Request) *dto.ResponseMeta {
	return &dto.ResponseMeta{
		RequestID: middleware.GetRequestID(r.Context()),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// handleError maps application and domain errors to HTTP responses.
func handleError(w http.ResponseWriter, r *http.Request, log port.Logger, err error) {
	if verr, ok := validation.AsError(err); ok {
		respondValidation(w, r, dto.ValidationErrorsFrom(verr))
		return
	}
	var fieldErr *dto.FieldError
	if errors.As(err, &fieldErr) {
		respondValidation(w, r, []dto.ValidationError{{Field: fieldErr.Field, Message: fieldErr.Message}})
		return
	}

	switch {
	case errors.Is(err, entity.ErrInvalidServiceType),
		errors.Is(err, entity.ErrInvalidContractType),
		errors.Is(err, entity.ErrInvalidStatus),
		errors.Is(err, entity.ErrInvalidBusinessUnit),
		errors.Is(err, entity.ErrInvalidCustomer),
		errors.Is(err, repository.ErrInvalidInput):
		respondError(w, r, http.StatusBadRequest, dto.CodeValidation, err.Error())
	case repository.IsNotFoundError(err):
		respondError(w, r, http.StatusNotFound, dto.CodeNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, repository.ErrSessionNotFound):
		respondError(w, r, http.StatusUnauthorized, dto.CodeUnauthorized, err.Error())
	case errors.Is(err, repository.ErrDuplicateID):
		respondError(w, r, http.StatusConflict, dto.CodeConflict, err.Error())
	case errors.Is(err, port.ErrSubmitterUnavailable):
		respondError(w, r, http.StatusServiceUnavailable, dto.CodeServiceUnavailable, "Shipment backend is unavailable, please retry later")
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusGatewayTimeout, dto.CodeTimeout, "Request timed out")
	default:
		log.WithContext(r.Context()).Error("Request failed", "path", r.URL.Path, "error", err)
		respondError(w, r, http.StatusInternalServerError, dto.CodeInternal, "An unexpected error occurred")
	}
}

// bind decodes and validates a request body. It writes the error response
// and returns false when the body is unusable.
func bind(w http.ResponseWriter, r *http.Request, v *validation.Validator, req render.Binder) bool {
	if err := render.Bind(r, req); err != nil {
		respondError(w, r, http.StatusBadRequest, dto.CodeBadRequest, "Invalid request body")
		return false
	}
	if err := v.Struct(req); err != nil {
		if verr, ok := validation.AsError(err); ok {
			respondValidation(w, r, dto.ValidationErrorsFrom(verr))
			return false
		}
		respondError(w, r, http.StatusBadRequest, dto.CodeBadRequest, err.Error())
		return false
	}
	return true
}

// NotFound handles 404 responses.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, dto.CodeNotFound, "The requested resource was not found")
}

// MethodNotAllowed handles 405 responses.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, dto.CodeMethodNotAllowed, "The requested method is not allowed for this resource")
}
