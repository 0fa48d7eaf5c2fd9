package dto

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hapkiduki/shipping-console/internal/application/service"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/internal/domain/repository"
)

// CreateBusinessUnitRequest is the body of POST /business-units.
type CreateBusinessUnitRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Phone  string `json:"phone" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Type   string `json:"type"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive pending"`
}

// Bind implements render.Binder.
func (req *CreateBusinessUnitRequest) Bind(_ *http.Request) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	return nil
}

// ToInput converts the request into service input.
func (req *CreateBusinessUnitRequest) ToInput() service.CreateBusinessUnitInput {
	return service.CreateBusinessUnitInput{
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Type:   req.Type,
		Status: entity.BusinessUnitStatus(req.Status),
	}
}

// BusinessUnitFilterFromQuery reads search, type, status, createdAtFrom,
// createdAtTo, page and pageSize. Dates are RFC 3339 or YYYY-MM-DD; a bare
// createdAtTo date includes the whole day.
//
// Returns:
//   - error: *FieldError naming the first malformed parameter
func BusinessUnitFilterFromQuery(q url.Values) (repository.BusinessUnitFilter, error) {
	filter := repository.BusinessUnitFilter{
		Search: strings.TrimSpace(q.Get("search")),
		Type:   strings.TrimSpace(q.Get("type")),
		Status: entity.BusinessUnitStatus(strings.TrimSpace(q.Get("status"))),
	}

	var err error
	if filter.CreatedFrom, err = parseDate(q, "createdAtFrom", false); err != nil {
		return filter, err
	}
	if filter.CreatedTo, err = parseDate(q, "createdAtTo", true); err != nil {
		return filter, err
	}
	if filter.Page, err = parseInt(q, "page"); err != nil {
		return filter, err
	}
	if filter.PageSize, err = parseInt(q, "pageSize"); err != nil {
		return filter, err
	}
	return filter, nil
}

// FieldError reports a malformed query parameter.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func parseInt(q url.Values, key string) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &FieldError{Field: key, Message: key + " must be a non-negative integer"}
	}
	return n, nil
}

func parseDate(q url.Values, key string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, &FieldError{Field: key, Message: key + " must be a date (YYYY-MM-DD) or RFC 3339 timestamp"}
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
