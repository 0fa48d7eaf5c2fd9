package service

import (
	"context"
	"fmt"

	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/internal/domain/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// BusinessUnitPage is one page of a business unit search.
type BusinessUnitPage struct {
	Units    []*entity.BusinessUnit
	Total    int64
	Page     int
	PageSize int
}

// CreateBusinessUnitInput carries the fields of a new business unit.
type CreateBusinessUnitInput struct {
	Name   string
	Phone  string
	Email  string
	Type   string
	Status entity.BusinessUnitStatus
}

// BusinessUnitService implements the business unit use cases.
type BusinessUnitService struct {
	units  repository.BusinessUnitRepository
	logger port.Logger
}

// NewBusinessUnitService creates a BusinessUnitService.
func NewBusinessUnitService(units repository.BusinessUnitRepository, logger port.Logger) *BusinessUnitService {
	return &BusinessUnitService{units: units, logger: logger}
}

// Search returns one page of units matching filter. Page defaults to 1 and
// page size to 10, capped at 100.
func (s *BusinessUnitService) Search(ctx context.Context, filter repository.BusinessUnitFilter) (*BusinessUnitPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	switch {
	case filter.PageSize < 1:
		filter.PageSize = defaultPageSize
	case filter.PageSize > maxPageSize:
		filter.PageSize = maxPageSize
	}

	units, total, err := s.units.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search business units: %w", err)
	}
	return &BusinessUnitPage{
		Units:    units,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// Get returns the unit with the given code.
func (s *BusinessUnitService) Get(ctx context.Context, code string) (*entity.BusinessUnit, error) {
	return s.units.GetByCode(ctx, code)
}

// Create stores a new unit and assigns its code.
//
// Returns:
//   - error: entity.ErrInvalidBusinessUnit, entity.ErrInvalidStatus
func (s *BusinessUnitService) Create(ctx context.Context, in CreateBusinessUnitInput) (*entity.BusinessUnit, error) {
	switch in.Status {
	case "", entity.BusinessUnitStatusActive, entity.BusinessUnitStatusInactive, entity.BusinessUnitStatusPending:
	default:
		return nil, entity.ErrInvalidStatus
	}

	unit, err := entity.NewBusinessUnit(in.Name, in.Phone, in.Email, in.Type, in.Status)
	if err != nil {
		return nil, err
	}
	if err := s.units.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("failed to create business unit: %w", err)
	}

	s.logger.WithContext(ctx).Info("Business unit created", "code", unit.Code, "name", unit.Name)
	return unit, nil
}

// Delete removes the unit with the given code.
func (s *BusinessUnitService) Delete(ctx context.Context, code string) error {
	if err := s.units.Delete(ctx, code); err != nil {
		return err
	}
	s.logger.WithContext(ctx).Info("Business unit deleted", "code", code)
	return nil
}

// Types returns the unit type catalogue.
func (s *BusinessUnitService) Types(ctx context.Context) ([]entity.CatalogEntry, error) {
	return s.units.Types(ctx)
}

// Statuses returns the unit status catalogue.
func (s *BusinessUnitService) Statuses(ctx context.Context) ([]entity.CatalogEntry, error) {
	return s.units.Statuses(ctx)
}
