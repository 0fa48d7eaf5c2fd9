package repository

import (
	"context"
	"time"

	"github.com/hapkiduki/shipping-console/internal/domain/entity"
)

// BusinessUnitFilter contains criteria for searching business units.
type BusinessUnitFilter struct {
	// Search matches name, code or email, case-insensitively.
	Search string

	// Type filters by exact unit type.
	Type string

	// Status filters by exact status.
	Status entity.BusinessUnitStatus

	// CreatedFrom and CreatedTo bound the creation time (inclusive).
	CreatedFrom *time.Time
	CreatedTo   *time.Time

	// Page is 1-based.
	Page int

	// PageSize is the maximum number of units per page.
	PageSize int
}

// BusinessUnitRepository defines persistence operations for business units.
type BusinessUnitRepository interface {
	// Search returns one page of matching units, in creation order, and the
	// total number of matches.
	Search(ctx context.Context, filter BusinessUnitFilter) ([]*entity.BusinessUnit, int64, error)

	// GetByCode retrieves a unit by code.
	//
	// Returns:
	//   - error: ErrBusinessUnitNotFound if the unit doesn't exist
	GetByCode(ctx context.Context, code string) (*entity.BusinessUnit, error)

	// Create assigns the next code to unit and stores it.
	Create(ctx context.Context, unit *entity.BusinessUnit) error

	// Delete removes a unit by code.
	//
	// Returns:
	//   - error: ErrBusinessUnitNotFound if the unit doesn't exist
	Delete(ctx context.Context, code string) error

	// Types and Statuses return the select-list catalogues.
	Types(ctx context.Context) ([]entity.CatalogEntry, error)
	Statuses(ctx context.Context) ([]entity.CatalogEntry, error)

	// Count returns the number of stored units.
	Count(ctx context.Context) (int64, error)
}
