package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/internal/domain/repository"
)

// BusinessUnitRepository is a slice-backed repository.BusinessUnitRepository.
// Codes come from a monotonic sequence and are never reused after a delete.
type BusinessUnitRepository struct {
	mu       sync.RWMutex
	units    []entity.BusinessUnit
	sequence int
	types    []entity.CatalogEntry
	statuses []entity.CatalogEntry
}

// NewBusinessUnitRepository creates a store holding the given units. The
// code sequence continues after the number of seed units.
func NewBusinessUnitRepository(seed []entity.BusinessUnit, types, statuses []entity.CatalogEntry) *BusinessUnitRepository {
	return &BusinessUnitRepository{
		units:    append([]entity.BusinessUnit(nil), seed...),
		sequence: len(seed),
		types:    append([]entity.CatalogEntry(nil), types...),
		statuses: append([]entity.CatalogEntry(nil), statuses...),
	}
}

var _ repository.BusinessUnitRepository = (*BusinessUnitRepository)(nil)

func (r *BusinessUnitRepository) Search(ctx context.Context, filter repository.BusinessUnitFilter) ([]*entity.BusinessUnit, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*entity.BusinessUnit, 0, len(r.units))
	for i := range r.units {
		unit := r.units[i]
		if !matchesFilter(&unit, filter) {
			continue
		}
		matches = append(matches, &unit)
	}

	total := int64(len(matches))
	start, end := pageBounds(len(matches), filter.Page, filter.PageSize)
	return matches[start:end], total, nil
}

func (r *BusinessUnitRepository) GetByCode(ctx context.Context, code string) (*entity.BusinessUnit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, unit := range r.units {
		if unit.Code == code {
			return &unit, nil
		}
	}
	return nil, repository.ErrBusinessUnitNotFound
}

func (r *BusinessUnitRepository) Create(ctx context.Context, unit *entity.BusinessUnit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if unit == nil {
		return repository.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sequence++
	unit.Code = fmt.Sprintf("BU%03d", r.sequence)
	r.units = append(r.units, *unit)
	return nil
}

func (r *BusinessUnitRepository) Delete(ctx context.Context, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, unit := range r.units {
		if unit.Code == code {
			r.units = append(r.units[:i:i], r.units[i+1:]...)
			return nil
		}
	}
	return repository.ErrBusinessUnitNotFound
}

func (r *BusinessUnitRepository) Types(ctx context.Context) ([]entity.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]entity.CatalogEntry(nil), r.types...), nil
}

func (r *BusinessUnitRepository) Statuses(ctx context.Context) ([]entity.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]entity.CatalogEntry(nil), r.statuses...), nil
}

func (r *BusinessUnitRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.units)), nil
}

func matchesFilter(unit *entity.BusinessUnit, f repository.BusinessUnitFilter) bool {
	if !unit.Matches(f.Search) {
		return false
	}
	if f.Type != "" && unit.Type != f.Type {
		return false
	}
	if f.Status != "" && unit.Status != f.Status {
		return false
	}
	if f.CreatedFrom != nil && unit.CreatedAt.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedTo != nil && unit.CreatedAt.After(*f.CreatedTo) {
		return false
	}
	return true
}

// pageBounds converts a 1-based page into slice bounds clamped to n.
// A non-positive page size returns everything.
func pageBounds(n, page, pageSize int) (int, int) {
	if pageSize <= 0 {
		return 0, n
	}
	if page < 1 {
		page = 1
	}
	// Compare before multiplying so a huge page cannot overflow.
	if page-1 > n/pageSize {
		return n, n
	}
	start := (page - 1) * pageSize
	if start > n {
		return n, n
	}
	end := start + pageSize
	if end > n {
		end = n
	}
	return start, end
}
