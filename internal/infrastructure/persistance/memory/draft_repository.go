// Package memory provides in-memory implementations of repository interfaces.
// Every repository owns its own storage, so independent instances never
// share state.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/internal/domain/repository"
)

// DraftRepository is a map-backed repository.DraftRepository.
type DraftRepository struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]*entity.ShipmentDraft
}

// NewDraftRepository creates an empty draft store.
func NewDraftRepository() *DraftRepository {
	return &DraftRepository{
		drafts: make(map[uuid.UUID]*entity.ShipmentDraft),
	}
}

var _ repository.DraftRepository = (*DraftRepository)(nil)

func (r *DraftRepository) Create(ctx context.Context, draft *entity.ShipmentDraft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if draft == nil {
		return repository.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drafts[draft.ID]; exists {
		return repository.ErrDuplicateID
	}
	r.drafts[draft.ID] = draft.Clone()
	return nil
}

func (r *DraftRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ShipmentDraft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, ok := r.drafts[id]
	if !ok {
		return nil, repository.ErrDraftNotFound
	}
	return draft.Clone(), nil
}

func (r *DraftRepository) Update(ctx context.Context, id uuid.UUID, fn repository.DraftMutator) (*entity.ShipmentDraft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.drafts[id]
	if !ok {
		return nil, repository.ErrDraftNotFound
	}

	// fn works on a copy so a failed mutation leaves the stored draft intact.
	working := stored.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	r.drafts[id] = working
	return working.Clone(), nil
}

func (r *DraftRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.ShipmentDraft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	draft, ok := r.drafts[id]
	if !ok {
		return nil, repository.ErrDraftNotFound
	}
	delete(r.drafts, id)
	return draft, nil
}

func (r *DraftRepository) DeleteByOwner(ctx context.Context, owner string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, draft := range r.drafts {
		if draft.IsOwnedBy(owner) {
			delete(r.drafts, id)
			removed++
		}
	}
	return removed, nil
}

func (r *DraftRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.drafts)), nil
}
