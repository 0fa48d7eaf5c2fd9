package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
)

// DraftMutator modifies a draft in place inside DraftRepository.Update.
// Returning an error discards the modification.
type DraftMutator func(draft *entity.ShipmentDraft) error

// DraftRepository stores shipment drafts while they are being composed.
//
// Example usage:
//
//	repo := memory.NewDraftRepository()
//	draft, err := repo.Update(ctx, id, func(d *entity.ShipmentDraft) error {
//		d.AddPiece()
//		return nil
//	})
type DraftRepository interface {
	// Create stores a new draft.
	//
	// Returns:
	//   - error: ErrDuplicateID if a draft with the same ID exists
	Create(ctx context.Context, draft *entity.ShipmentDraft) error

	// GetByID returns a copy of the draft.
	//
	// Returns:
	//   - error: ErrDraftNotFound if the draft doesn't exist
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ShipmentDraft, error)

	// Update applies fn to the stored draft atomically and returns a copy of
	// the result. Concurrent updates of the same draft are serialized.
	//
	// Returns:
	//   - error: ErrDraftNotFound, or the error returned by fn
	Update(ctx context.Context, id uuid.UUID, fn DraftMutator) (*entity.ShipmentDraft, error)

	// Delete removes the draft and returns its last state.
	//
	// Returns:
	//   - error: ErrDraftNotFound if the draft doesn't exist
	Delete(ctx context.Context, id uuid.UUID) (*entity.ShipmentDraft, error)

	// DeleteByOwner removes every draft owned by the session token.
	//
	// Returns:
	//   - int: number of drafts removed
	DeleteByOwner(ctx context.Context, owner string) (int, error)

	// Count returns the number of open drafts.
	Count(ctx context.Context) (int64, error)
}
