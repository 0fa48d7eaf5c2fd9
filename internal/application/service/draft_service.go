package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/internal/domain/repository"
	"github.com/hapkiduki/shipping-console/pkg/validation"
)

// SubmitResult is returned when a draft has been handed to the
// shipment-creation backend.
type SubmitResult struct {
	ConfirmationID string
	AcceptedAt     time.Time
	Submission     entity.ShipmentSubmission
	Weights        entity.WeightCalculation
}

// DraftService implements the shipment draft use cases. Every operation is
// scoped to the session token of the caller: drafts owned by another session
// are reported as repository.ErrDraftNotFound.
type DraftService struct {
	drafts    repository.DraftRepository
	submitter port.ShipmentSubmitter
	validator *validation.Validator
	metrics   port.Metrics
	logger    port.Logger

	collectionOpts []entity.CollectionOption
}

// DraftServiceOption configures a DraftService.
type DraftServiceOption func(*DraftService)

// WithDimensionPolicy sets the policy applied to the pieces of new drafts.
func WithDimensionPolicy(policy entity.DimensionPolicy) DraftServiceOption {
	return func(s *DraftService) {
		s.collectionOpts = append(s.collectionOpts, entity.WithDimensionPolicy(policy))
	}
}

// WithPieceIDGenerator sets the piece ID generator of new drafts.
func WithPieceIDGenerator(gen entity.IDGenerator) DraftServiceOption {
	return func(s *DraftService) {
		s.collectionOpts = append(s.collectionOpts, entity.WithIDGenerator(gen))
	}
}

// NewDraftService creates a DraftService.
func NewDraftService(
	drafts repository.DraftRepository,
	submitter port.ShipmentSubmitter,
	validator *validation.Validator,
	metrics port.Metrics,
	logger port.Logger,
	opts ...DraftServiceOption,
) *DraftService {
	s := &DraftService{
		drafts:    drafts,
		submitter: submitter,
		validator: validator,
		metrics:   metrics,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartDraft creates an empty standard-service draft owned by owner.
func (s *DraftService) StartDraft(ctx context.Context, owner string) (*entity.ShipmentDraft, error) {
	draft, err := entity.NewShipmentDraft(owner, s.collectionOpts...)
	if err != nil {
		return nil, err
	}
	if err := s.drafts.Create(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}

	s.metrics.RecordDraftStarted()
	s.logger.WithContext(ctx).Info("Shipment draft started", "draft_id", draft.ID)
	return draft.Clone(), nil
}

// GetDraft returns the draft.
func (s *DraftService) GetDraft(ctx context.Context, owner string, id uuid.UUID) (*entity.ShipmentDraft, error) {
	draft, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !draft.IsOwnedBy(owner) {
		return nil, repository.ErrDraftNotFound
	}
	return draft, nil
}

// UpdateDetails merges the non-piece fields of the draft.
func (s *DraftService) UpdateDetails(ctx context.Context, owner string, id uuid.UUID, details entity.DraftDetails) (*entity.ShipmentDraft, error) {
	return s.update(ctx, owner, id, func(d *entity.ShipmentDraft) error {
		return d.ApplyDetails(details)
	})
}

// AddPiece appends an empty piece and returns the draft and the new piece.
func (s *DraftService) AddPiece(ctx context.Context, owner string, id uuid.UUID) (*entity.ShipmentDraft, entity.Piece, error) {
	var piece entity.Piece
	draft, err := s.update(ctx, owner, id, func(d *entity.ShipmentDraft) error {
		piece = d.AddPiece()
		return nil
	})
	if err != nil {
		return nil, entity.Piece{}, err
	}

	s.metrics.RecordPieceMutation(port.PieceOperationAdd)
	s.logger.WithContext(ctx).Debug("Piece added", "draft_id", id, "piece_id", piece.ID)
	return draft, piece, nil
}

// UpdatePiece merges u into a piece. An unknown piece id leaves the draft
// unchanged and is not an error.
func (s *DraftService) UpdatePiece(ctx context.Context, owner string, id uuid.UUID, pieceID string, u entity.PieceUpdate) (*entity.ShipmentDraft, error) {
	var changed bool
	draft, err := s.update(ctx, owner, id, func(d *entity.ShipmentDraft) error {
		changed = d.UpdatePiece(pieceID, u)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordPieceMutation(ctx, port.PieceOperationUpdate, changed, id, pieceID)
	return draft, nil
}

// RemovePiece removes a piece. An unknown piece id leaves the draft
// unchanged and is not an error.
func (s *DraftService) RemovePiece(ctx context.Context, owner string, id uuid.UUID, pieceID string) (*entity.ShipmentDraft, error) {
	var changed bool
	draft, err := s.update(ctx, owner, id, func(d *entity.ShipmentDraft) error {
		changed = d.RemovePiece(pieceID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordPieceMutation(ctx, port.PieceOperationRemove, changed, id, pieceID)
	return draft, nil
}

// Weights aggregates the current pieces of the draft.
func (s *DraftService) Weights(ctx context.Context, owner string, id uuid.UUID) (entity.WeightCalculation, error) {
	draft, err := s.GetDraft(ctx, owner, id)
	if err != nil {
		return entity.WeightCalculation{}, err
	}
	return draft.Weights(), nil
}

// Submit validates the draft, hands its payload to the shipment-creation
// backend and discards it. The draft is kept when validation or the
// backend fails.
//
// Returns:
//   - *SubmitResult: confirmation, payload and weights at submit time
//   - error: *validation.Error, ErrDraftNotFound, or the backend error
func (s *DraftService) Submit(ctx context.Context, owner string, id uuid.UUID) (*SubmitResult, error) {
	draft, err := s.GetDraft(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(draft.Submission()); err != nil {
		return nil, err
	}

	// Taking the draft out of the store makes concurrent submits of the
	// same draft fail with ErrDraftNotFound.
	draft, err = s.drafts.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	submission := draft.Submission()
	if err := s.validator.Struct(submission); err != nil {
		s.restore(ctx, draft)
		return nil, err
	}

	receipt, err := s.submitter.Submit(ctx, submission)
	if err != nil {
		s.restore(ctx, draft)
		s.logger.WithContext(ctx).Error("Shipment submission failed", "draft_id", id, "error", err)
		return nil, fmt.Errorf("failed to submit shipment: %w", err)
	}

	weights := draft.Weights()
	s.metrics.RecordShipmentSubmitted(draft.Service, weights.ChargeableWeight)
	s.logger.WithContext(ctx).Info("Shipment submitted",
		"draft_id", id,
		"confirmation_id", receipt.ConfirmationID,
		"pieces", len(submission.Pieces),
		"chargeable_weight", weights.ChargeableWeight,
	)

	return &SubmitResult{
		ConfirmationID: receipt.ConfirmationID,
		AcceptedAt:     receipt.AcceptedAt,
		Submission:     submission,
		Weights:        weights,
	}, nil
}

// Cancel discards the draft.
func (s *DraftService) Cancel(ctx context.Context, owner string, id uuid.UUID) error {
	if _, err := s.GetDraft(ctx, owner, id); err != nil {
		return err
	}
	if _, err := s.drafts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithContext(ctx).Info("Shipment draft cancelled", "draft_id", id)
	return nil
}

func (s *DraftService) update(ctx context.Context, owner string, id uuid.UUID, fn func(*entity.ShipmentDraft) error) (*entity.ShipmentDraft, error) {
	return s.drafts.Update(ctx, id, func(d *entity.ShipmentDraft) error {
		if !d.IsOwnedBy(owner) {
			return repository.ErrDraftNotFound
		}
		return fn(d)
	})
}

func (s *DraftService) recordPieceMutation(ctx context.Context, op port.PieceOperation, changed bool, id uuid.UUID, pieceID string) {
	if !changed {
		s.metrics.RecordPieceMutation(port.PieceOperationNoop)
		s.logger.WithContext(ctx).Debug("Piece not found, draft unchanged", "draft_id", id, "piece_id", pieceID, "operation", op)
		return
	}
	s.metrics.RecordPieceMutation(op)
	s.logger.WithContext(ctx).Debug("Piece changed", "draft_id", id, "piece_id", pieceID, "operation", op)
}

func (s *DraftService) restore(ctx context.Context, draft *entity.ShipmentDraft) {
	// The caller's ctx may already be cancelled; the draft must come back regardless.
	err := s.drafts.Create(context.WithoutCancel(ctx), draft)
	if err != nil && !errors.Is(err, repository.ErrDuplicateID) {
		s.logger.WithContext(ctx).Error("Failed to restore draft", "draft_id", draft.ID, "error", err)
	}
}
