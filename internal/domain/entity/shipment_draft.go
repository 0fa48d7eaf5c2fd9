package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/hapkiduki/shipping-console/internal/domain/valueobject"
)

// ServiceType is the shipping service level requested for a shipment.
type ServiceType string

const (
	ServiceTypeStandard ServiceType = "standard"
	ServiceTypeExpress  ServiceType = "express"
	ServiceTypePriority ServiceType = "priority"
)

// IsValid reports whether s is one of the supported service levels.
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTypeStandard, ServiceTypeExpress, ServiceTypePriority:
		return true
	}
	return false
}

// ShipmentDraft is a shipment being composed in the console. It is owned by
// the session that started it and is discarded on submit or cancel.
type ShipmentDraft struct {
	ID uuid.UUID `json:"id"`

	// OwnerToken is the session token of the user who started the draft.
	OwnerToken string `json:"-"`

	Reference        string              `json:"reference"`
	Service          ServiceType         `json:"service"`
	Pieces           PieceCollection     `json:"pieces"`
	SenderAddress    valueobject.Address `json:"sender_address"`
	RecipientAddress valueobject.Address `json:"recipient_address"`
	Instructions     string              `json:"instructions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewShipmentDraft starts an empty standard-service draft for owner.
//
// Parameters:
//   - owner: session token of the user starting the draft (required)
//   - opts: options applied to the piece collection
//
// Returns:
//   - *ShipmentDraft: the new draft
//   - error: ErrEmptyOwner if owner is empty
func NewShipmentDraft(owner string, opts ...CollectionOption) (*ShipmentDraft, error) {
	if owner == "" {
		return nil, ErrEmptyOwner
	}

	now := time.Now().UTC()
	return &ShipmentDraft{
		ID:         uuid.New(),
		OwnerToken: owner,
		Service:    ServiceTypeStandard,
		Pieces:     NewPieceCollection(opts...),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// DraftDetails carries a partial update of the non-piece draft fields.
type DraftDetails struct {
	Reference        *string
	Service          *ServiceType
	SenderAddress    *valueobject.Address
	RecipientAddress *valueobject.Address
	Instructions     *string
}

// ApplyDetails merges the given fields into the draft.
//
// Returns:
//   - error: ErrInvalidServiceType if the service level is unknown
func (d *ShipmentDraft) ApplyDetails(details DraftDetails) error {
	if details.Service != nil && !details.Service.IsValid() {
		return ErrInvalidServiceType
	}

	if details.Reference != nil {
		d.Reference = *details.Reference
	}
	if details.Service != nil {
		d.Service = *details.Service
	}
	if details.SenderAddress != nil {
		d.SenderAddress = details.SenderAddress.Normalize()
	}
	if details.RecipientAddress != nil {
		d.RecipientAddress = details.RecipientAddress.Normalize()
	}
	if details.Instructions != nil {
		d.Instructions = *details.Instructions
	}
	d.touch()
	return nil
}

// AddPiece appends a new empty piece and returns it.
func (d *ShipmentDraft) AddPiece() Piece {
	var piece Piece
	d.Pieces, piece = d.Pieces.Add()
	d.touch()
	return piece
}

// UpdatePiece merges u into the piece with the given id.
//
// Returns:
//   - bool: false if no piece has that id (the draft is left unchanged)
func (d *ShipmentDraft) UpdatePiece(id string, u PieceUpdate) bool {
	return d.replacePieces(d.Pieces.Update(id, u))
}

// RemovePiece removes the piece with the given id.
//
// Returns:
//   - bool: false if no piece has that id (the draft is left unchanged)
func (d *ShipmentDraft) RemovePiece(id string) bool {
	return d.replacePieces(d.Pieces.Remove(id))
}

// Weights aggregates the current pieces of the draft.
func (d *ShipmentDraft) Weights() WeightCalculation {
	return d.Pieces.Weights()
}

// Submission builds the payload handed to the shipment-creation collaborator.
func (d *ShipmentDraft) Submission() ShipmentSubmission {
	return ShipmentSubmission{
		Reference:        d.Reference,
		Service:          d.Service,
		Pieces:           d.Pieces.Pieces(),
		SenderAddress:    d.SenderAddress,
		RecipientAddress: d.RecipientAddress,
		Instructions:     d.Instructions,
	}
}

// IsOwnedBy reports whether the draft belongs to the given session token.
func (d *ShipmentDraft) IsOwnedBy(token string) bool {
	return token != "" && d.OwnerToken == token
}

// Clone returns a copy that can be handed out without exposing the stored draft.
// The piece collection is copy-on-write, so sharing it is safe.
func (d *ShipmentDraft) Clone() *ShipmentDraft {
	c := *d
	return &c
}

func (d *ShipmentDraft) replacePieces(next PieceCollection) bool {
	if next.Version() == d.Pieces.Version() {
		return false
	}
	d.Pieces = next
	d.touch()
	return true
}

func (d *ShipmentDraft) touch() {
	d.UpdatedAt = time.Now().UTC()
}

// ShipmentSubmission is the payload handed over when a draft is submitted.
type ShipmentSubmission struct {
	Reference        string              `json:"reference"`
	Service          ServiceType         `json:"service" validate:"required,oneof=standard express priority"`
	Pieces           []Piece             `json:"pieces" validate:"min=1,dive"`
	SenderAddress    valueobject.Address `json:"sender_address"`
	RecipientAddress valueobject.Address `json:"recipient_address"`
	Instructions     string              `json:"instructions"`
}
