package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hapkiduki/shipping-console/internal/application/service"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/hapkiduki/shipping-console/internal/domain/valueobject"
)

// FlexFloat is a lenient numeric input. It accepts a JSON number or a
// numeric string; anything that is not a finite, non-negative number
// decodes to 0.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = 0

	data = bytes.TrimSpace(data)
	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
	} else {
		raw = string(data)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

func (f *FlexFloat) float() *float64 {
	if f == nil {
		return nil
	}
	v := float64(*f)
	return &v
}

// UpdatePieceRequest is the body of PATCH .../pieces/{pieceID}. Absent
// fields are left unchanged.
type UpdatePieceRequest struct {
	PhysicalWeight *FlexFloat `json:"physical_weight"`
	Length         *FlexFloat `json:"length"`
	Width          *FlexFloat `json:"width"`
	Height         *FlexFloat `json:"height"`
	Description    *string    `json:"description"`
}

// Bind implements render.Binder.
func (req *UpdatePieceRequest) Bind(_ *http.Request) error {
	if req.Description != nil {
		d := strings.TrimSpace(*req.Description)
		req.Description = &d
	}
	return nil
}

// ToPieceUpdate converts the request into a domain update.
func (req *UpdatePieceRequest) ToPieceUpdate() entity.PieceUpdate {
	return entity.PieceUpdate{
		PhysicalWeight: req.PhysicalWeight.float(),
		Length:         req.Length.float(),
		Width:          req.Width.float(),
		Height:         req.Height.float(),
		Description:    req.Description,
	}
}

// UpdateDraftRequest is the body of PATCH .../drafts/{draftID}. Addresses
// may be partial while the draft is edited; they are validated on submit.
type UpdateDraftRequest struct {
	Reference        *string              `json:"reference"`
	Service          *string              `json:"service"`
	SenderAddress    *valueobject.Address `json:"sender_address" validate:"-"`
	RecipientAddress *valueobject.Address `json:"recipient_address" validate:"-"`
	Instructions     *string              `json:"instructions"`
}

// Bind implements render.Binder.
func (req *UpdateDraftRequest) Bind(_ *http.Request) error {
	if req.Reference != nil {
		ref := strings.TrimSpace(*req.Reference)
		req.Reference = &ref
	}
	return nil
}

// ToDraftDetails converts the request into a domain update.
func (req *UpdateDraftRequest) ToDraftDetails() entity.DraftDetails {
	details := entity.DraftDetails{
		Reference:        req.Reference,
		SenderAddress:    req.SenderAddress,
		RecipientAddress: req.RecipientAddress,
		Instructions:     req.Instructions,
	}
	if req.Service != nil {
		s := entity.ServiceType(strings.ToLower(strings.TrimSpace(*req.Service)))
		details.Service = &s
	}
	return details
}

// DraftResponse is a shipment draft with its current weights.
type DraftResponse struct {
	ID               uuid.UUID                `json:"id"`
	Reference        string                   `json:"reference"`
	Service          entity.ServiceType       `json:"service"`
	Pieces           []entity.Piece           `json:"pieces"`
	SenderAddress    valueobject.Address      `json:"sender_address"`
	RecipientAddress valueobject.Address      `json:"recipient_address"`
	Instructions     string                   `json:"instructions"`
	Weights          entity.WeightCalculation `json:"weights"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// ToDraftResponse converts a draft.
func ToDraftResponse(d *entity.ShipmentDraft) DraftResponse {
	return DraftResponse{
		ID:               d.ID,
		Reference:        d.Reference,
		Service:          d.Service,
		Pieces:           d.Pieces.Pieces(),
		SenderAddress:    d.SenderAddress,
		RecipientAddress: d.RecipientAddress,
		Instructions:     d.Instructions,
		Weights:          d.Weights(),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// AddPieceResponse returns the new piece and the draft holding it.
type AddPieceResponse struct {
	Piece entity.Piece  `json:"piece"`
	Draft DraftResponse `json:"draft"`
}

// SubmitResponse is returned when a draft has been submitted.
type SubmitResponse struct {
	ConfirmationID string                    `json:"confirmation_id"`
	AcceptedAt     time.Time                 `json:"accepted_at"`
	Shipment       entity.ShipmentSubmission `json:"shipment"`
	Weights        entity.WeightCalculation  `json:"weights"`
}

// ToSubmitResponse converts a submit result.
func ToSubmitResponse(r *service.SubmitResult) SubmitResponse {
	return SubmitResponse{
		ConfirmationID: r.ConfirmationID,
		AcceptedAt:     r.AcceptedAt,
		Shipment:       r.Submission,
		Weights:        r.Weights,
	}
}
