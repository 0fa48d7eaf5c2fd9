// Package entity contains the core business entities of the domain layer.
package entity

import (
	"fmt"
	"math"

	"github.com/hapkiduki/shipping-console/internal/domain/valueobject"
)

// Piece represents one physical package within a shipment.
// Weights are in kilograms and dimensions in centimeters.
type Piece struct {
	// ID is assigned at creation and never changes.
	ID string `json:"id"`

	PhysicalWeight float64 `json:"physical_weight" validate:"gte=0"`
	Length         float64 `json:"length" validate:"gte=0"`
	Width          float64 `json:"width" validate:"gte=0"`
	Height         float64 `json:"height" validate:"gte=0"`
	Description    string  `json:"description"`

	// DimensionalWeight is nil until all three dimensions have been set.
	DimensionalWeight *float64 `json:"dimensional_weight,omitempty"`
}

// Dimensions returns the piece dimensions as a value object.
func (p Piece) Dimensions() valueobject.Dimensions {
	return valueobject.NewDimensions(p.Length, p.Width, p.Height)
}

// HasDimensionalWeight reports whether a dimensional weight has been computed.
func (p Piece) HasDimensionalWeight() bool {
	return p.DimensionalWeight != nil
}

// DimensionalWeightOrZero returns the dimensional weight, or 0 when absent.
func (p Piece) DimensionalWeightOrZero() float64 {
	if p.DimensionalWeight == nil {
		return 0
	}
	return *p.DimensionalWeight
}

// ChargeableWeight is the greater of the physical and dimensional weight of
// this single piece. It annotates the piece for display and does not feed
// into the aggregate, which compares totals instead.
func (p Piece) ChargeableWeight() float64 {
	return math.Max(p.PhysicalWeight, p.DimensionalWeightOrZero())
}

// clone returns a deep copy so that collections never share the
// DimensionalWeight pointer.
func (p Piece) clone() Piece {
	if p.DimensionalWeight != nil {
		dw := *p.DimensionalWeight
		p.DimensionalWeight = &dw
	}
	return p
}

// PieceUpdate carries a partial set of piece fields. Nil fields are left
// untouched by the merge.
type PieceUpdate struct {
	PhysicalWeight *float64
	Length         *float64
	Width          *float64
	Height         *float64
	Description    *string
}

// TouchesDimensions reports whether the update sets length, width or height.
func (u PieceUpdate) TouchesDimensions() bool {
	return u.Length != nil || u.Width != nil || u.Height != nil
}

// IsEmpty reports whether the update sets no field at all.
func (u PieceUpdate) IsEmpty() bool {
	return !u.TouchesDimensions() && u.PhysicalWeight == nil && u.Description == nil
}

// DimensionPolicy decides what happens to a piece's dimensional weight when a
// dimension-touching update leaves at least one dimension at zero.
type DimensionPolicy string

const (
	// DimensionPolicyRetain keeps the previously computed dimensional weight.
	DimensionPolicyRetain DimensionPolicy = "retain"

	// DimensionPolicyClear drops the dimensional weight so it can never
	// disagree with the current dimensions.
	DimensionPolicyClear DimensionPolicy = "clear"
)

// ParseDimensionPolicy parses a policy name. The empty string selects
// DimensionPolicyRetain.
func ParseDimensionPolicy(s string) (DimensionPolicy, error) {
	switch DimensionPolicy(s) {
	case "", DimensionPolicyRetain:
		return DimensionPolicyRetain, nil
	case DimensionPolicyClear:
		return DimensionPolicyClear, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDimensionPolicy, s)
	}
}

// merge applies u to a copy of p and recomputes the dimensional weight when
// the update touches a dimension.
func (p Piece) merge(u PieceUpdate, policy DimensionPolicy) Piece {
	next := p.clone()

	if u.PhysicalWeight != nil {
		next.PhysicalWeight = *u.PhysicalWeight
	}
	if u.Description != nil {
		next.Description = *u.Description
	}
	if u.Length != nil {
		next.Length = *u.Length
	}
	if u.Width != nil {
		next.Width = *u.Width
	}
	if u.Height != nil {
		next.Height = *u.Height
	}

	if !u.TouchesDimensions() {
		return next
	}

	dims := next.Dimensions()
	switch {
	case dims.IsComplete():
		dw := dims.DimensionalWeight()
		next.DimensionalWeight = &dw
	case policy == DimensionPolicyClear:
		next.DimensionalWeight = nil
	}
	return next
}
