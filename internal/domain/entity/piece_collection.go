package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

// IDGenerator produces piece identifiers.
type IDGenerator func() string

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}

// maxIDAttempts bounds how often Add asks the generator for a fresh id
// before falling back to NewUUID.
const maxIDAttempts = 8

// CollectionOption configures a PieceCollection.
type CollectionOption func(*PieceCollection)

// WithIDGenerator sets the generator used by Add.
func WithIDGenerator(gen IDGenerator) CollectionOption {
	return func(c *PieceCollection) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// WithDimensionPolicy sets the policy applied by Update.
func WithDimensionPolicy(policy DimensionPolicy) CollectionOption {
	return func(c *PieceCollection) {
		if policy != "" {
			c.policy = policy
		}
	}
}

// PieceCollection is the ordered list of pieces of one shipment draft.
//
// It is copy-on-write: Add, Update and Remove never modify the receiver and
// return a new collection instead. Every effective change bumps Version, so
// callers can detect a change by comparing versions. A no-op returns the
// receiver as is.
//
// Example usage:
//
//	pieces := entity.NewPieceCollection()
//	pieces, piece := pieces.Add()
//	pieces = pieces.Update(piece.ID, entity.PieceUpdate{Length: &l})
//	totals := pieces.Weights()
type PieceCollection struct {
	pieces  []Piece
	version uint64
	newID   IDGenerator
	policy  DimensionPolicy

	// retired holds the ids of removed pieces. It is never mutated once
	// shared; Remove hands the next collection a fresh copy.
	retired map[string]struct{}
}

// NewPieceCollection creates an empty collection.
func NewPieceCollection(opts ...CollectionOption) PieceCollection {
	c := PieceCollection{
		newID:  NewUUID,
		policy: DimensionPolicyRetain,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Add appends a new zero-valued piece with a fresh id.
//
// Returns:
//   - PieceCollection: the collection including the new piece
//   - Piece: the piece that was added
func (c PieceCollection) Add() (PieceCollection, Piece) {
	piece := Piece{ID: c.nextID()}

	next := c.derive(len(c.pieces) + 1)
	next.pieces = append(next.pieces, c.pieces...)
	next.pieces = append(next.pieces, piece)
	return next, piece
}

// Update merges u into the piece with the given id. Unknown ids leave the
// collection unchanged.
//
// When u touches a dimension and all three resulting dimensions are non-zero,
// the dimensional weight is recomputed from the resulting length, width and
// height. Otherwise the collection's DimensionPolicy applies.
func (c PieceCollection) Update(id string, u PieceUpdate) PieceCollection {
	idx := c.indexOf(id)
	if idx < 0 {
		return c
	}

	next := c.derive(len(c.pieces))
	next.pieces = append(next.pieces, c.pieces...)
	next.pieces[idx] = c.pieces[idx].merge(u, c.Policy())
	return next
}

// Remove deletes the piece with the given id. Unknown ids leave the
// collection unchanged.
func (c PieceCollection) Remove(id string) PieceCollection {
	idx := c.indexOf(id)
	if idx < 0 {
		return c
	}

	next := c.derive(len(c.pieces) - 1)
	next.pieces = append(next.pieces, c.pieces[:idx]...)
	next.pieces = append(next.pieces, c.pieces[idx+1:]...)
	next.retired = make(map[string]struct{}, len(c.retired)+1)
	for old := range c.retired {
		next.retired[old] = struct{}{}
	}
	next.retired[id] = struct{}{}
	return next
}

// Find returns the piece with the given id.
func (c PieceCollection) Find(id string) (Piece, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		return Piece{}, false
	}
	return c.pieces[idx].clone(), true
}

// Pieces returns a copy of the pieces in insertion order.
func (c PieceCollection) Pieces() []Piece {
	out := make([]Piece, len(c.pieces))
	for i, p := range c.pieces {
		out[i] = p.clone()
	}
	return out
}

// Len returns the number of pieces.
func (c PieceCollection) Len() int {
	return len(c.pieces)
}

// Version increases by one on every effective change.
func (c PieceCollection) Version() uint64 {
	return c.version
}

// Policy returns the dimension policy applied by Update.
func (c PieceCollection) Policy() DimensionPolicy {
	if c.policy == "" {
		return DimensionPolicyRetain
	}
	return c.policy
}

// Weights aggregates the current pieces.
func (c PieceCollection) Weights() WeightCalculation {
	return Aggregate(c.pieces)
}

// MarshalJSON encodes the collection as a plain array of pieces.
func (c PieceCollection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Pieces())
}

func (c PieceCollection) derive(capacity int) PieceCollection {
	return PieceCollection{
		pieces:  make([]Piece, 0, capacity),
		version: c.version + 1,
		newID:   c.newID,
		policy:  c.policy,
		retired: c.retired,
	}
}

func (c PieceCollection) indexOf(id string) int {
	for i := range c.pieces {
		if c.pieces[i].ID == id {
			return i
		}
	}
	return -1
}

// issued reports whether id belongs to a current or a removed piece.
func (c PieceCollection) issued(id string) bool {
	if _, ok := c.retired[id]; ok {
		return true
	}
	return c.indexOf(id) >= 0
}

// nextID never hands out the id of a current or removed piece.
func (c PieceCollection) nextID() string {
	gen := c.newID
	if gen == nil {
		gen = NewUUID
	}
	for range maxIDAttempts {
		if id := gen(); id != "" && !c.issued(id) {
			return id
		}
	}
	return NewUUID()
}
