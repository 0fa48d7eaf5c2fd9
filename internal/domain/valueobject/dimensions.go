// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
package valueobject

import "fmt"

// DimensionalFactor is the divisor that converts a volume in cubic centimeters
// into an equivalent weight in kilograms. It is a system-wide constant.
const DimensionalFactor = 166.0

// ComputeDimensionalWeight converts linear dimensions (cm) into a dimensional
// weight (kg) using DimensionalFactor.
//
// Inputs are not validated: callers must reject negative values upstream.
//
// Parameters:
//   - length: Length in centimeters
//   - width: Width in centimeters
//   - height: Height in centimeters
//
// Returns:
//   - float64: dimensional weight in kg
func ComputeDimensionalWeight(length, width, height float64) float64 {
	return (length * width * height) / DimensionalFactor
}

// Dimensions represents the physical dimensions of a piece.
// All measurements are in centimeters.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewDimensions creates a new Dimensions value object.
func NewDimensions(length, width, height float64) Dimensions {
	return Dimensions{
		Length: length,
		Width:  width,
		Height: height,
	}
}

// Volume calculates the volume in cubic centimeters.
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// DimensionalWeight returns the dimensional weight of these dimensions.
func (d Dimensions) DimensionalWeight() float64 {
	return ComputeDimensionalWeight(d.Length, d.Width, d.Height)
}

// IsComplete reports whether all three dimensions are non-zero.
func (d Dimensions) IsComplete() bool {
	return d.Length != 0 && d.Width != 0 && d.Height != 0
}

// IsEmpty checks if all dimensions are zero.
func (d Dimensions) IsEmpty() bool {
	return d.Length == 0 && d.Width == 0 && d.Height == 0
}

// String returns a formatted string representation (e.g., "30.0x20.0x10.0 cm").
func (d Dimensions) String() string {
	return fmt.Sprintf("%.1fx%.1fx%.1f cm", d.Length, d.Width, d.Height)
}
