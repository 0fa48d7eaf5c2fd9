package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDimensionalWeight(t *testing.T) {
	tests := []struct {
		name                  string
		length, width, height float64
		want                  float64
	}{
		{"divisor only", 166, 1, 1, 1},
		{"reference box", 10, 20, 83, 100},
		{"fractional", 30, 20, 10, 6000.0 / 166.0},
		{"zero length", 0, 50, 50, 0},
		{"zero height", 50, 50, 0, 0},
		{"all zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDimensionalWeight(tt.length, tt.width, tt.height)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.InDelta(t, tt.length*tt.width*tt.height/166, got, 1e-9)
		})
	}
}

func TestComputeDimensionalWeight_NegativePropagates(t *testing.T) {
	assert.InDelta(t, -1.0, ComputeDimensionalWeight(-166, 1, 1), 1e-9)
}

func TestDimensions(t *testing.T) {
	d := NewDimensions(10, 20, 83)

	assert.Equal(t, 16600.0, d.Volume())
	assert.InDelta(t, 100.0, d.DimensionalWeight(), 1e-9)
	assert.True(t, d.IsComplete())
	assert.False(t, d.IsEmpty())
	assert.Equal(t, "10.0x20.0x83.0 cm", d.String())

	partial := NewDimensions(10, 0, 0)
	assert.False(t, partial.IsComplete())
	assert.False(t, partial.IsEmpty())

	assert.True(t, Dimensions{}.IsEmpty())
}

func TestAddress(t *testing.T) {
	a := Address{Name: "  Jane ", City: " Bogotá", Country: "CO "}.Normalize()

	assert.Equal(t, "Jane", a.Name)
	assert.Equal(t, "Bogotá, CO", a.Summary())
	assert.False(t, a.IsEmpty())
	assert.True(t, Address{}.IsEmpty())
	assert.Equal(t, "", Address{}.Summary())
}
