package entity

import "math"

// WeightCalculation summarizes the weights of a set of pieces. It is derived
// on demand and never stored.
type WeightCalculation struct {
	TotalPhysicalWeight    float64 `json:"total_physical_weight"`
	TotalDimensionalWeight float64 `json:"total_dimensional_weight"`
	ChargeableWeight       float64 `json:"chargeable_weight"`
}

// Aggregate folds pieces into their total physical weight, total dimensional
// weight and chargeable weight. Pieces without a dimensional weight
// contribute 0 to the dimensional total.
func Aggregate(pieces []Piece) WeightCalculation {
	var calc WeightCalculation
	for _, p := range pieces {
		calc.TotalPhysicalWeight += p.PhysicalWeight
		calc.TotalDimensionalWeight += p.DimensionalWeightOrZero()
	}
	calc.ChargeableWeight = math.Max(calc.TotalPhysicalWeight, calc.TotalDimensionalWeight)
	return calc
}
