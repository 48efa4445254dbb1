package rules

import "math"

// powRule is the rule for y = x^k with k an integer exponent.
//
// The exponent is the second operand and is treated as a constant: its
// tangent is ignored and the derivative is taken with respect to the base
// only.
//
// Tangent (power rule): ty = k * x^(k-1) * tx.
func powRule(_ float64, tangents, values []float64) (float64, float64) {
	x, k := values[0], values[1]
	return math.Pow(x, k), k * math.Pow(x, k-1) * tangents[0]
}
