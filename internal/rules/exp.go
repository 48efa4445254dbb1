package rules

import "math"

// expRule is the rule for y = exp(x).
//
// Tangent: d(exp(x))/dx = exp(x), so ty = y * tx.
func expRule(_ float64, tangents, values []float64) (float64, float64) {
	y := math.Exp(values[0])
	return y, y * tangents[0]
}
