package rules

import "math"

// sqrtRule is the rule for y = sqrt(x).
//
// Tangent: d(sqrt(x))/dx = 1/(2*sqrt(x)), so ty = tx / (2*y).
func sqrtRule(_ float64, tangents, values []float64) (float64, float64) {
	y := math.Sqrt(values[0])
	return y, tangents[0] / (2 * y)
}
