package rules

import "math"

// cosRule is the rule for y = cos(x).
//
// Tangent: d(cos(x))/dx = -sin(x), so ty = -sin(x) * tx.
func cosRule(_ float64, tangents, values []float64) (float64, float64) {
	return math.Cos(values[0]), -math.Sin(values[0]) * tangents[0]
}
