package rules

import "math"

// sinRule is the rule for y = sin(x).
//
// Tangent: d(sin(x))/dx = cos(x), so ty = cos(x) * tx.
func sinRule(_ float64, tangents, values []float64) (float64, float64) {
	return math.Sin(values[0]), math.Cos(values[0]) * tangents[0]
}
