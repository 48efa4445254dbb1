package rules

import "math"

// logRule is the rule for y = log(x), the natural logarithm.
//
// Tangent: d(log(x))/dx = 1/x, so ty = tx / x.
//
// Non-positive x produces NaN or -Inf, which the caller's finiteness check
// reports as an instability.
func logRule(_ float64, tangents, values []float64) (float64, float64) {
	return math.Log(values[0]), tangents[0] / values[0]
}
