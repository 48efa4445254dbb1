package rules

import "math"

// tanhRule is the rule for y = tanh(x).
//
// Tangent: d(tanh(x))/dx = 1 - tanh²(x), so ty = (1 - y²) * tx.
func tanhRule(_ float64, tangents, values []float64) (float64, float64) {
	y := math.Tanh(values[0])
	return y, (1 - y*y) * tangents[0]
}
