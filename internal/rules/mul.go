package rules

// mulRule is the rule for y = a * b.
//
// Tangent (product rule): ty = ta*b + a*tb.
func mulRule(_ float64, tangents, values []float64) (float64, float64) {
	a, b := values[0], values[1]
	return a * b, tangents[0]*b + a*tangents[1]
}
