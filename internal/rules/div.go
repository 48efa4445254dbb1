package rules

// divRule is the rule for y = a / b.
//
// Tangent (quotient rule): ty = (ta*b - a*tb) / b².
//
// Division by zero is not special-cased: the resulting Inf or NaN is
// reported by the caller's finiteness check, never masked here.
func divRule(_ float64, tangents, values []float64) (float64, float64) {
	a, b := values[0], values[1]
	return a / b, (tangents[0]*b - a*tangents[1]) / (b * b)
}
