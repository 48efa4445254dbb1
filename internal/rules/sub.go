package rules

// subRule is the rule for y = a - b.
//
// Tangent: d(a-b)/da = 1 and d(a-b)/db = -1, so ty = ta - tb.
func subRule(_ float64, tangents, values []float64) (float64, float64) {
	return values[0] - values[1], tangents[0] - tangents[1]
}
