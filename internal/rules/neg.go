package rules

// negRule is the rule for y = -a.
//
// Tangent: d(-a)/da = -1, so ty = -ta.
func negRule(_ float64, tangents, values []float64) (float64, float64) {
	return -values[0], -tangents[0]
}
