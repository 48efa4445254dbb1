// Package dual implements the dual-number representation used by
// forward-mode automatic differentiation.
//
// A Dual carries a primal value together with its tangent: the derivative
// of the value with respect to whichever single input direction was seeded
// with tangent 1 for the current pass. Propagating duals through elementary
// operations computes a directional derivative in the same order as the
// original computation, one input direction per pass.
package dual

import (
	"errors"
	"math"
)

// ErrNumericalInstability reports a non-finite value or tangent produced
// during evaluation. Both evaluation strategies check every rule
// application for it, so NaN and Inf surface as failures instead of
// flowing into later computation as poisoned data.
var ErrNumericalInstability = errors.New("numerical instability: non-finite value or tangent")

// Dual is an immutable (value, tangent) pair. Duals carry no identity
// beyond their two numbers; they are produced only by rule application or
// by explicit seeding.
type Dual struct {
	Value   float64
	Tangent float64
}

// New returns a dual with the given value and tangent.
func New(value, tangent float64) Dual {
	return Dual{Value: value, Tangent: tangent}
}

// Const returns a dual holding a constant: tangent 0.
func Const(value float64) Dual {
	return Dual{Value: value}
}

// Seed returns a dual for the input being differentiated: tangent 1.
func Seed(value float64) Dual {
	return Dual{Value: value, Tangent: 1}
}

// IsFinite reports whether both components are finite.
func (d Dual) IsFinite() bool {
	return !math.IsNaN(d.Value) && !math.IsInf(d.Value, 0) &&
		!math.IsNaN(d.Tangent) && !math.IsInf(d.Tangent, 0)
}

// Seeds builds dual inputs for point with a one-hot seed at position i:
// input i gets tangent 1, every other input tangent 0. A negative i seeds
// nothing, which makes every tangent in the pass identically 0.
func Seeds(point []float64, i int) []Dual {
	out := make([]Dual, len(point))
	for j, v := range point {
		if j == i {
			out[j] = Seed(v)
		} else {
			out[j] = Const(v)
		}
	}
	return out
}
