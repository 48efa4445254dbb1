// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual exposes the dual-number representation: an immutable
// (value, tangent) pair propagated through elementary operations by both
// evaluation strategies.
//
// Example:
//
//	x := dual.Seed(1.5)  // differentiate with respect to x
//	y := dual.Const(2.0) // held constant in this pass
package dual

import "github.com/tangent-ml/tangent/internal/dual"

// Dual is an immutable (value, tangent) pair.
type Dual = dual.Dual

// ErrNumericalInstability reports a non-finite value or tangent produced
// during evaluation.
var ErrNumericalInstability = dual.ErrNumericalInstability

// New returns a dual with the given value and tangent.
func New(value, tangent float64) Dual {
	return dual.New(value, tangent)
}

// Const returns a dual holding a constant: tangent 0.
func Const(value float64) Dual {
	return dual.Const(value)
}

// Seed returns a dual for the input being differentiated: tangent 1.
func Seed(value float64) Dual {
	return dual.Seed(value)
}

// Seeds builds dual inputs for point with a one-hot seed at position i.
func Seeds(point []float64, i int) []Dual {
	return dual.Seeds(point, i)
}
