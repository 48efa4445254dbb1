// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package eval exposes the operator-overloading evaluation strategy.
//
// Target functions are written against *Machine, the numeric capability
// standing in for plain arithmetic, and every elementary operation is
// dispatched through the rule registry at run time.
//
// Example:
//
//	reg := rules.Builtin()
//	fn := func(m *eval.Machine, in []dual.Dual) dual.Dual {
//	    x, y := in[0], in[1]
//	    return m.Add(m.Pow(x, 2), m.Sin(m.Add(x, y)))
//	}
//	out, err := eval.Evaluate(reg, fn, dual.Seed(1), dual.Const(2))
//	// out.Tangent is df/dx at (1, 2)
package eval

import (
	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/eval"
	"github.com/tangent-ml/tangent/internal/rules"
)

// Machine dispatches elementary operations through a rule registry.
type Machine = eval.Machine

// Target is the canonical target function shape.
type Target = eval.Target

// Seeded is a target function bound to a registry, ready for repeated
// seeded evaluation by the gradient driver.
type Seeded = eval.Seeded

// ErrIncompatibleSignature reports a target function whose declared type
// excludes dual operands.
var ErrIncompatibleSignature = eval.ErrIncompatibleSignature

// NewMachine returns a machine dispatching through reg.
func NewMachine(reg *rules.Registry) *Machine {
	return eval.NewMachine(reg)
}

// Evaluate runs fn over inputs, dispatching every elementary operation
// through reg.
func Evaluate(reg *rules.Registry, fn any, inputs ...dual.Dual) (dual.Dual, error) {
	return eval.Evaluate(reg, fn, inputs...)
}

// Func binds fn to reg for repeated seeded evaluation.
func Func(reg *rules.Registry, fn any) (*Seeded, error) {
	return eval.Func(reg, fn)
}
