// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package transform exposes the source-rewrite evaluation strategy: a
// straight-line function given as a statement list is rewritten once into
// a tangent-propagating function, with every rule resolved at transform
// time.
//
// Example:
//
//	prog := transform.Program{
//	    Name:   "square",
//	    Params: []string{"x"},
//	    Body: []transform.Stmt{
//	        transform.Assign{LHS: "y", Op: rules.OpPow, Args: []transform.Operand{transform.Var("x"), transform.Lit(2)}},
//	        transform.Return{Var: "y"},
//	    },
//	}
//	fn, err := transform.Transform(rules.Builtin(), prog)
//	v, dv, err := fn.Call([]float64{3}, []float64{1}) // 9, 6
package transform

import (
	"github.com/tangent-ml/tangent/internal/rules"
	"github.com/tangent-ml/tangent/internal/transform"
)

// Program is the statement list of a straight-line function.
type Program = transform.Program

// Stmt is one statement of a straight-line function body.
type Stmt = transform.Stmt

// Assign binds a fresh variable to the result of an elementary operation.
type Assign = transform.Assign

// Return is the sole terminal statement.
type Return = transform.Return

// Branch is a conditional; Transform always rejects it.
type Branch = transform.Branch

// Operand is an Assign argument: a variable reference or a literal.
type Operand = transform.Operand

// Transformed is the rewritten, independently callable function.
type Transformed = transform.Transformed

// ErrUnsupportedExpression reports a statement the transformer cannot
// rewrite.
var ErrUnsupportedExpression = transform.ErrUnsupportedExpression

// Var references a parameter or a previously assigned variable.
func Var(name string) Operand {
	return transform.Var(name)
}

// Lit is a constant operand; its tangent is identically zero.
func Lit(v float64) Operand {
	return transform.Lit(v)
}

// Transform rewrites prog into a tangent-propagating function.
func Transform(reg *rules.Registry, prog Program) (*Transformed, error) {
	return transform.Transform(reg, prog)
}
