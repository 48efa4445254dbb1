// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rules exposes the differentiation rule registry, the single
// source of truth both evaluation strategies dispatch through.
//
// Registering a rule is the only way to extend either strategy; neither
// the evaluator nor the transformer needs modification to support a new
// operation.
//
// Example:
//
//	reg := rules.Builtin()
//	err := reg.Register("cube", 1, func(_ float64, tangents, values []float64) (float64, float64) {
//	    x := values[0]
//	    return x * x * x, 3 * x * x * tangents[0]
//	})
package rules

import "github.com/tangent-ml/tangent/internal/rules"

// OpID identifies an elementary operation in the registry.
type OpID = rules.OpID

// Builtin operation identifiers.
const (
	OpAdd  = rules.OpAdd
	OpSub  = rules.OpSub
	OpMul  = rules.OpMul
	OpDiv  = rules.OpDiv
	OpNeg  = rules.OpNeg
	OpPow  = rules.OpPow
	OpSin  = rules.OpSin
	OpCos  = rules.OpCos
	OpExp  = rules.OpExp
	OpLog  = rules.OpLog
	OpSqrt = rules.OpSqrt
	OpTanh = rules.OpTanh
)

// Compute evaluates one application of a rule.
type Compute = rules.Compute

// Rule pairs an operation's arity with its derivative computation.
type Rule = rules.Rule

// Registry maps operation identifiers to differentiation rules, with a
// two-phase lifecycle: open for registration, then frozen for concurrent
// reads once evaluation begins.
type Registry = rules.Registry

// Registry errors.
var (
	ErrDuplicateRule        = rules.ErrDuplicateRule
	ErrFrozenRegistry       = rules.ErrFrozenRegistry
	ErrUnsupportedOperation = rules.ErrUnsupportedOperation
)

// NewRegistry returns an empty, open registry.
func NewRegistry() *Registry {
	return rules.NewRegistry()
}

// Builtin returns an open registry pre-populated with the elementary
// rule set.
func Builtin() *Registry {
	return rules.Builtin()
}

// RegisterBuiltins registers the elementary rule set into r.
func RegisterBuiltins(r *Registry) error {
	return rules.RegisterBuiltins(r)
}
