// Package eval implements the operator-overloading evaluation strategy.
//
// A target function is written against *Machine, the numeric capability
// that stands in for plain arithmetic. Every elementary operation the
// function performs is dispatched at run time through the rule registry,
// which propagates a tangent alongside each value. One call evaluates the
// whole function once; a full gradient over n inputs therefore needs n
// seeded calls, one per input direction.
package eval

import (
	"errors"
	"fmt"

	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/rules"
)

// ErrIncompatibleSignature reports a target function whose declared type
// excludes dual operands.
var ErrIncompatibleSignature = errors.New("incompatible function signature")

// Machine dispatches elementary operations through a rule registry.
//
// The first dispatch failure latches: every later operation returns a zero
// dual and Evaluate reports the original error. Target function bodies
// stay plain expressions with no error plumbing.
type Machine struct {
	reg *rules.Registry
	err error
}

// NewMachine returns a machine dispatching through reg.
func NewMachine(reg *rules.Registry) *Machine {
	return &Machine{reg: reg}
}

// Err returns the first dispatch failure, if any.
func (m *Machine) Err() error {
	return m.err
}

// Apply dispatches op on args with a zero callee tangent, the stateless
// elementary case.
func (m *Machine) Apply(op rules.OpID, args ...dual.Dual) dual.Dual {
	return m.ApplyStateful(op, dual.Const(0), args...)
}

// ApplyStateful dispatches op on behalf of a parameterized callable: state
// carries the callable's own value and tangent, and the rule receives the
// state tangent as its callee tangent. Stateless elementary rules accept
// and ignore it.
func (m *Machine) ApplyStateful(op rules.OpID, state dual.Dual, args ...dual.Dual) dual.Dual {
	if m.err != nil {
		return dual.Dual{}
	}

	rule, err := m.reg.Lookup(op)
	if err != nil {
		m.err = err
		return dual.Dual{}
	}
	if len(args) != rule.Arity {
		m.err = fmt.Errorf("apply %q: got %d operands, rule has arity %d", op, len(args), rule.Arity)
		return dual.Dual{}
	}

	tangents := make([]float64, len(args))
	values := make([]float64, len(args))
	for i, a := range args {
		tangents[i] = a.Tangent
		values[i] = a.Value
	}

	v, tan := rule.Compute(state.Tangent, tangents, values)
	out := dual.New(v, tan)
	if !out.IsFinite() {
		m.err = fmt.Errorf("apply %q: %w", op, dual.ErrNumericalInstability)
		return dual.Dual{}
	}
	return out
}

// Convenience dispatchers for the builtin elementary set.

// Add returns a + b.
func (m *Machine) Add(a, b dual.Dual) dual.Dual { return m.Apply(rules.OpAdd, a, b) }

// Sub returns a - b.
func (m *Machine) Sub(a, b dual.Dual) dual.Dual { return m.Apply(rules.OpSub, a, b) }

// Mul returns a * b.
func (m *Machine) Mul(a, b dual.Dual) dual.Dual { return m.Apply(rules.OpMul, a, b) }

// Div returns a / b.
func (m *Machine) Div(a, b dual.Dual) dual.Dual { return m.Apply(rules.OpDiv, a, b) }

// Neg returns -a.
func (m *Machine) Neg(a dual.Dual) dual.Dual { return m.Apply(rules.OpNeg, a) }

// Pow returns a raised to the integer power k.
func (m *Machine) Pow(a dual.Dual, k int) dual.Dual {
	return m.Apply(rules.OpPow, a, dual.Const(float64(k)))
}

// Sin returns sin(a).
func (m *Machine) Sin(a dual.Dual) dual.Dual { return m.Apply(rules.OpSin, a) }

// Cos returns cos(a).
func (m *Machine) Cos(a dual.Dual) dual.Dual { return m.Apply(rules.OpCos, a) }

// Exp returns exp(a).
func (m *Machine) Exp(a dual.Dual) dual.Dual { return m.Apply(rules.OpExp, a) }

// Log returns log(a).
func (m *Machine) Log(a dual.Dual) dual.Dual { return m.Apply(rules.OpLog, a) }

// Sqrt returns sqrt(a).
func (m *Machine) Sqrt(a dual.Dual) dual.Dual { return m.Apply(rules.OpSqrt, a) }

// Tanh returns tanh(a).
func (m *Machine) Tanh(a dual.Dual) dual.Dual { return m.Apply(rules.OpTanh, a) }
