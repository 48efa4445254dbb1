package eval

import (
	"fmt"

	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/rules"
)

// Target is the canonical target function shape: a function of the numeric
// capability and its dual inputs.
type Target func(*Machine, []dual.Dual) dual.Dual

// Evaluate runs fn over inputs, dispatching every elementary operation it
// performs through reg, and returns the resulting dual.
//
// fn must be polymorphic over the numeric capability:
// func(*Machine, []dual.Dual) dual.Dual (or its variadic equivalent).
// Any other declared type excludes dual operands and fails with
// ErrIncompatibleSignature.
func Evaluate(reg *rules.Registry, fn any, inputs ...dual.Dual) (dual.Dual, error) {
	target, err := coerce(fn)
	if err != nil {
		return dual.Dual{}, err
	}
	return run(reg, target, inputs)
}

// Func binds fn to reg for repeated seeded evaluation. The returned Seeded
// satisfies the gradient driver's callable contract.
func Func(reg *rules.Registry, fn any) (*Seeded, error) {
	target, err := coerce(fn)
	if err != nil {
		return nil, err
	}
	return &Seeded{reg: reg, fn: target}, nil
}

// Seeded is a target function bound to a registry, callable with a point
// and explicit tangent seeds.
type Seeded struct {
	reg *rules.Registry
	fn  Target
}

// CallWithSeed evaluates the bound function at point with the given
// tangent seeds.
func (s *Seeded) CallWithSeed(point, seed []float64) (dual.Dual, error) {
	if len(seed) != len(point) {
		return dual.Dual{}, fmt.Errorf("call: got %d seeds for %d inputs", len(seed), len(point))
	}
	inputs := make([]dual.Dual, len(point))
	for i := range point {
		inputs[i] = dual.New(point[i], seed[i])
	}
	return run(s.reg, s.fn, inputs)
}

func run(reg *rules.Registry, target Target, inputs []dual.Dual) (dual.Dual, error) {
	m := NewMachine(reg)
	out := target(m, inputs)
	if m.err != nil {
		return dual.Dual{}, m.err
	}
	if !out.IsFinite() {
		return dual.Dual{}, dual.ErrNumericalInstability
	}
	return out, nil
}

func coerce(fn any) (Target, error) {
	switch f := fn.(type) {
	case Target:
		return f, nil
	case func(*Machine, []dual.Dual) dual.Dual:
		return f, nil
	case func(*Machine, ...dual.Dual) dual.Dual:
		return func(m *Machine, inputs []dual.Dual) dual.Dual { return f(m, inputs...) }, nil
	default:
		return nil, fmt.Errorf("%w: want func(*eval.Machine, []dual.Dual) dual.Dual, got %T", ErrIncompatibleSignature, fn)
	}
}
