// Package grad computes full gradients by repeated seeded forward passes.
//
// Forward mode yields one directional derivative per pass, so the gradient
// of a function of n inputs takes n passes, each seeding exactly one
// input's tangent to 1. Both the operator-overloading evaluator and a
// transformed function satisfy the Callable contract, so the driver is
// oblivious to which strategy produced the function.
package grad

import (
	"fmt"

	"github.com/tangent-ml/tangent/internal/dual"
)

// Callable is a differentiable function of n inputs. A call evaluates it
// at point with the given tangent seeds and returns the resulting
// value/tangent pair.
type Callable interface {
	CallWithSeed(point, seed []float64) (dual.Dual, error)
}

// Gradient returns the n partial derivatives of f at point, one one-hot
// seeded pass per input. Evaluation and transform errors propagate
// unchanged; no partial is ever substituted for a failed pass.
func Gradient(f Callable, point []float64) ([]float64, error) {
	partials := make([]float64, len(point))
	seed := make([]float64, len(point))
	for i := range point {
		seed[i] = 1
		out, err := f.CallWithSeed(point, seed)
		seed[i] = 0
		if err != nil {
			return nil, fmt.Errorf("partial %d: %w", i, err)
		}
		partials[i] = out.Tangent
	}
	return partials, nil
}

// ValueGradient returns f's value at point along with its gradient, still
// in n passes (the value rides along with the first).
func ValueGradient(f Callable, point []float64) (float64, []float64, error) {
	if len(point) == 0 {
		out, err := f.CallWithSeed(nil, nil)
		if err != nil {
			return 0, nil, err
		}
		return out.Value, nil, nil
	}

	partials := make([]float64, len(point))
	seed := make([]float64, len(point))
	var value float64
	for i := range point {
		seed[i] = 1
		out, err := f.CallWithSeed(point, seed)
		seed[i] = 0
		if err != nil {
			return 0, nil, fmt.Errorf("partial %d: %w", i, err)
		}
		if i == 0 {
			value = out.Value
		}
		partials[i] = out.Tangent
	}
	return value, partials, nil
}
