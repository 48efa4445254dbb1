// Copyright 2025 Tangent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grad exposes the gradient driver: full gradients from repeated
// one-hot seeded forward passes over either evaluation strategy.
//
// Example:
//
//	fn, _ := transform.Transform(rules.Builtin(), prog)
//	partials, err := grad.Gradient(fn, []float64{1.0, 2.0})
package grad

import "github.com/tangent-ml/tangent/internal/grad"

// Callable is a differentiable function of n inputs; both eval.Seeded and
// transform.Transformed satisfy it.
type Callable = grad.Callable

// Gradient returns the n partial derivatives of f at point.
func Gradient(f Callable, point []float64) ([]float64, error) {
	return grad.Gradient(f, point)
}

// ValueGradient returns f's value at point along with its gradient.
func ValueGradient(f Callable, point []float64) (float64, []float64, error) {
	return grad.ValueGradient(f, point)
}

// ParallelGradient computes the same partials as Gradient with one
// goroutine per input.
func ParallelGradient(f Callable, point []float64) ([]float64, error) {
	return grad.ParallelGradient(f, point)
}

// BatchConfig controls worker fan-out for batch gradient evaluation.
type BatchConfig = grad.BatchConfig

// DefaultBatchConfig returns sensible defaults based on CPU count.
func DefaultBatchConfig() BatchConfig {
	return grad.DefaultBatchConfig()
}

// BatchGradient computes the gradient of f at every point in the batch.
func BatchGradient(f Callable, points [][]float64, cfg BatchConfig) ([][]float64, error) {
	return grad.BatchGradient(f, points, cfg)
}
