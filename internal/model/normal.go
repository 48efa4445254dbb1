// Package model builds illustrative log-density functions out of
// elementary, rule-covered operations, in both styles the engine accepts:
// statement-list programs for the transformer and capability functions for
// the evaluator. These are the expressions a gradient-based sampler
// differentiates.
package model

import (
	"math"

	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/eval"
	"github.com/tangent-ml/tangent/internal/rules"
	"github.com/tangent-ml/tangent/internal/transform"
)

// NormalLogDensity returns the straight-line program computing
// log N(x | mu, sigma) of its single parameter x:
//
//	logp = -0.5*log(2π) - log(sigma) - (x-mu)² / (2σ²)
//
// mu and sigma are baked in as constants, so the derivative is with
// respect to x.
func NormalLogDensity(mu, sigma float64) transform.Program {
	c := -0.5*math.Log(2*math.Pi) - math.Log(sigma)
	return transform.Program{
		Name:   "normalLogDensity",
		Params: []string{"x"},
		Body: []transform.Stmt{
			transform.Assign{LHS: "dev", Op: rules.OpSub, Args: []transform.Operand{transform.Var("x"), transform.Lit(mu)}},
			transform.Assign{LHS: "dev2", Op: rules.OpPow, Args: []transform.Operand{transform.Var("dev"), transform.Lit(2)}},
			transform.Assign{LHS: "quad", Op: rules.OpDiv, Args: []transform.Operand{transform.Var("dev2"), transform.Lit(2 * sigma * sigma)}},
			transform.Assign{LHS: "nquad", Op: rules.OpNeg, Args: []transform.Operand{transform.Var("quad")}},
			transform.Assign{LHS: "logp", Op: rules.OpAdd, Args: []transform.Operand{transform.Var("nquad"), transform.Lit(c)}},
			transform.Return{Var: "logp"},
		},
	}
}

// NormalLogDensityFn is the evaluator-path equivalent of NormalLogDensity.
func NormalLogDensityFn(mu, sigma float64) eval.Target {
	c := -0.5*math.Log(2*math.Pi) - math.Log(sigma)
	return func(m *eval.Machine, in []dual.Dual) dual.Dual {
		dev := m.Sub(in[0], dual.Const(mu))
		quad := m.Div(m.Pow(dev, 2), dual.Const(2*sigma*sigma))
		return m.Add(m.Neg(quad), dual.Const(c))
	}
}
