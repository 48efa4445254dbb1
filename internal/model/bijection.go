package model

import (
	"math"

	"github.com/tangent-ml/tangent/internal/rules"
	"github.com/tangent-ml/tangent/internal/transform"
)

// ExpTransformedLogDensity returns the program computing the log-density
// of an Exponential(rate) variable reparameterized onto the whole real
// line through the exp bijection, x = exp(y):
//
//	logp(y) = log f(exp(y)) + logabsdetjac(exp, y)
//	        = log(rate) - rate*exp(y) + y
//
// The Jacobian term of exp is y itself, so the combined expression stays
// elementary and the engine differentiates it like any other program.
func ExpTransformedLogDensity(rate float64) transform.Program {
	return transform.Program{
		Name:   "expTransformedLogDensity",
		Params: []string{"y"},
		Body: []transform.Stmt{
			transform.Assign{LHS: "x", Op: rules.OpExp, Args: []transform.Operand{transform.Var("y")}},
			transform.Assign{LHS: "rx", Op: rules.OpMul, Args: []transform.Operand{transform.Lit(rate), transform.Var("x")}},
			transform.Assign{LHS: "nrx", Op: rules.OpNeg, Args: []transform.Operand{transform.Var("rx")}},
			transform.Assign{LHS: "base", Op: rules.OpAdd, Args: []transform.Operand{transform.Var("nrx"), transform.Lit(math.Log(rate))}},
			transform.Assign{LHS: "logp", Op: rules.OpAdd, Args: []transform.Operand{transform.Var("base"), transform.Var("y")}},
			transform.Return{Var: "logp"},
		},
	}
}
