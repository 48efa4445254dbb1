// Package rules defines the differentiation rule registry shared by both
// evaluation strategies.
//
// Every elementary operation is identified by an OpID and carries exactly
// one Rule: the operation's arity plus a Compute function encoding its
// value and derivative formula. Dispatch is purely data driven - the
// operator-overloading evaluator resolves operations here at run time and
// the source transformer resolves them here at transform time, so the two
// strategies can never diverge in which mathematical rule they apply.
//
// Supported builtin operations:
//   - add, sub, mul, div, neg: arithmetic
//   - pow: integer exponentiation (d(x^k)/dx = k*x^(k-1))
//   - sin, cos, tanh: trigonometric and hyperbolic
//   - exp, log, sqrt: exponential family
package rules

// OpID identifies an elementary operation in the registry.
// Distinct operations must use distinct identifiers.
type OpID string

// Builtin operation identifiers.
const (
	OpAdd  OpID = "add"
	OpSub  OpID = "sub"
	OpMul  OpID = "mul"
	OpDiv  OpID = "div"
	OpNeg  OpID = "neg"
	OpPow  OpID = "pow"
	OpSin  OpID = "sin"
	OpCos  OpID = "cos"
	OpExp  OpID = "exp"
	OpLog  OpID = "log"
	OpSqrt OpID = "sqrt"
	OpTanh OpID = "tanh"
)

// Compute evaluates one application of a rule.
//
// self is the tangent of the callee itself: a parameterized callable whose
// internal state carries a derivative passes it here, while a stateless
// elementary function receives 0 and ignores it. tangents and values hold
// the operands' tangents and values in operand order. Compute returns the
// output value and output tangent.
//
// A Compute must be a pure function of its arguments: no hidden state,
// no I/O.
type Compute func(self float64, tangents, values []float64) (value, tangent float64)

// Rule pairs an operation's arity with its derivative computation.
type Rule struct {
	Arity   int
	Compute Compute
}
