// Package transform implements the source-rewrite evaluation strategy.
//
// A straight-line function is given as a Program: an ordered statement
// list in single-assignment form. Transform rewrites it once into a
// Transformed function that threads tangents alongside values, resolving
// every operation's rule at transform time through the shared registry.
// The result accepts plain values plus explicit tangent seeds; no dispatch
// remains inside it.
package transform

import "github.com/tangent-ml/tangent/internal/rules"

// Operand is an argument of an Assign statement: a reference to a
// previously bound variable or a numeric literal.
type Operand struct {
	isVar bool
	name  string
	lit   float64
}

// Var references a parameter or a previously assigned variable.
func Var(name string) Operand {
	return Operand{isVar: true, name: name}
}

// Lit is a constant operand; its tangent is identically zero.
func Lit(v float64) Operand {
	return Operand{lit: v}
}

// Stmt is one statement of a straight-line function body.
type Stmt interface {
	stmt()
}

// Assign binds LHS to the result of applying Op to Args. Each variable is
// bound at most once, and Args may reference only parameters and earlier
// bindings.
type Assign struct {
	LHS  string
	Op   rules.OpID
	Args []Operand
}

// Return ends the body, naming the variable whose value and tangent the
// function produces. It must be the final statement and nothing else.
type Return struct {
	Var string
}

// Branch is a conditional. The engine does not differentiate through
// control flow, so Transform always rejects it; the kind exists so that
// callers building programs from richer front ends get a deterministic
// error instead of a silently wrong derivative.
type Branch struct {
	Cond string
	Then []Stmt
	Else []Stmt
}

func (Assign) stmt() {}
func (Return) stmt() {}
func (Branch) stmt() {}

// Program is the statement list of a straight-line function.
type Program struct {
	Name   string // optional, used when rendering
	Params []string
	Body   []Stmt
}
