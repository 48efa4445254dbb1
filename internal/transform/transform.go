package transform

import (
	"errors"
	"fmt"

	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/rules"
)

// ErrUnsupportedExpression reports a statement the transformer cannot
// rewrite: an operation with no registered rule, control flow, a return
// that is not the sole terminal statement, or a malformed binding. No
// partial function is produced.
var ErrUnsupportedExpression = errors.New("unsupported expression")

// slot addresses one operand at call time: an environment index for a
// variable, or an inline literal.
type slot struct {
	index int
	lit   float64
	isLit bool
}

// step is one compiled paired assignment: the rule was resolved at
// transform time and the operands bound to environment slots.
type step struct {
	op   rules.OpID // kept for rendering and error reporting
	dst  int
	args []slot
	rule rules.Rule
}

// Transformed is the rewritten function. For each original parameter v it
// gained a tangent parameter dv; each assignment became a paired
// assignment through its rule; the return yields the primal and tangent of
// the original return variable. It is an independent callable with no
// back-reference to the program or registry that produced it.
type Transformed struct {
	name  string
	names []string // slot names: parameters, then assignment targets
	args  int      // parameter count
	steps []step
	ret   int // environment index of the returned variable
}

// Transform rewrites prog into a tangent-propagating function, consulting
// reg once per statement. Any statement the engine cannot rewrite fails
// with ErrUnsupportedExpression naming the offender.
func Transform(reg *rules.Registry, prog Program) (*Transformed, error) {
	name := prog.Name
	if name == "" {
		name = "fn"
	}

	env := make(map[string]int, len(prog.Params)+len(prog.Body))
	tr := &Transformed{
		name:  name,
		names: make([]string, 0, len(prog.Params)+len(prog.Body)),
		args:  len(prog.Params),
		ret:   -1,
	}
	for _, p := range prog.Params {
		if _, ok := env[p]; ok {
			return nil, fmt.Errorf("%w: duplicate parameter %q", ErrUnsupportedExpression, p)
		}
		env[p] = len(tr.names)
		tr.names = append(tr.names, p)
	}

	if len(prog.Body) == 0 {
		return nil, fmt.Errorf("%w: empty body, missing return", ErrUnsupportedExpression)
	}

	for i, st := range prog.Body {
		terminal := i == len(prog.Body)-1

		switch st := st.(type) {
		case Assign:
			if terminal {
				return nil, fmt.Errorf("%w: body must end with a return", ErrUnsupportedExpression)
			}
			compiled, err := compileAssign(reg, st, env)
			if err != nil {
				return nil, err
			}
			compiled.dst = len(tr.names)
			env[st.LHS] = compiled.dst
			tr.names = append(tr.names, st.LHS)
			tr.steps = append(tr.steps, compiled)

		case Return:
			if !terminal {
				return nil, fmt.Errorf("%w: return before end of body", ErrUnsupportedExpression)
			}
			idx, ok := env[st.Var]
			if !ok {
				return nil, fmt.Errorf("%w: return of unbound variable %q", ErrUnsupportedExpression, st.Var)
			}
			tr.ret = idx

		default:
			return nil, fmt.Errorf("%w: cannot rewrite %T, only assignments and a terminal return are differentiable", ErrUnsupportedExpression, st)
		}
	}

	return tr, nil
}

func compileAssign(reg *rules.Registry, st Assign, env map[string]int) (step, error) {
	if st.LHS == "" {
		return step{}, fmt.Errorf("%w: assignment with empty target", ErrUnsupportedExpression)
	}
	if _, ok := env[st.LHS]; ok {
		return step{}, fmt.Errorf("%w: %q assigned twice", ErrUnsupportedExpression, st.LHS)
	}

	rule, err := reg.Lookup(st.Op)
	if err != nil {
		return step{}, fmt.Errorf("%w: operation %q has no registered rule", ErrUnsupportedExpression, st.Op)
	}
	if len(st.Args) != rule.Arity {
		return step{}, fmt.Errorf("%w: operation %q takes %d operands, got %d",
			ErrUnsupportedExpression, st.Op, rule.Arity, len(st.Args))
	}

	args := make([]slot, len(st.Args))
	for j, a := range st.Args {
		if !a.isVar {
			args[j] = slot{lit: a.lit, isLit: true}
			continue
		}
		idx, ok := env[a.name]
		if !ok {
			return step{}, fmt.Errorf("%w: %q references unbound variable %q",
				ErrUnsupportedExpression, st.LHS, a.name)
		}
		args[j] = slot{index: idx}
	}

	return step{op: st.Op, args: args, rule: rule}, nil
}

// NumParams returns the number of original parameters.
func (t *Transformed) NumParams() int {
	return t.args
}

// Call runs the transformed function: values are the original parameters
// in declaration order and seeds their tangents. It returns the primal
// value and tangent of the original return variable.
func (t *Transformed) Call(values, seeds []float64) (float64, float64, error) {
	if len(values) != t.args {
		return 0, 0, fmt.Errorf("call %s: got %d values, want %d", t.name, len(values), t.args)
	}
	if len(seeds) != t.args {
		return 0, 0, fmt.Errorf("call %s: got %d seeds, want %d", t.name, len(seeds), t.args)
	}

	env := make([]dual.Dual, len(t.names))
	for i := range values {
		env[i] = dual.New(values[i], seeds[i])
	}

	for _, s := range t.steps {
		tangents := make([]float64, len(s.args))
		vals := make([]float64, len(s.args))
		for j, a := range s.args {
			if a.isLit {
				vals[j] = a.lit
			} else {
				vals[j] = env[a.index].Value
				tangents[j] = env[a.index].Tangent
			}
		}

		v, tan := s.rule.Compute(0, tangents, vals)
		out := dual.New(v, tan)
		if !out.IsFinite() {
			return 0, 0, fmt.Errorf("call %s: %s of %q: %w",
				t.name, s.op, t.names[s.dst], dual.ErrNumericalInstability)
		}
		env[s.dst] = out
	}

	out := env[t.ret]
	return out.Value, out.Tangent, nil
}

// CallWithSeed adapts Call to the gradient driver's callable contract.
func (t *Transformed) CallWithSeed(point, seed []float64) (dual.Dual, error) {
	v, tan, err := t.Call(point, seed)
	if err != nil {
		return dual.Dual{}, err
	}
	return dual.New(v, tan), nil
}
