package grad_test

import (
	"errors"
	"math"
	"testing"

	"github.com/tangent-ml/tangent/internal/dual"
	"github.com/tangent-ml/tangent/internal/eval"
	"github.com/tangent-ml/tangent/internal/grad"
	"github.com/tangent-ml/tangent/internal/rules"
	"github.com/tangent-ml/tangent/internal/transform"
)

// scenarioFn is f(x,y) = x² + sin(x+y) on the evaluator path.
func scenarioFn(m *eval.Machine, in []dual.Dual) dual.Dual {
	x, y := in[0], in[1]
	return m.Add(m.Pow(x, 2), m.Sin(m.Add(x, y)))
}

// scenarioProgram is the same function in statement-list form.
func scenarioProgram() transform.Program {
	return transform.Program{
		Name:   "poly",
		Params: []string{"x", "y"},
		Body: []transform.Stmt{
			transform.Assign{LHS: "x2", Op: rules.OpPow, Args: []transform.Operand{transform.Var("x"), transform.Lit(2)}},
			transform.Assign{LHS: "s", Op: rules.OpAdd, Args: []transform.Operand{transform.Var("x"), transform.Var("y")}},
			transform.Assign{LHS: "sx", Op: rules.OpSin, Args: []transform.Operand{transform.Var("s")}},
			transform.Assign{LHS: "out", Op: rules.OpAdd, Args: []transform.Operand{transform.Var("x2"), transform.Var("sx")}},
			transform.Return{Var: "out"},
		},
	}
}

// numericalGradient computes the gradient of f at point using central
// finite differences.
func numericalGradient(f func([]float64) float64, point []float64) []float64 {
	const h = 1e-6
	g := make([]float64, len(point))
	x := make([]float64, len(point))
	copy(x, point)
	for i := range point {
		x[i] = point[i] + h
		plus := f(x)
		x[i] = point[i] - h
		minus := f(x)
		x[i] = point[i]
		g[i] = (plus - minus) / (2 * h)
	}
	return g
}

// TestGradient_BothPaths tests the full gradient of the scenario function
// on the evaluator path and the transformer path against the closed form
// and a finite-difference estimate.
func TestGradient_BothPaths(t *testing.T) {
	reg := rules.Builtin()
	point := []float64{1, 2}
	want := []float64{2 + math.Cos(3), math.Cos(3)}

	evalFn, err := eval.Func(reg, scenarioFn)
	if err != nil {
		t.Fatalf("eval.Func() error: %v", err)
	}
	trFn, err := transform.Transform(reg, scenarioProgram())
	if err != nil {
		t.Fatalf("Transform() error: %v", err)
	}

	fd := numericalGradient(func(p []float64) float64 {
		return p[0]*p[0] + math.Sin(p[0]+p[1])
	}, point)

	for name, f := range map[string]grad.Callable{"evaluator": evalFn, "transformed": trFn} {
		got, err := grad.Gradient(f, point)
		if err != nil {
			t.Fatalf("%s: Gradient() error: %v", name, err)
		}
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-6 {
				t.Errorf("%s: partial %d = %v, want %v", name, i, got[i], want[i])
			}
			if math.Abs(got[i]-fd[i]) > 1e-6 {
				t.Errorf("%s: partial %d = %v, finite difference %v", name, i, got[i], fd[i])
			}
		}
	}
}

// TestValueGradient tests that the value rides along with the first pass.
func TestValueGradient(t *testing.T) {
	reg := rules.Builtin()
	f, err := eval.Func(reg, scenarioFn)
	if err != nil {
		t.Fatalf("eval.Func() error: %v", err)
	}

	v, g, err := grad.ValueGradient(f, []float64{1, 2})
	if err != nil {
		t.Fatalf("ValueGradient() error: %v", err)
	}
	if want := 1 + math.Sin(3); math.Abs(v-want) > 1e-9 {
		t.Errorf("value = %v, want %v", v, want)
	}
	if len(g) != 2 {
		t.Fatalf("gradient length = %d, want 2", len(g))
	}
}

// TestParallelGradient tests that the concurrent driver matches the
// sequential one exactly.
func TestParallelGradient(t *testing.T) {
	reg := rules.Builtin()
	trFn, err := transform.Transform(reg, scenarioProgram())
	if err != nil {
		t.Fatalf("Transform() error: %v", err)
	}

	point := []float64{0.3, -1.7}
	seq, err := grad.Gradient(trFn, point)
	if err != nil {
		t.Fatalf("Gradient() error: %v", err)
	}
	par, err := grad.ParallelGradient(trFn, point)
	if err != nil {
		t.Fatalf("ParallelGradient() error: %v", err)
	}

	for i := range seq {
		if seq[i] != par[i] {
			t.Errorf("partial %d: sequential %v, parallel %v", i, seq[i], par[i])
		}
	}
}

// TestGradient_ErrorPropagation tests that an evaluation failure is
// propagated, not swallowed into a partial result.
func TestGradient_ErrorPropagation(t *testing.T) {
	reg := rules.Builtin()

	// sqrt at a negative point is NaN.
	f, err := eval.Func(reg, func(m *eval.Machine, in []dual.Dual) dual.Dual {
		return m.Sqrt(in[0])
	})
	if err != nil {
		t.Fatalf("eval.Func() error: %v", err)
	}

	for name, drive := range map[string]func(grad.Callable, []float64) ([]float64, error){
		"sequential": grad.Gradient,
		"parallel":   grad.ParallelGradient,
	} {
		got, err := drive(f, []float64{-4})
		if !errors.Is(err, dual.ErrNumericalInstability) {
			t.Errorf("%s: error = %v, want ErrNumericalInstability", name, err)
		}
		if got != nil {
			t.Errorf("%s: partials = %v, want nil on failure", name, got)
		}
	}
}
