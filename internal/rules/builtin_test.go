package rules

import (
	"math"
	"testing"
)

const (
	epsilonGrad = 1e-6
	toleranceFD = 1e-6 // tolerance against central finite differences
)

// numericalDerivative computes df/dx at x using central finite differences.
func numericalDerivative(f func(float64) float64, x float64) float64 {
	h := epsilonGrad * math.Max(1, math.Abs(x))
	return (f(x+h) - f(x-h)) / (2 * h)
}

// applyUnary runs a registered unary rule at x with tangent seed 1.
func applyUnary(t *testing.T, r *Registry, op OpID, x float64) (float64, float64) {
	t.Helper()
	rule, err := r.Lookup(op)
	if err != nil {
		t.Fatalf("Lookup(%q) error: %v", op, err)
	}
	return rule.Compute(0, []float64{1}, []float64{x})
}

// TestBuiltin_UnaryRules tests each unary rule's value and tangent against
// the plain math function and a central finite-difference estimate.
func TestBuiltin_UnaryRules(t *testing.T) {
	r := Builtin()

	cases := []struct {
		op     OpID
		f      func(float64) float64
		points []float64
	}{
		{OpNeg, func(x float64) float64 { return -x }, []float64{-2, 0, 3.5}},
		{OpSin, math.Sin, []float64{-1.2, 0, 0.7, 2.9}},
		{OpCos, math.Cos, []float64{-1.2, 0, 0.7, 2.9}},
		{OpExp, math.Exp, []float64{-1, 0, 1.5}},
		{OpLog, math.Log, []float64{0.3, 1, 4.2}},
		{OpSqrt, math.Sqrt, []float64{0.25, 1, 9}},
		{OpTanh, math.Tanh, []float64{-2, 0, 1.3}},
	}

	for _, tc := range cases {
		for _, x := range tc.points {
			v, tan := applyUnary(t, r, tc.op, x)
			if want := tc.f(x); math.Abs(v-want) > 1e-12 {
				t.Errorf("%s(%v) = %v, want %v", tc.op, x, v, want)
			}
			want := numericalDerivative(tc.f, x)
			if math.Abs(tan-want) > toleranceFD {
				t.Errorf("%s'(%v) = %v, finite difference %v", tc.op, x, tan, want)
			}
		}
	}
}

// TestBuiltin_Linearity tests tangent(a+b) = tangent(a) + tangent(b).
func TestBuiltin_Linearity(t *testing.T) {
	r := Builtin()
	rule, err := r.Lookup(OpAdd)
	if err != nil {
		t.Fatalf("Lookup(add) error: %v", err)
	}

	cases := []struct{ ta, tb float64 }{{1, 0}, {0, 1}, {0.5, -2}, {3, 3}}
	for _, tc := range cases {
		_, tan := rule.Compute(0, []float64{tc.ta, tc.tb}, []float64{1.1, -0.4})
		if want := tc.ta + tc.tb; math.Abs(tan-want) > 1e-12 {
			t.Errorf("tangent(a+b) with seeds (%v, %v) = %v, want %v", tc.ta, tc.tb, tan, want)
		}
	}
}

// TestBuiltin_PowerRule tests d(x^k)/dx = k*x^(k-1) against finite
// differences for integer exponents in a safe domain.
func TestBuiltin_PowerRule(t *testing.T) {
	r := Builtin()
	rule, err := r.Lookup(OpPow)
	if err != nil {
		t.Fatalf("Lookup(pow) error: %v", err)
	}

	for _, k := range []float64{0, 1, 2, 3, 5} {
		for _, x := range []float64{0.5, 1, 1.7, 2.4} {
			v, tan := rule.Compute(0, []float64{1, 0}, []float64{x, k})
			if want := math.Pow(x, k); math.Abs(v-want) > 1e-12 {
				t.Errorf("pow(%v, %v) = %v, want %v", x, k, v, want)
			}
			if want := k * math.Pow(x, k-1); math.Abs(tan-want) > toleranceFD {
				t.Errorf("d(x^%v)/dx at %v = %v, want %v", k, x, tan, want)
			}
			fd := numericalDerivative(func(b float64) float64 { return math.Pow(b, k) }, x)
			if math.Abs(tan-fd) > 1e-5 {
				t.Errorf("d(x^%v)/dx at %v = %v, finite difference %v", k, x, tan, fd)
			}
		}
	}
}

// TestBuiltin_BinaryRules tests mul/sub/div tangents with both operands
// carrying tangents.
func TestBuiltin_BinaryRules(t *testing.T) {
	r := Builtin()

	a, b := 1.7, -2.3
	ta, tb := 0.5, 1.25

	cases := []struct {
		op        OpID
		wantV     float64
		wantT     float64
	}{
		{OpAdd, a + b, ta + tb},
		{OpSub, a - b, ta - tb},
		{OpMul, a * b, ta*b + a*tb},
		{OpDiv, a / b, (ta*b - a*tb) / (b * b)},
	}

	for _, tc := range cases {
		rule, err := r.Lookup(tc.op)
		if err != nil {
			t.Fatalf("Lookup(%q) error: %v", tc.op, err)
		}
		v, tan := rule.Compute(0, []float64{ta, tb}, []float64{a, b})
		if math.Abs(v-tc.wantV) > 1e-12 {
			t.Errorf("%s value = %v, want %v", tc.op, v, tc.wantV)
		}
		if math.Abs(tan-tc.wantT) > 1e-12 {
			t.Errorf("%s tangent = %v, want %v", tc.op, tan, tc.wantT)
		}
	}
}

// TestBuiltin_SinChainRule tests tangent(sin(g(x))) = cos(g(x)) * tangent(g(x))
// for a composed expression, verified against finite differences.
func TestBuiltin_SinChainRule(t *testing.T) {
	r := Builtin()
	sin, err := r.Lookup(OpSin)
	if err != nil {
		t.Fatalf("Lookup(sin) error: %v", err)
	}
	mul, err := r.Lookup(OpMul)
	if err != nil {
		t.Fatalf("Lookup(mul) error: %v", err)
	}

	// g(x) = x * x, f(x) = sin(g(x))
	for _, x := range []float64{-1.1, 0.4, 2.2} {
		g, tg := mul.Compute(0, []float64{1, 1}, []float64{x, x})
		v, tan := sin.Compute(0, []float64{tg}, []float64{g})

		if want := math.Sin(x * x); math.Abs(v-want) > 1e-12 {
			t.Errorf("sin(x²) at %v = %v, want %v", x, v, want)
		}
		if want := math.Cos(g) * tg; math.Abs(tan-want) > 1e-12 {
			t.Errorf("chain tangent at %v = %v, want cos(g)*tg = %v", x, tan, want)
		}
		fd := numericalDerivative(func(x float64) float64 { return math.Sin(x * x) }, x)
		if math.Abs(tan-fd) > toleranceFD {
			t.Errorf("chain tangent at %v = %v, finite difference %v", x, tan, fd)
		}
	}
}
