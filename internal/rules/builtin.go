package rules

// builtins is the elementary rule set every registry normally starts from.
var builtins = []struct {
	op      OpID
	arity   int
	compute Compute
}{
	{OpAdd, 2, addRule},
	{OpSub, 2, subRule},
	{OpMul, 2, mulRule},
	{OpDiv, 2, divRule},
	{OpNeg, 1, negRule},
	{OpPow, 2, powRule},
	{OpSin, 1, sinRule},
	{OpCos, 1, cosRule},
	{OpExp, 1, expRule},
	{OpLog, 1, logRule},
	{OpSqrt, 1, sqrtRule},
	{OpTanh, 1, tanhRule},
}

// RegisterBuiltins registers the elementary rule set into r. It fails if r
// is frozen or already holds one of the builtin identifiers.
func RegisterBuiltins(r *Registry) error {
	for _, b := range builtins {
		if err := r.Register(b.op, b.arity, b.compute); err != nil {
			return err
		}
	}
	return nil
}
