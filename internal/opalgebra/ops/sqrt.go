package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.SQRT, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		F00IsZero:    true,
		PrintPrefix:  "sqrt(",
		PrintPostfix: ")",
	})
}

// evalSqrt computes sqrt(x).
func evalSqrt[T core.Value[T]](x, y T) T {
	return x.Sqrt()
}

// partialsSqrt: d(sqrt(x))/dx = 1/(2*sqrt(x)) = 1/(2f).
func partialsSqrt[T core.Value[T]](x, y, f T) (T, T) {
	two := x.Const(2)
	return x.Const(1).Div(two.Mul(f)), x.Const(0)
}
