package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.TAN, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		F00IsZero:    true,
		PrintPrefix:  "tan(",
		PrintPostfix: ")",
	})
}

// evalTan computes tan(x).
func evalTan[T core.Value[T]](x, y T) T {
	return x.Tan()
}

// partialsTan: d(tan(x))/dx = 1/cos(x)^2.
func partialsTan[T core.Value[T]](x, y, f T) (T, T) {
	c := x.Cos()
	return x.Const(1).Div(c.Mul(c)), x.Const(0)
}
