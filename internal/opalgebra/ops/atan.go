package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.ATAN, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		F00IsZero:    true,
		PrintPrefix:  "atan(",
		PrintPostfix: ")",
	})
}

// evalAtan computes atan(x).
func evalAtan[T core.Value[T]](x, y T) T {
	return x.Atan()
}

// partialsAtan: d(atan(x))/dx = 1/(1+x^2).
func partialsAtan[T core.Value[T]](x, y, f T) (T, T) {
	one := x.Const(1)
	return one.Div(one.Add(x.Mul(x))), x.Const(0)
}
