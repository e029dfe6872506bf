package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.ACOS, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		PrintPrefix:  "acos(",
		PrintPostfix: ")",
	})
}

// evalAcos computes acos(x).
func evalAcos[T core.Value[T]](x, y T) T {
	return x.Acos()
}

// partialsAcos: d(acos(x))/dx = -1/sqrt(1-x^2).
func partialsAcos[T core.Value[T]](x, y, f T) (T, T) {
	one := x.Const(1)
	return one.Div(one.Sub(x.Mul(x)).Sqrt()).Neg(), x.Const(0)
}
