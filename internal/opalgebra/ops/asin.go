package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.ASIN, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		F00IsZero:    true,
		PrintPrefix:  "asin(",
		PrintPostfix: ")",
	})
}

// evalAsin computes asin(x).
func evalAsin[T core.Value[T]](x, y T) T {
	return x.Asin()
}

// partialsAsin: d(asin(x))/dx = 1/sqrt(1-x^2).
func partialsAsin[T core.Value[T]](x, y, f T) (T, T) {
	one := x.Const(1)
	return one.Div(one.Sub(x.Mul(x)).Sqrt()), x.Const(0)
}
