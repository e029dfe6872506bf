package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.INV, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		PrintPrefix:  "(1/",
		PrintPostfix: ")",
	})
}

// evalInv computes 1/x.
func evalInv[T core.Value[T]](x, y T) T {
	return x.Const(1).Div(x)
}

// partialsInv: d(1/x)/dx = -(1/x)^2 = -f^2.
func partialsInv[T core.Value[T]](x, y, f T) (T, T) {
	return f.Mul(f).Neg(), x.Const(0)
}
