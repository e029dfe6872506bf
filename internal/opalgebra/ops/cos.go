package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.COS, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		PrintPrefix:  "cos(",
		PrintPostfix: ")",
	})
}

// evalCos computes cos(x).
func evalCos[T core.Value[T]](x, y T) T {
	return x.Cos()
}

// partialsCos: d(cos(x))/dx = -sin(x).
func partialsCos[T core.Value[T]](x, y, f T) (T, T) {
	return x.Sin().Neg(), x.Const(0)
}
