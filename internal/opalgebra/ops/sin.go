package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.SIN, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		F00IsZero:    true,
		PrintPrefix:  "sin(",
		PrintPostfix: ")",
	})
}

// evalSin computes sin(x).
func evalSin[T core.Value[T]](x, y T) T {
	return x.Sin()
}

// partialsSin: d(sin(x))/dx = cos(x).
func partialsSin[T core.Value[T]](x, y, f T) (T, T) {
	return x.Cos(), x.Const(0)
}
