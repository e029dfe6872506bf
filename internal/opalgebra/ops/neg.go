package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.NEG, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		F00IsZero:    true,
		PrintPrefix:  "(-",
		PrintPostfix: ")",
	})
}

// evalNeg computes -x.
func evalNeg[T core.Value[T]](x, y T) T {
	return x.Neg()
}

// partialsNeg: d(-x)/dx = -1.
func partialsNeg[T core.Value[T]](x, y, f T) (T, T) {
	return x.Const(-1), x.Const(0)
}
