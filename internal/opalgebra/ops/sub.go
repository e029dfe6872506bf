package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.SUB, core.OpDescriptor{
		Arity:        2,
		Commutative:  false,
		F00IsZero:    true,
		PrintPrefix:  "(",
		PrintSep:     "-",
		PrintPostfix: ")",
	})
}

// evalSub computes x - y.
func evalSub[T core.Value[T]](x, y T) T {
	return x.Sub(y)
}

// partialsSub: d(x-y)/dx = 1, d(x-y)/dy = -1.
func partialsSub[T core.Value[T]](x, y, f T) (T, T) {
	return x.Const(1), x.Const(-1)
}
