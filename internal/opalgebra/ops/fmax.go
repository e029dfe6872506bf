package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.FMAX, core.OpDescriptor{
		Arity:        2,
		Commutative:  true,
		F00IsZero:    true,
		PrintPrefix:  "fmax(",
		PrintSep:     ",",
		PrintPostfix: ")",
	})
}

// evalFmax computes max(x, y).
func evalFmax[T core.Value[T]](x, y T) T {
	return x.Fmax(y)
}

// partialsFmax: d/dx = [x>=y], d/dy = 1-[x>=y].
func partialsFmax[T core.Value[T]](x, y, f T) (T, T) {
	indicator := x.GE(y)
	return indicator, x.Const(1).Sub(indicator)
}
