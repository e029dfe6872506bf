package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.FMIN, core.OpDescriptor{
		Arity:        2,
		Commutative:  true,
		F00IsZero:    true,
		PrintPrefix:  "fmin(",
		PrintSep:     ",",
		PrintPostfix: ")",
	})
}

// evalFmin computes min(x, y).
func evalFmin[T core.Value[T]](x, y T) T {
	return x.Fmin(y)
}

// partialsFmin: d/dx = [x<=y], d/dy = 1-[x<=y].
func partialsFmin[T core.Value[T]](x, y, f T) (T, T) {
	indicator := x.LE(y)
	return indicator, x.Const(1).Sub(indicator)
}
