package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.CEIL, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		F00IsZero:    true,
		PrintPrefix:  "ceil(",
		PrintPostfix: ")",
	})
}

// evalCeil computes ceil(x).
func evalCeil[T core.Value[T]](x, y T) T {
	return x.Ceil()
}

// partialsCeil: ceil is piecewise constant, both partials are zero.
func partialsCeil[T core.Value[T]](x, y, f T) (T, T) {
	zero := x.Const(0)
	return zero, zero
}
