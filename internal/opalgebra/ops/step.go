package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.STEP, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		PrintPrefix:  "(",
		PrintSep:     "",
		PrintPostfix: ">=0)",
	})
}

// evalStep computes the Heaviside step: 1 when x >= 0, else 0.
func evalStep[T core.Value[T]](x, y T) T {
	return x.GE(x.Const(0))
}

// partialsStep: the step function is piecewise constant, so both partials
// are zero everywhere it is differentiable.
func partialsStep[T core.Value[T]](x, y, f T) (T, T) {
	zero := x.Const(0)
	return zero, zero
}
