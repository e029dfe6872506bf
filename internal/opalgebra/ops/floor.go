package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.FLOOR, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		F00IsZero:    true,
		PrintPrefix:  "floor(",
		PrintPostfix: ")",
	})
}

// evalFloor computes floor(x).
func evalFloor[T core.Value[T]](x, y T) T {
	return x.Floor()
}

// partialsFloor: floor is piecewise constant, both partials are zero.
func partialsFloor[T core.Value[T]](x, y, f T) (T, T) {
	zero := x.Const(0)
	return zero, zero
}
