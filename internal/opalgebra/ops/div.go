package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.DIV, core.OpDescriptor{
		Arity:        2,
		Commutative:  false,
		F0xIsZero:    true,
		PrintPrefix:  "(",
		PrintSep:     "/",
		PrintPostfix: ")",
	})
}

// evalDiv computes x / y.
func evalDiv[T core.Value[T]](x, y T) T {
	return x.Div(y)
}

// partialsDiv: d(x/y)/dx = 1/y, d(x/y)/dy = -f/y. Expressed in terms of
// the already-computed f so d1 takes one division instead of -x/(y*y).
func partialsDiv[T core.Value[T]](x, y, f T) (T, T) {
	d0 := x.Const(1).Div(y)
	d1 := f.Neg().Div(y)
	return d0, d1
}
