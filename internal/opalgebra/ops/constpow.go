package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.CONSTPOW, core.OpDescriptor{
		Arity:        2,
		Commutative:  false,
		PrintPrefix:  "pow(",
		PrintSep:     ",",
		PrintPostfix: ")",
	})
}

// evalConstpow computes x^y, identically to POW; the only difference from
// POW is the derivative rule below (y is treated as a constant, so there
// is no d/dy contribution).
func evalConstpow[T core.Value[T]](x, y T) T {
	return x.Pow(y)
}

// partialsConstpow: d(x^y)/dx = y*x^(y-1), d(x^y)/dy = 0 (y is constant).
func partialsConstpow[T core.Value[T]](x, y, f T) (T, T) {
	d0 := y.Mul(x.Pow(y.Sub(x.Const(1))))
	return d0, x.Const(0)
}
