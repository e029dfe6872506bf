package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.POW, core.OpDescriptor{
		Arity:        2,
		Commutative:  false,
		PrintPrefix:  "pow(",
		PrintSep:     ",",
		PrintPostfix: ")",
	})
}

// evalPow computes x^y.
func evalPow[T core.Value[T]](x, y T) T {
	return x.Pow(y)
}

// partialsPow: d(x^y)/dx = y*x^(y-1), d(x^y)/dy = log(x)*f.
// x^(y-1) is expressed via x.Pow(y.Sub(one)) rather than f/x so it stays
// defined at x=0 for integer y (spec §4.1 notes).
func partialsPow[T core.Value[T]](x, y, f T) (T, T) {
	d0 := y.Mul(x.Pow(y.Sub(x.Const(1))))
	d1 := x.Log().Mul(f)
	return d0, d1
}
