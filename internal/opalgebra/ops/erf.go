package ops

import (
	"math"

	"github.com/mbharadwaj13/casadi/internal/opalgebra/core"
)

// twoOverSqrtPi is the 2/sqrt(pi) coefficient in d(erf(x))/dx.
var twoOverSqrtPi = 2 / math.Sqrt(math.Pi)

func init() {
	core.Register(core.ERF, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		F00IsZero:    true,
		PrintPrefix:  "erf(",
		PrintPostfix: ")",
	})
}

// evalErf computes erf(x).
func evalErf[T core.Value[T]](x, y T) T {
	return x.Erf()
}

// partialsErf: d(erf(x))/dx = (2/sqrt(pi)) * exp(-x^2).
func partialsErf[T core.Value[T]](x, y, f T) (T, T) {
	coeff := x.ConstFloat(twoOverSqrtPi)
	return coeff.Mul(x.Mul(x).Neg().Exp()), x.Const(0)
}
