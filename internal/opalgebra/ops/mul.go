package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.MUL, core.OpDescriptor{
		Arity:        2,
		Commutative:  true,
		F00IsZero:    true,
		F0xIsZero:    true,
		Fx0IsZero:    true,
		PrintPrefix:  "(",
		PrintSep:     "*",
		PrintPostfix: ")",
	})
}

// evalMul computes x * y.
func evalMul[T core.Value[T]](x, y T) T {
	return x.Mul(y)
}

// partialsMul: d(x*y)/dx = y, d(x*y)/dy = x.
func partialsMul[T core.Value[T]](x, y, f T) (T, T) {
	return y, x
}
