package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.TANH, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		F00IsZero:    true,
		PrintPrefix:  "tanh(",
		PrintPostfix: ")",
	})
}

// evalTanh computes tanh(x).
func evalTanh[T core.Value[T]](x, y T) T {
	return x.Tanh()
}

// partialsTanh: d(tanh(x))/dx = 1 - tanh(x)^2 = 1 - f^2.
func partialsTanh[T core.Value[T]](x, y, f T) (T, T) {
	return x.Const(1).Sub(f.Mul(f)), x.Const(0)
}
