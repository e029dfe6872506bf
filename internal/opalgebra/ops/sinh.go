package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.SINH, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		F00IsZero:    true,
		PrintPrefix:  "sinh(",
		PrintPostfix: ")",
	})
}

// evalSinh computes sinh(x).
func evalSinh[T core.Value[T]](x, y T) T {
	return x.Sinh()
}

// partialsSinh: d(sinh(x))/dx = cosh(x).
func partialsSinh[T core.Value[T]](x, y, f T) (T, T) {
	return x.Cosh(), x.Const(0)
}
