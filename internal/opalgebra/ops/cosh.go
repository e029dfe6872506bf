package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.COSH, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		PrintPrefix:  "cosh(",
		PrintPostfix: ")",
	})
}

// evalCosh computes cosh(x).
func evalCosh[T core.Value[T]](x, y T) T {
	return x.Cosh()
}

// partialsCosh: d(cosh(x))/dx = sinh(x). The CasADi C++ source this was
// distilled from computes -sinh(x) here, which is mathematically wrong;
// per spec §9 this implementation uses the corrected rule.
func partialsCosh[T core.Value[T]](x, y, f T) (T, T) {
	return x.Sinh(), x.Const(0)
}
