package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.EXP, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		PrintPrefix:  "exp(",
		PrintPostfix: ")",
	})
}

// evalExp computes exp(x).
func evalExp[T core.Value[T]](x, y T) T {
	return x.Exp()
}

// partialsExp: d(exp(x))/dx = exp(x) = f.
func partialsExp[T core.Value[T]](x, y, f T) (T, T) {
	return f, x.Const(0)
}
