package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.LOG, core.OpDescriptor{
		Arity:        1,
		Commutative:  true,
		PrintPrefix:  "log(",
		PrintPostfix: ")",
	})
}

// evalLog computes log(x).
func evalLog[T core.Value[T]](x, y T) T {
	return x.Log()
}

// partialsLog: d(log(x))/dx = 1/x.
func partialsLog[T core.Value[T]](x, y, f T) (T, T) {
	return x.Const(1).Div(x), x.Const(0)
}
