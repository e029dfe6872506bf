package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	// Recorded non-commutative per spec §3/§9: the repository's own table
	// marks EQUALITY non-commutative despite the mathematical operation
	// being symmetric. Preserved as-is; see the open question in spec.md.
	core.Register(core.EQUALITY, core.OpDescriptor{
		Arity:        2,
		Commutative:  false,
		PrintPrefix:  "(",
		PrintSep:     "==",
		PrintPostfix: ")",
	})
}

// evalEquality computes [x == y].
func evalEquality[T core.Value[T]](x, y T) T {
	return x.Eq(y)
}

// partialsEquality: equality is piecewise constant, both partials are zero.
func partialsEquality[T core.Value[T]](x, y, f T) (T, T) {
	zero := x.Const(0)
	return zero, zero
}
