package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

func init() {
	core.Register(core.PRINTME, core.OpDescriptor{
		Arity:        2,
		Commutative:  false,
		PrintPrefix:  "printme(",
		PrintSep:     ",",
		PrintPostfix: ")",
	})
}

// evalPrintme is the identity in x, with an optional diagnostic emission
// of y via x's OnPrintme hook (spec §9's re-architecture note: a trait
// method on the operand type rather than a build-flag-gated template
// specialization). Only scalar.V[float64] overrides the hook; every other
// bundled operand type treats it as a no-op.
func evalPrintme[T core.Value[T]](x, y T) T {
	x.OnPrintme(y)
	return x
}

// partialsPrintme is declared (1, 0), matching PRINTME's per-op rule
// table (identity in x). The CasADi C++ source this was distilled from
// dispatches PRINTME's derivative to the TANH rule, which spec §9 records
// as a likely bug in the source; this implementation uses the documented
// rule instead.
func partialsPrintme[T core.Value[T]](x, y, f T) (T, T) {
	return x.Const(1), x.Const(0)
}
