// Package ops holds the built-in scalar operation catalogue: one file per
// OpCode, each registering that op's static OpDescriptor (arity,
// commutativity, zero-absorption flags, print grammar — spec §4.1) and
// exporting the generic evaluator and partial-derivative rule used to
// populate internal/opalgebra's per-T dispatch tables.
package ops

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

// Rules returns the complete, exhaustive set of operation rules for T.
// internal/opalgebra.buildTable calls this exactly once per T and checks
// the result covers every OpCode before publishing the table.
func Rules[T core.Value[T]]() []core.OpRule[T] {
	return []core.OpRule[T]{
		{Op: core.ADD, Eval: evalAdd[T], Partials: partialsAdd[T]},
		{Op: core.SUB, Eval: evalSub[T], Partials: partialsSub[T]},
		{Op: core.MUL, Eval: evalMul[T], Partials: partialsMul[T]},
		{Op: core.DIV, Eval: evalDiv[T], Partials: partialsDiv[T]},
		{Op: core.NEG, Eval: evalNeg[T], Partials: partialsNeg[T]},
		{Op: core.EXP, Eval: evalExp[T], Partials: partialsExp[T]},
		{Op: core.LOG, Eval: evalLog[T], Partials: partialsLog[T]},
		{Op: core.POW, Eval: evalPow[T], Partials: partialsPow[T]},
		{Op: core.CONSTPOW, Eval: evalConstpow[T], Partials: partialsConstpow[T]},
		{Op: core.SQRT, Eval: evalSqrt[T], Partials: partialsSqrt[T]},
		{Op: core.SIN, Eval: evalSin[T], Partials: partialsSin[T]},
		{Op: core.COS, Eval: evalCos[T], Partials: partialsCos[T]},
		{Op: core.TAN, Eval: evalTan[T], Partials: partialsTan[T]},
		{Op: core.ASIN, Eval: evalAsin[T], Partials: partialsAsin[T]},
		{Op: core.ACOS, Eval: evalAcos[T], Partials: partialsAcos[T]},
		{Op: core.ATAN, Eval: evalAtan[T], Partials: partialsAtan[T]},
		{Op: core.STEP, Eval: evalStep[T], Partials: partialsStep[T]},
		{Op: core.FLOOR, Eval: evalFloor[T], Partials: partialsFloor[T]},
		{Op: core.CEIL, Eval: evalCeil[T], Partials: partialsCeil[T]},
		{Op: core.EQUALITY, Eval: evalEquality[T], Partials: partialsEquality[T]},
		{Op: core.ERF, Eval: evalErf[T], Partials: partialsErf[T]},
		{Op: core.FMIN, Eval: evalFmin[T], Partials: partialsFmin[T]},
		{Op: core.FMAX, Eval: evalFmax[T], Partials: partialsFmax[T]},
		{Op: core.INV, Eval: evalInv[T], Partials: partialsInv[T]},
		{Op: core.SINH, Eval: evalSinh[T], Partials: partialsSinh[T]},
		{Op: core.COSH, Eval: evalCosh[T], Partials: partialsCosh[T]},
		{Op: core.TANH, Eval: evalTanh[T], Partials: partialsTanh[T]},
		{Op: core.PRINTME, Eval: evalPrintme[T], Partials: partialsPrintme[T]},
	}
}
