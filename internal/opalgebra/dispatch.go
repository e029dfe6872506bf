package opalgebra

import "github.com/mbharadwaj13/casadi/internal/opalgebra/core"

// OpCode re-exports the catalogue tag so callers of this package don't
// need to import internal/opalgebra/core directly.
type OpCode = core.OpCode

// Eval applies op's numeric rule to (x, y). For unary ops y is ignored but
// must be a well-formed T.
func Eval[T core.Value[T]](op OpCode, x, y T) T {
	return tableFor[T]().eval[op](x, y)
}

// Partials returns (d0, d1) for op given x, y, and the already-computed f.
// d1 is zero for unary ops.
func Partials[T core.Value[T]](op OpCode, x, y, f T) (T, T) {
	return tableFor[T]().partials[op](x, y, f)
}

// EvalAndPartials computes f, then (d0, d1) from that same f — the
// ordering contract spec §4.2 requires, since DIV, EXP, INV, SQRT and
// TANH express their partials in terms of f. Input references and
// the output may alias safely: f is a local value, not a pointer into x
// or y.
func EvalAndPartials[T core.Value[T]](op OpCode, x, y T) (f, d0, d1 T) {
	table := tableFor[T]()
	f = table.eval[op](x, y)
	d0, d1 = table.partials[op](x, y, f)
	return f, d0, d1
}

// Arity returns 1 or 2, the number of operands op consumes.
func Arity(op OpCode) int { return core.Descriptor(op).Arity }

// IsCommutative reports whether op is commutative (spec §3: describes the
// mathematical operation, not the evaluator; see EQUALITY's recorded
// value in spec.md §9).
func IsCommutative(op OpCode) bool { return core.Descriptor(op).Commutative }

// F00IsZero reports whether op's output is exactly zero when both
// operands are zero.
func F00IsZero(op OpCode) bool { return core.Descriptor(op).F00IsZero }

// F0xIsZero reports whether op's output is exactly zero when only the
// first operand is zero.
func F0xIsZero(op OpCode) bool { return core.Descriptor(op).F0xIsZero }

// Fx0IsZero reports whether op's output is exactly zero when only the
// second operand is zero.
func Fx0IsZero(op OpCode) bool { return core.Descriptor(op).Fx0IsZero }
