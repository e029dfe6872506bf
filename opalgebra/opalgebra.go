// Copyright 2025 The CasADi-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package opalgebra is the public surface of the symbolic scalar-operation
// algebra: a closed catalogue of built-in operations (ADD, SIN, POW, …),
// each with a numeric evaluator, a first-order partial-derivative rule,
// and a pretty-print grammar, dispatched generically over any operand
// type T that implements the Value constraint.
//
// Example:
//
//	import (
//	    "github.com/mbharadwaj13/casadi/opalgebra"
//	    "github.com/mbharadwaj13/casadi/scalar"
//	)
//
//	func main() {
//	    x, y := scalar.F64(2), scalar.F64(3)
//	    f, d0, d1 := opalgebra.EvalAndPartials(opalgebra.POW, x, y)
//	    _ = f  // 8
//	    _ = d0 // 12
//	    _ = d1 // log(2)*8
//	}
package opalgebra

import (
	"io"

	"go.uber.org/zap"

	"github.com/mbharadwaj13/casadi/internal/opalgebra"
	"github.com/mbharadwaj13/casadi/internal/opalgebra/core"
)

// SetLogger installs l as the destination for table-construction events
// and, in builds tagged withprintme, the PRINTME diagnostic side channel.
// Passing nil restores the default no-op sink.
func SetLogger(l *zap.SugaredLogger) {
	opalgebra.SetLogger(l)
}

// OpCode identifies one built-in scalar operation (spec §3).
type OpCode = core.OpCode

// The closed set of built-in scalar operations.
const (
	ADD      = core.ADD
	SUB      = core.SUB
	MUL      = core.MUL
	DIV      = core.DIV
	NEG      = core.NEG
	EXP      = core.EXP
	LOG      = core.LOG
	POW      = core.POW
	CONSTPOW = core.CONSTPOW
	SQRT     = core.SQRT
	SIN      = core.SIN
	COS      = core.COS
	TAN      = core.TAN
	ASIN     = core.ASIN
	ACOS     = core.ACOS
	ATAN     = core.ATAN
	STEP     = core.STEP
	FLOOR    = core.FLOOR
	CEIL     = core.CEIL
	EQUALITY = core.EQUALITY
	ERF      = core.ERF
	FMIN     = core.FMIN
	FMAX     = core.FMAX
	INV      = core.INV
	SINH     = core.SINH
	COSH     = core.COSH
	TANH     = core.TANH
	PRINTME  = core.PRINTME

	// NumBuiltInOps is the cardinality of OpCode.
	NumBuiltInOps = core.NumBuiltInOps
)

// Value is the arithmetic surface an operand type T must implement to be
// usable with Eval, Partials, and EvalAndPartials (spec §3).
type Value[T any] = core.Value[T]

// Eval applies op's numeric rule to (x, y). For unary ops y is ignored.
func Eval[T Value[T]](op OpCode, x, y T) T {
	return opalgebra.Eval(op, x, y)
}

// Partials returns (d0, d1) for op given x, y, and the already-computed f.
func Partials[T Value[T]](op OpCode, x, y, f T) (T, T) {
	return opalgebra.Partials(op, x, y, f)
}

// EvalAndPartials computes f, then (d0, d1) from that same f. This is the
// canonical entry point: several derivative rules (DIV, EXP, INV, SQRT,
// TANH) are expressed in terms of f, so this must be used whenever both
// are needed rather than calling Eval then Partials independently with a
// stale f.
func EvalAndPartials[T Value[T]](op OpCode, x, y T) (f, d0, d1 T) {
	return opalgebra.EvalAndPartials(op, x, y)
}

// Arity returns 1 or 2, the number of operands op consumes.
func Arity(op OpCode) int { return opalgebra.Arity(op) }

// IsCommutative reports whether op is commutative.
func IsCommutative(op OpCode) bool { return opalgebra.IsCommutative(op) }

// F00IsZero reports whether op's output is exactly zero when both
// operands are zero.
func F00IsZero(op OpCode) bool { return opalgebra.F00IsZero(op) }

// F0xIsZero reports whether op's output is exactly zero when only the
// first operand is zero.
func F0xIsZero(op OpCode) bool { return opalgebra.F0xIsZero(op) }

// Fx0IsZero reports whether op's output is exactly zero when only the
// second operand is zero.
func Fx0IsZero(op OpCode) bool { return opalgebra.Fx0IsZero(op) }

// Print renders op's print grammar applied to xRepr (and yRepr, for
// binary ops) to stream.
func Print(op OpCode, stream io.Writer, xRepr, yRepr string) {
	opalgebra.Print(op, stream, xRepr, yRepr)
}

// PrintString renders op's print grammar applied to xRepr and yRepr,
// returning the result directly.
func PrintString(op OpCode, xRepr, yRepr string) string {
	return opalgebra.PrintString(op, xRepr, yRepr)
}
