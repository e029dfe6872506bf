// Copyright 2025 The CasADi-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package symbolic provides Node, a minimal symbolic-expression operand
// type satisfying opalgebra.Value[*Node]. It exists to exercise the full
// dispatch surface the way a real expression-graph layer would (spec §6:
// "To expression-graph and AD layers") without implementing one:
// simplification beyond per-op zero-absorption, sparsity inference, and
// code generation stay out of scope per spec.md's Non-goals.
//
// Structurally identical subexpressions are interned through a bounded
// LRU cache so repeated construction of the same node (e.g. re-deriving
// d/dx of x*x twice) shares one *Node rather than allocating a duplicate —
// the one piece of common-subexpression handling this core's contract
// exists to make possible in a consumer, per spec §6.
package symbolic
