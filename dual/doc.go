// Copyright 2025 The CasADi-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides a forward-mode automatic-differentiation operand
// type, Dual, satisfying opalgebra.Value[Dual]. It demonstrates the
// algebra behaving uniformly over a non-floating-point-literal operand
// domain (spec §1, §3's "forward-mode AD tuples").
package dual
