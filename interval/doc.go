// Copyright 2025 The CasADi-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package interval provides a bounded-value operand type, Interval,
// satisfying opalgebra.Value[Interval]. It demonstrates the algebra
// behaving uniformly over interval arithmetic (spec §1, §3's
// "interval/bounded values"), the conservative enclosure used by bounds
// propagation passes in higher layers this core is a dependency of.
package interval
