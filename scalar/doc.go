// Copyright 2025 The CasADi-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides the concrete floating-point operand type for
// opalgebra: V[F], generic over any constraints.Float, satisfying the
// opalgebra.Value constraint so both float32 and float64 are exercised by
// a single implementation rather than two hand-duplicated ones.
package scalar
