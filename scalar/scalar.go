package scalar

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/mbharadwaj13/casadi/internal/opalgebra"
)

// V is a concrete scalar operand type satisfying opalgebra.Value[V[F]]
// for any F in constraints.Float (float32 or float64). Elementary
// functions are computed in float64 and cast back to F, matching how a
// single C++ template specialises over built-in floating-point types in
// the source this algebra was distilled from.
type V[F constraints.Float] struct {
	X F
}

// F64 constructs a float64-backed operand.
func F64(x float64) V[float64] { return V[float64]{X: x} }

// F32 constructs a float32-backed operand.
func F32(x float32) V[float32] { return V[float32]{X: x} }

func (v V[F]) f64() float64 { return float64(v.X) }
func of[F constraints.Float](x float64) V[F] {
	return V[F]{X: F(x)}
}

func (v V[F]) Add(o V[F]) V[F] { return V[F]{X: v.X + o.X} }
func (v V[F]) Sub(o V[F]) V[F] { return V[F]{X: v.X - o.X} }
func (v V[F]) Mul(o V[F]) V[F] { return V[F]{X: v.X * o.X} }
func (v V[F]) Div(o V[F]) V[F] { return V[F]{X: v.X / o.X} }
func (v V[F]) Neg() V[F]       { return V[F]{X: -v.X} }

func (v V[F]) Exp() V[F]  { return of[F](math.Exp(v.f64())) }
func (v V[F]) Log() V[F]  { return of[F](math.Log(v.f64())) }
func (v V[F]) Sqrt() V[F] { return of[F](math.Sqrt(v.f64())) }
func (v V[F]) Sin() V[F]  { return of[F](math.Sin(v.f64())) }
func (v V[F]) Cos() V[F]  { return of[F](math.Cos(v.f64())) }
func (v V[F]) Tan() V[F]  { return of[F](math.Tan(v.f64())) }
func (v V[F]) Asin() V[F] { return of[F](math.Asin(v.f64())) }
func (v V[F]) Acos() V[F] { return of[F](math.Acos(v.f64())) }
func (v V[F]) Atan() V[F] { return of[F](math.Atan(v.f64())) }
func (v V[F]) Sinh() V[F] { return of[F](math.Sinh(v.f64())) }
func (v V[F]) Cosh() V[F] { return of[F](math.Cosh(v.f64())) }
func (v V[F]) Tanh() V[F] { return of[F](math.Tanh(v.f64())) }
func (v V[F]) Erf() V[F]  { return of[F](math.Erf(v.f64())) }

func (v V[F]) Pow(o V[F]) V[F]  { return of[F](math.Pow(v.f64(), o.f64())) }
func (v V[F]) Fmin(o V[F]) V[F] { return of[F](math.Min(v.f64(), o.f64())) }
func (v V[F]) Fmax(o V[F]) V[F] { return of[F](math.Max(v.f64(), o.f64())) }
func (v V[F]) Floor() V[F]      { return of[F](math.Floor(v.f64())) }
func (v V[F]) Ceil() V[F]       { return of[F](math.Ceil(v.f64())) }

func (v V[F]) GE(o V[F]) V[F] {
	if v.X >= o.X {
		return V[F]{X: 1}
	}
	return V[F]{X: 0}
}

func (v V[F]) LE(o V[F]) V[F] {
	if v.X <= o.X {
		return V[F]{X: 1}
	}
	return V[F]{X: 0}
}

func (v V[F]) Eq(o V[F]) V[F] {
	if v.X == o.X {
		return V[F]{X: 1}
	}
	return V[F]{X: 0}
}

func (v V[F]) Const(n int) V[F] { return V[F]{X: F(n)} }

func (v V[F]) ConstFloat(f float64) V[F] { return V[F]{X: F(f)} }

// OnPrintme emits a diagnostic only when F is float64 and the withprintme
// build tag is active, matching the CasADi C++ source's own float64-only
// PRINTME specialization (spec §9, SPEC_FULL.md's SUPPLEMENTED FEATURES).
// Every other F is a no-op, checked at runtime since Go generics have no
// partial specialization over a type parameter's concrete instantiation.
func (v V[F]) OnPrintme(y V[F]) {
	if !opalgebra.PrintmeEnabled {
		return
	}
	if _, isFloat64 := any(v.X).(float64); isFloat64 {
		opalgebra.EmitPrintme(float64(y.X))
	}
}
