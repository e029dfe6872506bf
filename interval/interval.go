package interval

import "math"

// Interval is a bounded value [Lo, Hi] (Lo <= Hi for any value produced by
// this package's own operations; constructing one with Lo > Hi is a
// caller error, same as supplying a malformed T to any other operand
// type). Comparisons return a three-valued enclosure: [1,1] ("always
// true" over the whole range), [0,0] ("always false"), or [0,1]
// ("indeterminate" — the ranges overlap).
type Interval struct {
	Lo, Hi float64
}

// Point constructs a degenerate interval [v, v].
func Point(v float64) Interval { return Interval{Lo: v, Hi: v} }

// New constructs [lo, hi].
func New(lo, hi float64) Interval { return Interval{Lo: lo, Hi: hi} }

func (v Interval) Add(o Interval) Interval { return Interval{v.Lo + o.Lo, v.Hi + o.Hi} }
func (v Interval) Sub(o Interval) Interval { return Interval{v.Lo - o.Hi, v.Hi - o.Lo} }
func (v Interval) Neg() Interval           { return Interval{-v.Hi, -v.Lo} }

func corners4(a, b, c, d float64) Interval {
	lo := math.Min(math.Min(a, b), math.Min(c, d))
	hi := math.Max(math.Max(a, b), math.Max(c, d))
	return Interval{lo, hi}
}

func (v Interval) Mul(o Interval) Interval {
	return corners4(v.Lo*o.Lo, v.Lo*o.Hi, v.Hi*o.Lo, v.Hi*o.Hi)
}

func (v Interval) Div(o Interval) Interval {
	return corners4(v.Lo/o.Lo, v.Lo/o.Hi, v.Hi/o.Lo, v.Hi/o.Hi)
}

// monotoneIncreasing applies a monotonically non-decreasing f to both
// endpoints.
func monotoneIncreasing(f func(float64) float64, v Interval) Interval {
	return Interval{f(v.Lo), f(v.Hi)}
}

// monotoneDecreasing applies a monotonically non-increasing f, swapping
// the endpoints.
func monotoneDecreasing(f func(float64) float64, v Interval) Interval {
	return Interval{f(v.Hi), f(v.Lo)}
}

func (v Interval) Exp() Interval  { return monotoneIncreasing(math.Exp, v) }
func (v Interval) Log() Interval  { return monotoneIncreasing(math.Log, v) }
func (v Interval) Sqrt() Interval { return monotoneIncreasing(math.Sqrt, v) }
func (v Interval) Atan() Interval { return monotoneIncreasing(math.Atan, v) }
func (v Interval) Asin() Interval { return monotoneIncreasing(math.Asin, v) }
func (v Interval) Acos() Interval { return monotoneDecreasing(math.Acos, v) }
func (v Interval) Sinh() Interval { return monotoneIncreasing(math.Sinh, v) }
func (v Interval) Tanh() Interval { return monotoneIncreasing(math.Tanh, v) }
func (v Interval) Erf() Interval  { return monotoneIncreasing(math.Erf, v) }

// Cosh is even and has its minimum at 0, so it is only monotone on either
// side of zero; when the interval straddles zero the enclosure must
// include cosh(0) = 1.
func (v Interval) Cosh() Interval {
	if v.Lo <= 0 && v.Hi >= 0 {
		return Interval{1, math.Max(math.Cosh(v.Lo), math.Cosh(v.Hi))}
	}
	return corners4(math.Cosh(v.Lo), math.Cosh(v.Hi), math.Cosh(v.Lo), math.Cosh(v.Hi))
}

// critsWhereZero enumerates x = phase + k*math.Pi within [lo, hi], the
// critical points of sin/cos (where the other's value is zero).
func critsWhereZero(phase, lo, hi float64) []float64 {
	var xs []float64
	k := math.Ceil((lo - phase) / math.Pi)
	for {
		x := phase + k*math.Pi
		if x > hi {
			break
		}
		if x >= lo {
			xs = append(xs, x)
		}
		k++
	}
	return xs
}

func enclosePeriodic(f func(float64) float64, critPhase float64, v Interval) Interval {
	lo, hi := math.Min(f(v.Lo), f(v.Hi)), math.Max(f(v.Lo), f(v.Hi))
	for _, x := range critsWhereZero(critPhase, v.Lo, v.Hi) {
		fx := f(x)
		lo, hi = math.Min(lo, fx), math.Max(hi, fx)
	}
	return Interval{lo, hi}
}

// Sin encloses sin over the interval by evaluating the endpoints plus any
// critical points (where cos(x) = 0, i.e. x = pi/2 + k*pi) inside it.
func (v Interval) Sin() Interval { return enclosePeriodic(math.Sin, math.Pi/2, v) }

// Cos encloses cos over the interval analogously, using cos's own
// critical points (where sin(x) = 0, i.e. x = k*pi).
func (v Interval) Cos() Interval { return enclosePeriodic(math.Cos, 0, v) }

// Tan is not enclosed across its asymptotes (x = pi/2 + k*pi); callers
// are expected to keep intervals within one branch, the same assumption
// the source's elementary functions make of their domain at the edges.
func (v Interval) Tan() Interval { return monotoneIncreasing(math.Tan, v) }

func (v Interval) Pow(o Interval) Interval {
	return corners4(
		math.Pow(v.Lo, o.Lo), math.Pow(v.Lo, o.Hi),
		math.Pow(v.Hi, o.Lo), math.Pow(v.Hi, o.Hi),
	)
}

func (v Interval) Fmin(o Interval) Interval {
	return Interval{math.Min(v.Lo, o.Lo), math.Min(v.Hi, o.Hi)}
}
func (v Interval) Fmax(o Interval) Interval {
	return Interval{math.Max(v.Lo, o.Lo), math.Max(v.Hi, o.Hi)}
}
func (v Interval) Floor() Interval { return Interval{math.Floor(v.Lo), math.Floor(v.Hi)} }
func (v Interval) Ceil() Interval  { return Interval{math.Ceil(v.Lo), math.Ceil(v.Hi)} }

func (v Interval) GE(o Interval) Interval {
	switch {
	case v.Lo >= o.Hi:
		return Interval{1, 1}
	case v.Hi < o.Lo:
		return Interval{0, 0}
	default:
		return Interval{0, 1}
	}
}

func (v Interval) LE(o Interval) Interval {
	switch {
	case v.Hi <= o.Lo:
		return Interval{1, 1}
	case v.Lo > o.Hi:
		return Interval{0, 0}
	default:
		return Interval{0, 1}
	}
}

func (v Interval) Eq(o Interval) Interval {
	if v.Lo == v.Hi && o.Lo == o.Hi && v.Lo == o.Lo {
		return Interval{1, 1}
	}
	if v.Hi < o.Lo || o.Hi < v.Lo {
		return Interval{0, 0}
	}
	return Interval{0, 1}
}

func (v Interval) Const(n int) Interval          { return Point(float64(n)) }
func (v Interval) ConstFloat(f float64) Interval { return Point(f) }

// OnPrintme is a no-op: diagnostic emission is only wired for scalar.V[float64].
func (v Interval) OnPrintme(y Interval) {}
