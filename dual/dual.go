package dual

import "math"

// Dual is a forward-mode automatic-differentiation pair: a value and its
// tangent (derivative) with respect to some fixed, implicit independent
// variable. Arithmetic and elementary functions propagate the tangent via
// the standard chain rule.
type Dual struct {
	Value   float64
	Tangent float64
}

// New constructs a Dual with an explicit tangent. New(x, 0) represents a
// constant; New(x, 1) represents the independent variable itself.
func New(value, tangent float64) Dual { return Dual{Value: value, Tangent: tangent} }

// Const constructs a Dual constant (tangent 0).
func Const(value float64) Dual { return Dual{Value: value} }

func (d Dual) Add(o Dual) Dual { return Dual{d.Value + o.Value, d.Tangent + o.Tangent} }
func (d Dual) Sub(o Dual) Dual { return Dual{d.Value - o.Value, d.Tangent - o.Tangent} }
func (d Dual) Mul(o Dual) Dual {
	return Dual{d.Value * o.Value, d.Tangent*o.Value + d.Value*o.Tangent}
}
func (d Dual) Div(o Dual) Dual {
	return Dual{d.Value / o.Value, (d.Tangent*o.Value - d.Value*o.Tangent) / (o.Value * o.Value)}
}
func (d Dual) Neg() Dual { return Dual{-d.Value, -d.Tangent} }

func (d Dual) Exp() Dual { e := math.Exp(d.Value); return Dual{e, d.Tangent * e} }
func (d Dual) Log() Dual { return Dual{math.Log(d.Value), d.Tangent / d.Value} }
func (d Dual) Sqrt() Dual {
	s := math.Sqrt(d.Value)
	return Dual{s, d.Tangent / (2 * s)}
}
func (d Dual) Sin() Dual { return Dual{math.Sin(d.Value), d.Tangent * math.Cos(d.Value)} }
func (d Dual) Cos() Dual { return Dual{math.Cos(d.Value), -d.Tangent * math.Sin(d.Value)} }
func (d Dual) Tan() Dual {
	c := math.Cos(d.Value)
	return Dual{math.Tan(d.Value), d.Tangent / (c * c)}
}
func (d Dual) Asin() Dual {
	return Dual{math.Asin(d.Value), d.Tangent / math.Sqrt(1-d.Value*d.Value)}
}
func (d Dual) Acos() Dual {
	return Dual{math.Acos(d.Value), -d.Tangent / math.Sqrt(1-d.Value*d.Value)}
}
func (d Dual) Atan() Dual {
	return Dual{math.Atan(d.Value), d.Tangent / (1 + d.Value*d.Value)}
}
func (d Dual) Sinh() Dual { return Dual{math.Sinh(d.Value), d.Tangent * math.Cosh(d.Value)} }
func (d Dual) Cosh() Dual { return Dual{math.Cosh(d.Value), d.Tangent * math.Sinh(d.Value)} }
func (d Dual) Tanh() Dual {
	t := math.Tanh(d.Value)
	return Dual{t, d.Tangent * (1 - t*t)}
}
func (d Dual) Erf() Dual {
	return Dual{math.Erf(d.Value), d.Tangent * 2 / math.Sqrt(math.Pi) * math.Exp(-d.Value*d.Value)}
}

// Pow applies the full two-argument chain rule:
// d(x^y) = y*x^(y-1)*dx + x^y*log(x)*dy.
func (d Dual) Pow(o Dual) Dual {
	fv := math.Pow(d.Value, o.Value)
	dx := o.Value * math.Pow(d.Value, o.Value-1) * d.Tangent
	dy := fv * math.Log(d.Value) * o.Tangent
	return Dual{fv, dx + dy}
}

func (d Dual) Fmin(o Dual) Dual {
	if d.Value <= o.Value {
		return d
	}
	return o
}
func (d Dual) Fmax(o Dual) Dual {
	if d.Value >= o.Value {
		return d
	}
	return o
}
func (d Dual) Floor() Dual { return Dual{math.Floor(d.Value), 0} }
func (d Dual) Ceil() Dual  { return Dual{math.Ceil(d.Value), 0} }

func (d Dual) GE(o Dual) Dual {
	if d.Value >= o.Value {
		return Dual{1, 0}
	}
	return Dual{0, 0}
}
func (d Dual) LE(o Dual) Dual {
	if d.Value <= o.Value {
		return Dual{1, 0}
	}
	return Dual{0, 0}
}
func (d Dual) Eq(o Dual) Dual {
	if d.Value == o.Value {
		return Dual{1, 0}
	}
	return Dual{0, 0}
}

func (d Dual) Const(n int) Dual          { return Dual{Value: float64(n)} }
func (d Dual) ConstFloat(f float64) Dual { return Dual{Value: f} }

// OnPrintme is a no-op: diagnostic emission is only wired for scalar.V[float64].
func (d Dual) OnPrintme(y Dual) {}
