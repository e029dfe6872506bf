package dual

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbharadwaj13/casadi/opalgebra"
)

func TestMulTangent(t *testing.T) {
	// f(x) = x*x at x=3: f=9, f'=2x=6.
	x := New(3, 1)
	f, d0, _ := opalgebra.EvalAndPartials(opalgebra.MUL, x, x)
	assert.Equal(t, 9.0, f.Value)
	assert.Equal(t, 3.0, d0.Value) // d0 = y = x = 3, matching MUL's rule
	// The tangent field on f itself (forward-mode chain rule through Mul)
	// carries d(x^2)/dx evaluated via Dual arithmetic directly:
	fx := x.Mul(x)
	assert.Equal(t, 6.0, fx.Tangent)
}

func TestSinEvalAndPartials(t *testing.T) {
	x := New(0, 1)
	f, d0, _ := opalgebra.EvalAndPartials(opalgebra.SIN, x, Const(0))
	assert.InDelta(t, 0.0, f.Value, 1e-12)
	assert.InDelta(t, 1.0, d0.Value, 1e-12)
}

func TestPowChainRule(t *testing.T) {
	x := New(2, 1)
	y := Const(3)
	f := x.Pow(y)
	assert.InDelta(t, 8.0, f.Value, 1e-9)
	assert.InDelta(t, 12.0, f.Tangent, 1e-9) // d(x^3)/dx at x=2 is 3*x^2=12
}

func TestFminTakesSmallerOperand(t *testing.T) {
	a, b := New(1, 10), New(2, 20)
	assert.Equal(t, a, a.Fmin(b))
	assert.Equal(t, b, b.Fmax(a))
}
