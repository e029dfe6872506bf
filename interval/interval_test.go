package interval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbharadwaj13/casadi/opalgebra"
)

func TestAddEnclosure(t *testing.T) {
	f := opalgebra.Eval(opalgebra.ADD, New(1, 2), New(10, 20))
	assert.Equal(t, Interval{11, 22}, f)
}

func TestMulZeroAbsorption(t *testing.T) {
	f := opalgebra.Eval(opalgebra.MUL, Point(0), New(-5, 5))
	assert.Equal(t, Interval{0, 0}, f)
}

func TestSinEnclosesExtremum(t *testing.T) {
	// [0, pi] contains the maximum of sin at pi/2.
	f := opalgebra.Eval(opalgebra.SIN, New(0, math.Pi), Point(0))
	assert.InDelta(t, 0, f.Lo, 1e-9)
	assert.InDelta(t, 1, f.Hi, 1e-9)
}

func TestGEThreeValued(t *testing.T) {
	assert.Equal(t, Interval{1, 1}, opalgebra.Eval(opalgebra.STEP, New(3, 5), Point(0)))
	assert.Equal(t, Interval{0, 0}, opalgebra.Eval(opalgebra.STEP, New(-5, -3), Point(0)))
	assert.Equal(t, Interval{0, 1}, opalgebra.Eval(opalgebra.STEP, New(-1, 1), Point(0)))
}

func TestCoshStraddlingZero(t *testing.T) {
	f := opalgebra.Eval(opalgebra.COSH, New(-1, 2), Point(0))
	assert.Equal(t, 1.0, f.Lo)
	assert.InDelta(t, math.Cosh(2), f.Hi, 1e-9)
}
