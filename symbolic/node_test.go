package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbharadwaj13/casadi/opalgebra"
)

func TestMulPrintsInfix(t *testing.T) {
	x := Var("mul-print-x")
	assert.Equal(t, "(mul-print-x*mul-print-x)", x.Mul(x).String())
}

func TestSqrtPrintsFunctionStyle(t *testing.T) {
	x := Var("sqrt-print-x")
	assert.Equal(t, "sqrt(sqrt-print-x)", x.Sqrt().String())
}

func TestInterningSharesIdenticalSubexpression(t *testing.T) {
	x := Var("intern-x")
	a := x.Mul(x)
	b := x.Mul(x)
	assert.Same(t, a, b)
}

func TestInterningDistinguishesDifferentVariables(t *testing.T) {
	x, y := Var("distinct-x"), Var("distinct-y")
	assert.NotSame(t, x, y)
	assert.NotSame(t, x.Mul(x), y.Mul(y))
}

func TestEvalAndPartialsBuildsDerivativeGraph(t *testing.T) {
	x := Var("pow-eval-x")
	two := Const(2)
	f, dx, _ := opalgebra.EvalAndPartials(opalgebra.POW, x, two)

	env := map[string]float64{"pow-eval-x": 3}
	got, err := f.Eval(env)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)

	gotDx, err := dx.Eval(env)
	require.NoError(t, err)
	assert.Equal(t, 6.0, gotDx)
}

func TestCompareNodePrintsAndEvaluates(t *testing.T) {
	x := Var("cmp-x")
	node := x.GE(Const(0))
	assert.Equal(t, "(cmp-x>=0)", node.String())

	got, err := node.Eval(map[string]float64{"cmp-x": 5})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = node.Eval(map[string]float64{"cmp-x": -5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestEvalMissingBindingErrors(t *testing.T) {
	x := Var("unbound-x")
	_, err := x.Eval(map[string]float64{})
	assert.Error(t, err)
}

func TestUnaryOpEvalIgnoresRightOperand(t *testing.T) {
	x := Var("neg-eval-x")
	got, err := x.Neg().Eval(map[string]float64{"neg-eval-x": 4})
	require.NoError(t, err)
	assert.Equal(t, -4.0, got)
}

func TestZeroAbsorptionStillBuildsAGraphForSymbolicMul(t *testing.T) {
	// Node never numerically absorbs: it records the operation and leaves
	// zero-folding to a consumer, since the catalogue's F0xIsZero/Fx0IsZero
	// descriptors are advisory metadata, not a mandate on every operand type.
	x := Var("zero-mul-x")
	node := Const(0).Mul(x)
	assert.False(t, node.IsLeaf())
	got, err := node.Eval(map[string]float64{"zero-mul-x": 7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}
