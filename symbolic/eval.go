package symbolic

import (
	"fmt"

	"github.com/mbharadwaj13/casadi/opalgebra"
	"github.com/mbharadwaj13/casadi/scalar"
)

// Eval numerically evaluates n by substituting env for every variable
// leaf and driving opalgebra.Eval with scalar.V[float64] operands — the
// same dispatch surface any other operand type uses, applied here to
// collapse a symbolic tree down to a number.
func (n *Node) Eval(env map[string]float64) (float64, error) {
	switch {
	case n.isVar:
		v, ok := env[n.name]
		if !ok {
			return 0, fmt.Errorf("symbolic: no binding for variable %q", n.name)
		}
		return v, nil
	case n.isConst:
		return n.value, nil
	case n.compare != notCompare:
		return n.evalCompare(env)
	default:
		left, err := n.children[0].Eval(env)
		if err != nil {
			return 0, err
		}
		right := 0.0
		if opalgebra.Arity(n.op) == 2 {
			right, err = n.children[1].Eval(env)
			if err != nil {
				return 0, err
			}
		}
		return opalgebra.Eval(n.op, scalar.F64(left), scalar.F64(right)).X, nil
	}
}

func (n *Node) evalCompare(env map[string]float64) (float64, error) {
	left, err := n.children[0].Eval(env)
	if err != nil {
		return 0, err
	}
	right, err := n.children[1].Eval(env)
	if err != nil {
		return 0, err
	}
	var truth bool
	switch n.compare {
	case compareGE:
		truth = left >= right
	case compareLE:
		truth = left <= right
	case compareEq:
		truth = left == right
	}
	if truth {
		return 1, nil
	}
	return 0, nil
}
