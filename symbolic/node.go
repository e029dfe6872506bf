package symbolic

import (
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mbharadwaj13/casadi/opalgebra"
)

// compareKind marks the non-catalogue comparison nodes (spec §3: "a value
// convertible to T") that GE, LE, and Eq build. These never appear as
// OpCode values; they only exist inside *Node's own graph.
type compareKind uint8

const (
	notCompare compareKind = iota
	compareGE
	compareLE
	compareEq
)

// Node is a symbolic expression: either a leaf (a named variable or a
// numeric constant) or an operator node built by a Value[*Node] method
// call, with up to two children.
type Node struct {
	// Leaf fields.
	isVar   bool
	name    string
	isConst bool
	value   float64

	// Operator fields.
	op       opalgebra.OpCode
	compare  compareKind
	children [2]*Node
}

var internCache *lru.Cache[string, *Node]

func init() {
	c, err := lru.New[string, *Node](4096)
	if err != nil {
		panic("symbolic: failed to construct subexpression cache: " + err.Error())
	}
	internCache = c
}

// Var constructs a named variable leaf.
func Var(name string) *Node {
	return intern(&Node{isVar: true, name: name}, "var:"+name)
}

// Const constructs a numeric constant leaf.
func Const(value float64) *Node {
	return intern(&Node{isConst: true, value: value}, "const:"+strconv.FormatFloat(value, 'g', -1, 64))
}

func binary(op opalgebra.OpCode, left, right *Node) *Node {
	key := fmt.Sprintf("op:%d(%p,%p)", op, left, right)
	return intern(&Node{op: op, children: [2]*Node{left, right}}, key)
}

func compareNode(kind compareKind, left, right *Node) *Node {
	key := fmt.Sprintf("cmp:%d(%p,%p)", kind, left, right)
	return intern(&Node{compare: kind, children: [2]*Node{left, right}}, key)
}

// intern returns the cached node for key if one already exists,
// otherwise publishes n under key and returns n. Structural sharing keeps
// repeated derivations of the same subexpression from allocating copies.
func intern(n *Node, key string) *Node {
	if existing, ok := internCache.Get(key); ok {
		return existing
	}
	internCache.Add(key, n)
	return n
}

// IsLeaf reports whether n is a variable or constant with no children.
func (n *Node) IsLeaf() bool { return n.isVar || n.isConst }

// Name returns the variable name, or "" if n is not a variable leaf.
func (n *Node) Name() string { return n.name }

// ConstValue returns (value, true) if n is a constant leaf.
func (n *Node) ConstValue() (float64, bool) { return n.value, n.isConst }

func (n *Node) Add(o *Node) *Node  { return binary(opalgebra.ADD, n, o) }
func (n *Node) Sub(o *Node) *Node  { return binary(opalgebra.SUB, n, o) }
func (n *Node) Mul(o *Node) *Node  { return binary(opalgebra.MUL, n, o) }
func (n *Node) Div(o *Node) *Node  { return binary(opalgebra.DIV, n, o) }
func (n *Node) Neg() *Node         { return binary(opalgebra.NEG, n, nil) }
func (n *Node) Exp() *Node         { return binary(opalgebra.EXP, n, nil) }
func (n *Node) Log() *Node         { return binary(opalgebra.LOG, n, nil) }
func (n *Node) Sqrt() *Node        { return binary(opalgebra.SQRT, n, nil) }
func (n *Node) Sin() *Node         { return binary(opalgebra.SIN, n, nil) }
func (n *Node) Cos() *Node         { return binary(opalgebra.COS, n, nil) }
func (n *Node) Tan() *Node         { return binary(opalgebra.TAN, n, nil) }
func (n *Node) Asin() *Node        { return binary(opalgebra.ASIN, n, nil) }
func (n *Node) Acos() *Node        { return binary(opalgebra.ACOS, n, nil) }
func (n *Node) Atan() *Node        { return binary(opalgebra.ATAN, n, nil) }
func (n *Node) Sinh() *Node        { return binary(opalgebra.SINH, n, nil) }
func (n *Node) Cosh() *Node        { return binary(opalgebra.COSH, n, nil) }
func (n *Node) Tanh() *Node        { return binary(opalgebra.TANH, n, nil) }
func (n *Node) Erf() *Node         { return binary(opalgebra.ERF, n, nil) }
func (n *Node) Pow(o *Node) *Node  { return binary(opalgebra.POW, n, o) }
func (n *Node) Fmin(o *Node) *Node { return binary(opalgebra.FMIN, n, o) }
func (n *Node) Fmax(o *Node) *Node { return binary(opalgebra.FMAX, n, o) }
func (n *Node) Floor() *Node       { return binary(opalgebra.FLOOR, n, nil) }
func (n *Node) Ceil() *Node        { return binary(opalgebra.CEIL, n, nil) }

func (n *Node) GE(o *Node) *Node { return compareNode(compareGE, n, o) }
func (n *Node) LE(o *Node) *Node { return compareNode(compareLE, n, o) }
func (n *Node) Eq(o *Node) *Node { return compareNode(compareEq, n, o) }

func (n *Node) Const(v int) *Node          { return Const(float64(v)) }
func (n *Node) ConstFloat(v float64) *Node { return Const(v) }

// OnPrintme is a no-op: diagnostic emission is only wired for scalar.V[float64].
func (n *Node) OnPrintme(*Node) {}

// String renders n using the print grammar from spec §4.2, recursing into
// children. Variable and constant leaves render as their own text.
func (n *Node) String() string {
	switch {
	case n.isVar:
		return n.name
	case n.isConst:
		return strconv.FormatFloat(n.value, 'g', -1, 64)
	case n.compare != notCompare:
		return n.compareString()
	default:
		left := n.children[0].String()
		right := ""
		if opalgebra.Arity(n.op) == 2 {
			right = n.children[1].String()
		}
		return opalgebra.PrintString(n.op, left, right)
	}
}

func (n *Node) compareString() string {
	sym := map[compareKind]string{compareGE: ">=", compareLE: "<=", compareEq: "=="}[n.compare]
	return "(" + n.children[0].String() + sym + n.children[1].String() + ")"
}
