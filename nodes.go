package calc

import (
	"math"
	"strings"
)

// node is a node in the tree form of an expression.
type node struct {
	kind nodeKind

	// text and val are the literal and parsed value of a nodeNum.
	text string
	val  float64
	// op is the catalog operator of a nodeBin.
	op Operator

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // literal value
	nodeNeg // evaluate left, then negate
	nodeBin // evaluate left and right, combine via op
)

// eval computes the subtree's value.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeNeg:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return normalizeZero(-v), nil
	case nodeBin:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		y, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		v, err := n.op.Apply(x, y)
		if err != nil {
			return 0, err
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, &InvalidExpressionError{Expr: n.String(), Reason: "result is not finite"}
		}
		return v, nil
	default:
		panic("calc: invalid tree node")
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes the fully parenthesized form of the subtree.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(n.text)
	case nodeNeg:
		b.WriteString("(-")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeBin:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(n.op.Symbol)
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
	}
}
