package calc

import "strconv"

// Expr = Term | Expr op Expr
// Term = num | '-' Term | '(' Expr ')'
//
// op is any catalog operator. All operators are left-associative and bind
// per catalog rank, and a sign binds tighter than any of them, so -2^2 is
// (-2)^2. A sign is only legal at the start of the input or of a
// parenthesized group, never directly after another operator.

// Expr is a parsed expression that can be evaluated repeatedly.
type Expr struct {
	n *node
}

// Parse parses src into an expression tree. It accepts every expression
// Evaluate does; in addition it ignores whitespace between tokens and lets a
// parenthesized group reduce to a negative value after any operator, not
// only where the string form permits a sign.
func Parse(src string) (*Expr, error) {
	scan := newLexer(src)
	n, err := parseExpr(scan, len(catalog), true)
	if err != nil {
		return nil, err
	}
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenEOF {
		return nil, &InvalidExpressionError{
			Expr:   src,
			Col:    tok.pos,
			Reason: "unexpected " + strconv.Quote(tok.text) + " after expression",
		}
	}
	return &Expr{n: n}, nil
}

// Eval computes the expression's value.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// String returns the fully parenthesized form of the expression.
func (e *Expr) String() string {
	return e.n.String()
}

// EvalString is a shortcut to parse and evaluate an expression in one call.
func EvalString(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// parseExpr parses a subexpression whose binary operators all rank tighter
// than until. sign reports whether a unary sign may start the subexpression.
func parseExpr(scan *lexer, until int, sign bool) (*node, error) {
	n, err := parseTerm(scan, sign)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp {
			scan.push(tok)
			return n, nil
		}
		op, rank := binaryOp(tok.text)
		if rank >= until {
			scan.push(tok)
			return n, nil
		}
		rhs, err := parseExpr(scan, rank, false)
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeBin, op: op, left: n, right: rhs}
	}
}

// parseTerm parses a single term: a literal, a signed term, or a
// parenthesized subexpression.
func parseTerm(scan *lexer, sign bool) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := parseLiteral(tok.text)
		if err != nil {
			return nil, &InvalidExpressionError{Expr: scan.input, Col: tok.pos, Reason: "invalid numeric literal " + strconv.Quote(tok.text)}
		}
		return &node{kind: nodeNum, text: tok.text, val: v}, nil
	case tokenOp:
		if !sign || tok.text != "-" {
			return nil, &InvalidExpressionError{Expr: scan.input, Col: tok.pos, Reason: "operator " + strconv.Quote(tok.text) + " where a value was expected"}
		}
		n, err := parseTerm(scan, false)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: n}, nil
	case tokenOpen:
		n, err := parseExpr(scan, len(catalog), true)
		if err != nil {
			return nil, err
		}
		end, err := scan.next()
		if err != nil {
			return nil, err
		}
		if end.kind != tokenClose {
			return nil, &InvalidExpressionError{Expr: scan.input, Col: end.pos, Reason: "unclosed parenthesis"}
		}
		return n, nil
	case tokenClose:
		return nil, &InvalidExpressionError{Expr: scan.input, Col: tok.pos, Reason: "empty or misplaced parentheses"}
	case tokenEOF:
		return nil, &InvalidExpressionError{Expr: scan.input, Col: tok.pos, Reason: "no expression"}
	default:
		panic("calc: unknown token: " + tok.String())
	}
}

// binaryOp returns the catalog operator for a token and its precedence rank.
func binaryOp(symbol string) (Operator, int) {
	for rank, op := range catalog {
		if op.Symbol == symbol {
			return op, rank
		}
	}
	panic("calc: operator token " + strconv.Quote(symbol) + " not in catalog")
}
