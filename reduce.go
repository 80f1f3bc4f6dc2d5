package calc

import (
	"math"
	"strconv"
	"strings"
)

// Evaluate reduces an infix arithmetic expression to a single value. It
// resolves parenthesized groups innermost-first, then collapses binary
// subexpressions in catalog precedence order until one literal remains.
// Leading and trailing spaces, tabs, and line breaks are ignored.
func Evaluate(expr string) (float64, error) {
	expr = strings.Trim(expr, " \t\r\n")
	if expr == "" {
		return 0, &InvalidExpressionError{Expr: expr, Reason: "no expression"}
	}
	lit, err := reduce(expr)
	if err != nil {
		return 0, err
	}
	return parseLiteral(lit)
}

// reduce resolves parentheses and then operators, returning the canonical
// literal the expression reduces to.
func reduce(expr string) (string, error) {
	for {
		i := strings.IndexByte(expr, '(')
		if i < 0 {
			break
		}
		j, err := matchParen(expr, i)
		if err != nil {
			return "", err
		}
		inner := expr[i+1 : j]
		if inner == "" {
			return "", &InvalidExpressionError{Expr: expr, Col: i + 1, Reason: "empty parentheses"}
		}
		if i > 0 && isNumChar(expr[i-1]) {
			return "", &InvalidExpressionError{Expr: expr, Col: i + 1, Reason: "missing operator before parenthesis"}
		}
		if j+1 < len(expr) && isNumChar(expr[j+1]) {
			return "", &InvalidExpressionError{Expr: expr, Col: j + 2, Reason: "missing operator after parenthesis"}
		}
		lit, err := reduce(inner)
		if err != nil {
			return "", err
		}
		expr = splice(expr, i, j+1, lit)
	}
	if k := strings.IndexByte(expr, ')'); k >= 0 {
		return "", &InvalidExpressionError{Expr: expr, Col: k + 1, Reason: "unmatched closing parenthesis"}
	}
	return reduceFlat(expr)
}

// matchParen returns the index of the closing parenthesis matching the
// opening one at index i.
func matchParen(expr string, i int) (int, error) {
	depth := 1
	for j := i + 1; j < len(expr); j++ {
		switch expr[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, &InvalidExpressionError{Expr: expr, Col: i + 1, Reason: "unmatched opening parenthesis"}
}

// reduceFlat collapses a parenthesis-free expression one binary
// subexpression at a time, in catalog precedence order. Every step consumes
// the operator it matched, so the loop terminates on any input.
func reduceFlat(expr string) (string, error) {
	for _, op := range catalog {
		for {
			i := indexOperator(expr, op.Symbol)
			if i < 0 {
				break
			}
			next, err := reduceAt(expr, op, i)
			if err != nil {
				return "", err
			}
			expr = next
		}
	}
	if _, err := parseLiteral(expr); err != nil {
		return "", err
	}
	return expr, nil
}

// indexOperator finds symbol in expr, never at index 0: the first character
// of a flat expression is the sign or first digit of the first operand, not
// a binary operator.
func indexOperator(expr, symbol string) int {
	if len(expr) < 2 {
		return -1
	}
	i := strings.Index(expr[1:], symbol)
	if i < 0 {
		return -1
	}
	return i + 1
}

// reduceAt collapses the binary subexpression around the operator at index i
// and splices the formatted result back into expr.
func reduceAt(expr string, op Operator, i int) (string, error) {
	lb, err := leftOperandStart(expr, i)
	if err != nil {
		return "", err
	}
	rb, err := rightOperandEnd(expr, i+1)
	if err != nil {
		return "", err
	}
	x, err := parseLiteral(expr[lb:i])
	if err != nil {
		return "", err
	}
	y, err := parseLiteral(expr[i+1 : rb])
	if err != nil {
		return "", err
	}
	v, err := op.Apply(x, y)
	if err != nil {
		return "", err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "", &InvalidExpressionError{Expr: expr, Col: i + 1, Reason: "result is not finite"}
	}
	lit := formatValue(v)
	// Substituting a negative result right after a binary '+' leaves a "+-"
	// pair behind; collapse it to a single '-' so later operator scans see a
	// well-formed expression. A '+' at index 0 is not a binary operator and
	// must stay put so the leftover is rejected as a literal.
	if lb > 1 && expr[lb-1] == '+' && lit[0] == '-' {
		lb--
	}
	return splice(expr, lb, rb, lit), nil
}

// leftOperandStart scans left from the operator at index i to the start of
// its left operand. A '-' directly before the operand belongs to it only
// when it cannot be a binary operator, i.e. at the very start of the
// expression.
func leftOperandStart(expr string, i int) (int, error) {
	lb := i
	for lb > 0 && isNumChar(expr[lb-1]) {
		lb--
	}
	if lb == i {
		return 0, &InvalidExpressionError{Expr: expr, Col: i + 1, Reason: "missing left operand"}
	}
	if lb == 1 && expr[0] == '-' {
		lb = 0
	}
	return lb, nil
}

// rightOperandEnd scans right from index i to the end of the operand
// starting there.
func rightOperandEnd(expr string, i int) (int, error) {
	rb := i
	for rb < len(expr) && isNumChar(expr[rb]) {
		rb++
	}
	if rb == i {
		return 0, &InvalidExpressionError{Expr: expr, Col: i + 1, Reason: "missing right operand"}
	}
	return rb, nil
}

// splice replaces expr[lb:rb] with lit.
func splice(expr string, lb, rb int, lit string) string {
	return expr[:lb] + lit + expr[rb:]
}

// parseLiteral parses a plain decimal literal, optionally signed. Exponent,
// inf, and nan spellings are not part of the expression grammar.
func parseLiteral(s string) (float64, error) {
	digits := s
	if strings.HasPrefix(digits, "-") {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, &InvalidExpressionError{Expr: s, Reason: "missing numeric literal"}
	}
	for k := 0; k < len(digits); k++ {
		if !isNumChar(digits[k]) {
			return 0, &InvalidExpressionError{Expr: s, Reason: "not a numeric literal"}
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &InvalidExpressionError{Expr: s, Reason: "not a numeric literal"}
	}
	return normalizeZero(v), nil
}

// formatValue renders a value in plain decimal notation. Scientific notation
// would put operator bytes inside a literal, so it is never used.
func formatValue(v float64) string {
	return strconv.FormatFloat(normalizeZero(v), 'f', -1, 64)
}

func isNumChar(c byte) bool {
	return c == '.' || '0' <= c && c <= '9'
}
