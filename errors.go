package calc

import "strconv"

// InvalidExpressionError is an error indicating a malformed expression:
// unmatched or empty parentheses, a missing operand, adjacent operators, or
// residue that is not a numeric literal.
type InvalidExpressionError struct {
	// Expr is the expression, or the partially reduced form of it, that
	// could not be evaluated.
	Expr string
	// Col is the 1-based column of the offending character, or 0 when the
	// failure has no single position.
	Col int
	// Reason describes what was wrong.
	Reason string
}

func (err *InvalidExpressionError) Error() string {
	if err.Col > 0 {
		return "invalid expression at column " + strconv.Itoa(err.Col) + ": " + err.Reason
	}
	return "invalid expression " + strconv.Quote(err.Expr) + ": " + err.Reason
}

// UnknownOperatorError is an error indicating a symbol outside the operator
// catalog where an operator was expected.
type UnknownOperatorError struct {
	// Operator is the symbol that is not registered.
	Operator string
}

func (err *UnknownOperatorError) Error() string {
	return "unknown operator " + strconv.Quote(err.Operator)
}

// DivisionByZeroError is an error indicating a division whose right operand
// reduced to zero.
type DivisionByZeroError struct {
	// X is the left operand of the division.
	X float64
}

func (err *DivisionByZeroError) Error() string {
	return "division of " + strconv.FormatFloat(err.X, 'g', -1, 64) + " by zero"
}
