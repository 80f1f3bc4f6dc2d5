package calc

import (
	"math"
	"strings"
)

// Operator is a binary arithmetic operator. The catalog below fixes the set
// of operators the package understands; an operator's position in the
// catalog is its precedence rank, and lower ranks are applied first.
type Operator struct {
	// Symbol is the single-character spelling of the operator.
	Symbol string
	// Name is a human-readable name for help listings.
	Name string

	fn func(x, y float64) (float64, error)
}

// Apply computes the operator on x and y. Results are zero-normalized, so a
// computed -0 always comes back as +0.
func (op Operator) Apply(x, y float64) (float64, error) {
	return op.fn(x, y)
}

// catalog is the fixed operator set in precedence order. Subtraction must
// stay ranked before addition: a leading '-' is read as the sign of the
// first operand, and resolving '-' first keeps that reading unambiguous.
var catalog = [...]Operator{
	{Symbol: "^", Name: "power", fn: power},
	{Symbol: "/", Name: "divide", fn: divide},
	{Symbol: "*", Name: "multiply", fn: multiply},
	{Symbol: "-", Name: "subtract", fn: subtract},
	{Symbol: "+", Name: "add", fn: add},
}

// Operators returns the operator catalog in precedence order, most binding
// first.
func Operators() []Operator {
	return append([]Operator(nil), catalog[:]...)
}

// Apply computes the operator named by symbol on x and y. If symbol is not
// in the catalog, the error is an *UnknownOperatorError.
func Apply(symbol string, x, y float64) (float64, error) {
	op, ok := lookup(symbol)
	if !ok {
		return 0, &UnknownOperatorError{Operator: symbol}
	}
	return op.Apply(x, y)
}

func lookup(symbol string) (Operator, bool) {
	for _, op := range catalog {
		if op.Symbol == symbol {
			return op, true
		}
	}
	return Operator{}, false
}

// OperatorPattern returns a regular expression matching exactly one operator
// character. Input validators use it to locate operators; the catalog itself
// does not validate expressions.
func OperatorPattern() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, op := range catalog {
		// Symbols are punctuation, so escape them all for the character class.
		b.WriteByte('\\')
		b.WriteString(op.Symbol)
	}
	b.WriteString("]{1}")
	return b.String()
}

// power computes |x|**y and reapplies the sign of the base: the sign
// survives an odd integer exponent and cancels otherwise, so (-2)^2 is 4,
// (-2)^3 is -8, and a negative base with a fractional exponent is defined
// where IEEE pow is NaN.
func power(x, y float64) (float64, error) {
	r := math.Pow(math.Abs(x), y)
	if x < 0 && oddInteger(y) {
		r = -r
	}
	return normalizeZero(r), nil
}

func oddInteger(y float64) bool {
	i, frac := math.Modf(math.Abs(y))
	return frac == 0 && math.Mod(i, 2) == 1
}

func divide(x, y float64) (float64, error) {
	if normalizeZero(y) == 0 {
		return 0, &DivisionByZeroError{X: x}
	}
	return normalizeZero(x / y), nil
}

func multiply(x, y float64) (float64, error) {
	return normalizeZero(x * y), nil
}

func subtract(x, y float64) (float64, error) {
	return normalizeZero(x - y), nil
}

func add(x, y float64) (float64, error) {
	return normalizeZero(x + y), nil
}

// normalizeZero converts -0 to +0 so that results compare, format, and
// substitute deterministically.
func normalizeZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
