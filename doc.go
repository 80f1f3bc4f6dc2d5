// Package calc implements a floating-point calculator for infix arithmetic
// expressions.
//
// Expressions are built from decimal literals, parentheses, and the binary
// operators ^, /, *, - and +, applied in that order of precedence. A leading
// minus is the sign of the first operand rather than an operator, which is
// why adjacent operator pairs such as "--" or "+-" are not valid input.
//
// Two engines share the catalog of operator semantics. Evaluate reduces the
// expression string the way you would on paper, collapsing one binary
// subexpression at a time. Parse and EvalString go through a conventional
// expression tree, accept slightly more input, and follow the same
// precedence, sign, and zero rules. All arithmetic is IEEE 754 float64; a
// computed negative zero is always normalized to positive zero.
package calc
