package calc

import (
	"strconv"
	"unicode/utf8"
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal literal.
	tokenNum
	// tokenOp is a catalog operator.
	tokenOp
	// tokenOpen is an opening parenthesis.
	tokenOpen
	// tokenClose is a closing parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// lexer splits an expression string into number, operator, and parenthesis
// tokens. Token positions are 1-based byte columns.
type lexer struct {
	input string
	pos   int
	p     token
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

// push unreads a token so that it is the next token returned from next.
// Panics if there is already a pushed token.
func (l *lexer) push(tok token) {
	if l.p.kind != tokenNone {
		panic("calc: double push")
	}
	l.p = tok
}

// next scans the next token from the input.
func (l *lexer) next() (token, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = token{}
		return tok, nil
	}
	for l.pos < len(l.input) && isSpaceChar(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token{kind: tokenEOF, pos: l.pos + 1}, nil
	}
	tok := token{pos: l.pos + 1}
	switch c := l.input[l.pos]; {
	case isNumChar(c):
		start := l.pos
		for l.pos < len(l.input) && isNumChar(l.input[l.pos]) {
			l.pos++
		}
		tok.kind, tok.text = tokenNum, l.input[start:l.pos]
	case c == '(':
		l.pos++
		tok.kind, tok.text = tokenOpen, "("
	case c == ')':
		l.pos++
		tok.kind, tok.text = tokenClose, ")"
	default:
		if _, ok := lookup(string(c)); !ok {
			r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
			return token{}, &InvalidExpressionError{
				Expr:   l.input,
				Col:    l.pos + 1,
				Reason: "unexpected character " + strconv.QuoteRune(r),
			}
		}
		l.pos++
		tok.kind, tok.text = tokenOp, string(c)
	}
	return tok, nil
}

func isSpaceChar(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
