package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []token {
	t.Helper()
	l := newLexer(src)
	var toks []token
	for {
		tok, err := l.next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks
		}
	}
}

func TestLexer(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []token
	}{
		{
			name: "literal",
			src:  "12.5",
			want: []token{
				{kind: tokenNum, text: "12.5", pos: 1},
				{kind: tokenEOF, pos: 5},
			},
		},
		{
			name: "expr",
			src:  "2+(3*4)",
			want: []token{
				{kind: tokenNum, text: "2", pos: 1},
				{kind: tokenOp, text: "+", pos: 2},
				{kind: tokenOpen, text: "(", pos: 3},
				{kind: tokenNum, text: "3", pos: 4},
				{kind: tokenOp, text: "*", pos: 5},
				{kind: tokenNum, text: "4", pos: 6},
				{kind: tokenClose, text: ")", pos: 7},
				{kind: tokenEOF, pos: 8},
			},
		},
		{
			name: "spaces",
			src:  " 1 +\t2\n",
			want: []token{
				{kind: tokenNum, text: "1", pos: 2},
				{kind: tokenOp, text: "+", pos: 4},
				{kind: tokenNum, text: "2", pos: 6},
				{kind: tokenEOF, pos: 8},
			},
		},
		{
			name: "dot-run",
			src:  "1..2",
			want: []token{
				{kind: tokenNum, text: "1..2", pos: 1},
				{kind: tokenEOF, pos: 5},
			},
		},
		{
			name: "empty",
			src:  "",
			want: []token{
				{kind: tokenEOF, pos: 1},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, lexAll(t, c.src))
		})
	}
}

func TestLexerBadChar(t *testing.T) {
	cases := []struct {
		src string
		col int
	}{
		{"2x3", 2},
		{"%", 1},
		{"1+é", 3},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			l := newLexer(c.src)
			var err error
			for err == nil {
				var tok token
				tok, err = l.next()
				if err == nil {
					require.NotEqual(t, tokenEOF, tok.kind, "lexer accepted %q", c.src)
				}
			}
			var inv *InvalidExpressionError
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, c.col, inv.Col)
		})
	}
}

func TestLexerPush(t *testing.T) {
	l := newLexer("1+2")
	tok, err := l.next()
	require.NoError(t, err)
	l.push(tok)
	again, err := l.next()
	require.NoError(t, err)
	assert.Equal(t, tok, again)

	l.push(tok)
	assert.Panics(t, func() { l.push(tok) })
}

func TestTokenString(t *testing.T) {
	tok := token{kind: tokenOp, text: "*", pos: 3}
	assert.Equal(t, "Op:*@3", tok.String())
	assert.Equal(t, "tokenKind(99)", tokenKind(99).String())
}
