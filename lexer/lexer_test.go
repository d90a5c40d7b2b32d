package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumen-lang/lumen/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	l := New(`( ) , . ; - + * / ! = == < <= > >= != { }`)
	got := kinds(l.Scan())
	want := []token.Kind{
		token.LPAREN, token.RPAREN, token.COMMA, token.DOT, token.SEMICOLON,
		token.MINUS, token.PLUS, token.STAR, token.SLASH, token.BANG,
		token.ASSIGN, token.EQUAL_EQUAL, token.LESS, token.LESS_EQUAL,
		token.GREATER, token.GREATER_EQUAL, token.BANG_EQUAL,
		token.LBRACE, token.RBRACE, token.EOF,
	}
	assert.Equal(t, want, got)
	assert.Empty(t, l.Errors())
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	l := New(`int x = 1; if else while for repeat until do to print true false and or nil foo_bar`)
	got := kinds(l.Scan())
	want := []token.Kind{
		token.INT, token.IDENT, token.ASSIGN, token.INT_LIT, token.SEMICOLON,
		token.IF, token.ELSE, token.WHILE, token.FOR, token.REPEAT, token.UNTIL,
		token.DO, token.TO, token.PRINT, token.TRUE, token.FALSE, token.AND,
		token.OR, token.NIL, token.IDENT, token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestScanIntAndRealLiterals(t *testing.T) {
	l := New(`42 3.14 0 7.0`)
	tokens := l.Scan()
	assert.Equal(t, token.INT_LIT, tokens[0].Kind)
	assert.Equal(t, int64(42), tokens[0].Literal)
	assert.Equal(t, token.REAL_LIT, tokens[1].Kind)
	assert.Equal(t, 3.14, tokens[1].Literal)
	assert.Equal(t, token.INT_LIT, tokens[2].Kind)
	assert.Equal(t, int64(0), tokens[2].Literal)
	assert.Equal(t, token.REAL_LIT, tokens[3].Kind)
	assert.Equal(t, 7.0, tokens[3].Literal)
}

func TestScanStringLiteral(t *testing.T) {
	l := New(`"hello world"`)
	tokens := l.Scan()
	assert.Equal(t, token.STRING_LIT, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal)
	assert.Equal(t, `"hello world"`, tokens[0].Lexeme)
}

func TestScanMultilineString(t *testing.T) {
	l := New("\"line one\nline two\" x")
	tokens := l.Scan()
	assert.Equal(t, "line one\nline two", tokens[0].Literal)
	// the identifier after the string should see the advanced line number
	assert.Equal(t, 2, tokens[1].Line)
}

func TestUnterminatedStringIsLexicalError(t *testing.T) {
	l := New(`"never closed`)
	tokens := l.Scan()
	assert.Equal(t, []token.Kind{token.EOF}, kinds(tokens))
	if assert.Len(t, l.Errors(), 1) {
		assert.Contains(t, l.Errors()[0].Error(), "Unterminated string")
	}
}

func TestLineCommentIsSkipped(t *testing.T) {
	l := New("1 // a comment\n+ 2")
	got := kinds(l.Scan())
	assert.Equal(t, []token.Kind{token.INT_LIT, token.PLUS, token.INT_LIT, token.EOF}, got)
}

func TestLineTrackingAcrossNewlines(t *testing.T) {
	l := New("1\n2\n3")
	tokens := l.Scan()
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
}

func TestUnknownCharacterIsRecordedAndScanningContinues(t *testing.T) {
	l := New("1 @ 2")
	got := kinds(l.Scan())
	assert.Equal(t, []token.Kind{token.INT_LIT, token.INT_LIT, token.EOF}, got)
	if assert.Len(t, l.Errors(), 1) {
		assert.Contains(t, l.Errors()[0].Error(), "Unexpected character")
	}
}

func TestBareColonIsLexicalError(t *testing.T) {
	l := New("1 : 2")
	got := kinds(l.Scan())
	assert.Equal(t, []token.Kind{token.INT_LIT, token.INT_LIT, token.EOF}, got)
	assert.Len(t, l.Errors(), 1)
}

func TestScannerTotalityAlwaysTerminatesInEOF(t *testing.T) {
	inputs := []string{"", "   ", "###", `"`, "int x", "1 + 2 * (3 - 4);"}
	for _, in := range inputs {
		l := New(in)
		toks := l.Scan()
		assert.NotEmpty(t, toks)
		assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
	}
}
