// Package lexer implements Lumen's scanner: source text in, a token
// sequence out, terminated by a single token.EOF sentinel. It is a
// byte-cursor scanner with line tracking and a switch-on-current-byte
// dispatch; unrecognized characters are recorded as diagnostics and
// scanning continues rather than aborting.
package lexer

import (
	"strconv"
	"strings"

	"github.com/lumen-lang/lumen/diag"
	"github.com/lumen-lang/lumen/token"
)

// Lexer scans its source one token at a time. Unknown characters are recorded
// as diagnostics and skipped; scanning always terminates with a single
// EOF token, even in the presence of errors.
type Lexer struct {
	src     string
	start   int
	current int
	line    int
	errors  []*diag.Diagnostic
}

// New creates a Lexer over src, ready to scan from line 1.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Scan tokenizes the entire source and returns the token sequence,
// always ending in a single token.EOF.
func (l *Lexer) Scan() []token.Token {
	var tokens []token.Token
	for !l.atEnd() {
		l.start = l.current
		if tok, ok := l.scanToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, token.New(token.EOF, "", l.line))
	return tokens
}

// Errors returns every lexical diagnostic collected during the most
// recent Scan.
func (l *Lexer) Errors() []*diag.Diagnostic { return l.errors }

func (l *Lexer) atEnd() bool { return l.current >= len(l.src) }

func (l *Lexer) advance() byte {
	c := l.src[l.current]
	l.current++
	return c
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.src) {
		return 0
	}
	return l.src[l.current+1]
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.src[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) lexeme() string { return l.src[l.start:l.current] }

func (l *Lexer) tok(kind token.Kind) (token.Token, bool) {
	return token.New(kind, l.lexeme(), l.line), true
}

// scanToken scans exactly one token starting at l.start, or returns
// ok=false for whitespace, comments, and (after recording a diagnostic)
// unknown characters.
func (l *Lexer) scanToken() (token.Token, bool) {
	c := l.advance()
	switch c {
	case '(':
		return l.tok(token.LPAREN)
	case ')':
		return l.tok(token.RPAREN)
	case '{':
		return l.tok(token.LBRACE)
	case '}':
		return l.tok(token.RBRACE)
	case ',':
		return l.tok(token.COMMA)
	case '.':
		return l.tok(token.DOT)
	case ';':
		return l.tok(token.SEMICOLON)
	case '-':
		return l.tok(token.MINUS)
	case '+':
		return l.tok(token.PLUS)
	case '*':
		return l.tok(token.STAR)
	case '!':
		if l.match('=') {
			return l.tok(token.BANG_EQUAL)
		}
		return l.tok(token.BANG)
	case '=':
		if l.match('=') {
			return l.tok(token.EQUAL_EQUAL)
		}
		return l.tok(token.ASSIGN)
	case '<':
		if l.match('=') {
			return l.tok(token.LESS_EQUAL)
		}
		return l.tok(token.LESS)
	case '>':
		if l.match('=') {
			return l.tok(token.GREATER_EQUAL)
		}
		return l.tok(token.GREATER)
	case ':':
		l.errors = append(l.errors, diag.Lex(l.line, ":", "Unexpected character following ':'"))
		return token.Token{}, false
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.atEnd() {
				l.advance()
			}
			return token.Token{}, false
		}
		return l.tok(token.SLASH)
	case ' ', '\r', '\t':
		return token.Token{}, false
	case '\n':
		l.line++
		return token.Token{}, false
	case '"':
		return l.scanString()
	default:
		switch {
		case isDigit(c):
			return l.scanNumber()
		case isAlpha(c):
			return l.scanIdentifier()
		default:
			l.errors = append(l.errors, diag.Lex(l.line, string(c), "Unexpected character"))
			return token.Token{}, false
		}
	}
}

func (l *Lexer) scanString() (token.Token, bool) {
	startLine := l.line
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.atEnd() {
		l.errors = append(l.errors, diag.Lex(startLine, "", "Unterminated string"))
		return token.Token{}, false
	}
	l.advance() // closing quote
	value := l.src[l.start+1 : l.current-1]
	return token.NewLiteral(token.STRING_LIT, l.lexeme(), startLine, value), true
}

func (l *Lexer) scanNumber() (token.Token, bool) {
	for isDigit(l.peek()) {
		l.advance()
	}
	isReal := false
	if l.peek() == '.' && isDigit(l.peekNext()) {
		isReal = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	text := l.lexeme()
	if isReal {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			l.errors = append(l.errors, diag.Lex(l.line, text, "malformed real literal"))
			return token.Token{}, false
		}
		return token.NewLiteral(token.REAL_LIT, text, l.line, v), true
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		l.errors = append(l.errors, diag.Lex(l.line, text, "malformed integer literal"))
		return token.Token{}, false
	}
	return token.NewLiteral(token.INT_LIT, text, l.line, v), true
}

func (l *Lexer) scanIdentifier() (token.Token, bool) {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	text := l.lexeme()
	if kind, ok := token.Lookup(text); ok {
		return l.tok(kind)
	}
	return l.tok(token.IDENT)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }

// normalizeLineEndings replaces every CRLF pair with a single '\n'. The
// scanner already skips '\r' as whitespace and counts lines on '\n'
// alone, so outside string literals this changes no token; inside a
// multi-line string literal it keeps '\r' out of the decoded value.
// cmd/lumen applies it to file contents before scanning.
func normalizeLineEndings(src string) string {
	return strings.ReplaceAll(src, "\r\n", "\n")
}

// Normalize exposes normalizeLineEndings for callers that decode source
// text before constructing a Lexer.
func Normalize(src string) string { return normalizeLineEndings(src) }
