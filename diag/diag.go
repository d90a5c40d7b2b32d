// Package diag implements Lumen's error taxonomy and its single wire
// format for diagnostics: `<line>: Error <location>: <message>`, where
// <location> is empty or ` at '<lexeme>'`.
//
// Every diagnostic Lumen ever produces — from the scanner, the parser,
// or the evaluator — is one of the six kinds below. All of them share
// the single Diagnostic type; callers tell kinds apart by its Kind
// field, and all of them render identically to the user.
package diag

import "fmt"

// Kind names a taxonomy entry without tying callers to a Go type.
type Kind string

const (
	Lexical    Kind = "LexicalError"
	Syntax     Kind = "SyntaxError"
	Type       Kind = "TypeError"
	Name       Kind = "NameError"
	Arithmetic Kind = "ArithmeticError"
	Internal   Kind = "InternalError"
)

// Diagnostic is the single error type behind every Kind. Location is the
// offending lexeme, or "" if none is available (e.g. end-of-input
// errors).
type Diagnostic struct {
	Kind     Kind
	Line     int
	Location string
	Message  string
}

func (d *Diagnostic) Error() string {
	where := ""
	if d.Location != "" {
		where = fmt.Sprintf(" at '%s'", d.Location)
	}
	return fmt.Sprintf("%d: Error%s: %s", d.Line, where, d.Message)
}

func newf(kind Kind, line int, location string, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Kind: kind, Line: line, Location: location, Message: fmt.Sprintf(format, args...)}
}

func Lex(line int, location, format string, args ...interface{}) *Diagnostic {
	return newf(Lexical, line, location, format, args...)
}

func Syn(line int, location, format string, args ...interface{}) *Diagnostic {
	return newf(Syntax, line, location, format, args...)
}

func Typ(line int, location, format string, args ...interface{}) *Diagnostic {
	return newf(Type, line, location, format, args...)
}

func Nm(line int, location, format string, args ...interface{}) *Diagnostic {
	return newf(Name, line, location, format, args...)
}

func Arith(line int, location, format string, args ...interface{}) *Diagnostic {
	return newf(Arithmetic, line, location, format, args...)
}

func Int(line int, location, format string, args ...interface{}) *Diagnostic {
	return newf(Internal, line, location, format, args...)
}
