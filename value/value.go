// Package value implements Lumen's runtime values: integer, real,
// string, boolean, and the distinguished nil. Every Value knows its own
// Kind and how to render itself for `print`; there is no implicit
// conversion between kinds anywhere in this package.
package value

import "strconv"

// Kind identifies the dynamic type of a Value. A variable's declared
// type is represented with the same Kind values.
type Kind string

const (
	IntKind    Kind = "int"
	RealKind   Kind = "real"
	StringKind Kind = "str"
	BoolKind   Kind = "bool"
	NilKind    Kind = "nil"
)

// Value is any Lumen runtime datum. Concrete types below are immutable:
// assignment replaces the binding in an Environment rather than mutating
// a Value in place, so a Value may be freely shared.
type Value interface {
	Kind() Kind
	String() string
}

// Int is a 64-bit signed integer value. Integer overflow wraps using
// Go's native two's-complement int64 arithmetic.
type Int struct{ V int64 }

func (Int) Kind() Kind { return IntKind }
func (i Int) String() string { return strconv.FormatInt(i.V, 10) }

// Real is a 64-bit floating point value. Formatting uses the shortest
// round-tripping decimal representation (Go's %v/%g default for
// float64), so `2.0` prints as `2`.
type Real struct{ V float64 }

func (Real) Kind() Kind { return RealKind }
func (r Real) String() string { return strconv.FormatFloat(r.V, 'g', -1, 64) }

// Str is a string value. Strings are shared-immutable: copying a Str
// value copies the interface header, never the underlying bytes.
type Str struct{ V string }

func (Str) Kind() Kind { return StringKind }
func (s Str) String() string { return s.V }

// Bool is a boolean value.
type Bool struct{ V bool }

func (Bool) Kind() Kind { return BoolKind }
func (b Bool) String() string {
	if b.V {
		return "true"
	}
	return "false"
}

// Nil is the distinguished nil value. There is exactly one logical nil;
// NilValue is the value every `nil` literal evaluates to.
type Nil struct{}

func (Nil) Kind() Kind { return NilKind }
func (Nil) String() string { return "nil" }

// NilValue is the single shared nil Value.
var NilValue Value = Nil{}

// ZeroFor returns the zero value for a declared Kind, used when a
// declaration has no initializer (IntDecl/RealDecl/StrDecl with no `=
// expr`).
func ZeroFor(k Kind) Value {
	switch k {
	case IntKind:
		return Int{V: 0}
	case RealKind:
		return Real{V: 0}
	case StringKind:
		return Str{V: ""}
	default:
		return NilValue
	}
}
