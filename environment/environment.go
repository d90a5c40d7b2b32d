// Package environment implements Lumen's lexically nested variable
// bindings: a tree of scopes with parent fallback on lookup and
// assignment, and local-only writes on declaration — the mechanism
// behind shadowing. There is no separate const/let tracking: every
// declaration already carries an explicit type keyword.
package environment

import "github.com/lumen-lang/lumen/value"

// Environment is one scope: a map from name to current value, plus an
// optional parent. The global environment is the root and has a nil
// Parent; it lives for the lifetime of the interpreter. Block
// environments are created on block entry and discarded on block exit.
type Environment struct {
	values map[string]value.Value
	Parent *Environment
}

// New creates a scope whose parent is parent, or a root scope if parent
// is nil.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Parent: parent}
}

// Define binds name to val in the current scope only, overwriting any
// existing local binding. It never touches the parent chain — this is
// what makes shadowing possible: re-declaring a name in an inner scope
// hides the outer binding without mutating it.
func (e *Environment) Define(name string, val value.Value) {
	e.values[name] = val
}

// Get looks up name in this scope, then recursively in each parent. ok
// is false if name is bound nowhere in the chain.
func (e *Environment) Get(name string) (val value.Value, ok bool) {
	if v, found := e.values[name]; found {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Assign overwrites the binding for name in whichever scope in the chain
// currently holds it (searching outward from this scope). ok is false if
// name is bound nowhere in the chain, in which case no write occurs.
func (e *Environment) Assign(name string, val value.Value) (ok bool) {
	if _, found := e.values[name]; found {
		e.values[name] = val
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, val)
	}
	return false
}
