// Package eval implements Lumen's tree-walking evaluator: a pair of
// recursive dispatches — one over ast.Expr returning a value.Value, one
// over ast.Stmt returning success or a *diag.Diagnostic — driven by a
// single piece of mutable state, the current environment. Runtime
// failures are ordinary (value, *diag.Diagnostic) returns rather than
// panics, so file-mode execution can stop cleanly without a recover();
// panic recovery at the REPL/file-runner boundary is reserved for truly
// unexpected conditions, not the primary error channel.
package eval

import (
	"io"
	"os"

	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/diag"
	"github.com/lumen-lang/lumen/environment"
)

// Evaluator walks a Lumen AST against a persistent, lexically nested
// environment. A single Evaluator is reused across an entire REPL
// session or file run, so top-level bindings and mutations survive
// across successive Run calls.
type Evaluator struct {
	env *environment.Environment
	out io.Writer
}

// NewEvaluator creates an Evaluator with a fresh global environment,
// printing to os.Stdout until overridden with SetWriter.
func NewEvaluator() *Evaluator {
	return &Evaluator{env: environment.New(nil), out: os.Stdout}
}

// SetWriter redirects the output of `print` statements, primarily so
// tests can capture output instead of writing to the real stdout.
func (e *Evaluator) SetWriter(w io.Writer) { e.out = w }

// Run executes stmts in order against the current environment, halting
// and returning the first diagnostic encountered. A nil return means
// every statement completed successfully.
func (e *Evaluator) Run(stmts []ast.Stmt) *diag.Diagnostic {
	for _, s := range stmts {
		if d := e.execStmt(s); d != nil {
			return d
		}
	}
	return nil
}

// withChildEnv runs fn with a fresh environment (parented on the current
// one) installed as current, restoring the previous current environment
// on every exit path — including when fn returns an error. This is the
// interpreter's only piece of mutable traversal state.
func (e *Evaluator) withChildEnv(fn func() *diag.Diagnostic) *diag.Diagnostic {
	prev := e.env
	e.env = environment.New(prev)
	defer func() { e.env = prev }()
	return fn()
}
