package eval

import (
	"fmt"

	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/diag"
	"github.com/lumen-lang/lumen/token"
	"github.com/lumen-lang/lumen/value"
)

// execStmt dispatches on the concrete Stmt variant, returning the first
// diagnostic raised by itself or any nested statement/expression.
func (e *Evaluator) execStmt(stmt ast.Stmt) *diag.Diagnostic {
	switch n := stmt.(type) {
	case ast.PrintStmt:
		return e.execPrint(n)
	case ast.ExprStmt:
		_, d := e.evalExpr(n.Expr)
		return d
	case ast.IntDeclStmt:
		return e.execDecl(n.Name, n.Token, n.Init, value.IntKind)
	case ast.RealDeclStmt:
		return e.execDecl(n.Name, n.Token, n.Init, value.RealKind)
	case ast.StrDeclStmt:
		return e.execDecl(n.Name, n.Token, n.Init, value.StringKind)
	case ast.BlockStmt:
		return e.execBlock(n)
	case ast.IfStmt:
		return e.execIf(n)
	case ast.WhileStmt:
		return e.execWhile(n)
	case ast.ForStmt:
		return e.execFor(n)
	case ast.RepeatStmt:
		return e.execRepeat(n)
	default:
		return diag.Int(0, "", "unrecognized statement node %T", stmt)
	}
}

func (e *Evaluator) execPrint(n ast.PrintStmt) *diag.Diagnostic {
	v, d := e.evalExpr(n.Expr)
	if d != nil {
		return d
	}
	fmt.Fprintln(e.out, v.String())
	return nil
}

// execDecl binds Name to Init's value (or the type's zero value if Init
// is absent) after checking Init's dynamic type matches want. Declaring
// a name already bound in this scope silently overwrites it.
func (e *Evaluator) execDecl(name string, tok token.Token, init ast.Expr, want value.Kind) *diag.Diagnostic {
	if init == nil {
		e.env.Define(name, value.ZeroFor(want))
		return nil
	}
	v, d := e.evalExpr(init)
	if d != nil {
		return d
	}
	if v.Kind() != want {
		return diag.Typ(tok.Line, name, "cannot initialize %s variable '%s' with %s value", want, name, v.Kind())
	}
	e.env.Define(name, v)
	return nil
}

func (e *Evaluator) execBlock(n ast.BlockStmt) *diag.Diagnostic {
	return e.withChildEnv(func() *diag.Diagnostic {
		for _, s := range n.Stmts {
			if d := e.execStmt(s); d != nil {
				return d
			}
		}
		return nil
	})
}

func (e *Evaluator) execIf(n ast.IfStmt) *diag.Diagnostic {
	cond, d := e.evalExpr(n.Cond)
	if d != nil {
		return d
	}
	b, ok := cond.(value.Bool)
	if !ok {
		return diag.Typ(exprLine(n.Cond), "", "if condition must be bool, got %s", cond.Kind())
	}
	if b.V {
		return e.execStmt(n.Then)
	}
	if n.Else != nil {
		return e.execStmt(n.Else)
	}
	return nil
}

func (e *Evaluator) execWhile(n ast.WhileStmt) *diag.Diagnostic {
	for {
		cond, d := e.evalExpr(n.Cond)
		if d != nil {
			return d
		}
		b, ok := cond.(value.Bool)
		if !ok {
			return diag.Typ(exprLine(n.Cond), "", "while condition must be bool, got %s", cond.Kind())
		}
		if !b.V {
			return nil
		}
		if d := e.execStmt(n.Body); d != nil {
			return d
		}
	}
}

// execFor runs the supplemented Pascal-style counting loop: Name is
// bound as a fresh int local in its own block scope, stepped by 1,
// inclusive of End. Start and End must both evaluate to int.
func (e *Evaluator) execFor(n ast.ForStmt) *diag.Diagnostic {
	start, d := e.evalExpr(n.Start)
	if d != nil {
		return d
	}
	end, d := e.evalExpr(n.End)
	if d != nil {
		return d
	}
	si, ok := start.(value.Int)
	if !ok {
		return diag.Typ(n.Token.Line, n.Name, "for-loop start must be int, got %s", start.Kind())
	}
	ei, ok := end.(value.Int)
	if !ok {
		return diag.Typ(n.Token.Line, n.Name, "for-loop end must be int, got %s", end.Kind())
	}

	for i := si.V; i <= ei.V; i++ {
		if d := e.withChildEnv(func() *diag.Diagnostic {
			e.env.Define(n.Name, value.Int{V: i})
			return e.execStmt(n.Body)
		}); d != nil {
			return d
		}
	}
	return nil
}

// execRepeat runs Body at least once, in a single shared block scope
// that persists across iterations (so a declaration inside Body is
// visible to Cond), stopping the first time Cond evaluates true.
func (e *Evaluator) execRepeat(n ast.RepeatStmt) *diag.Diagnostic {
	return e.withChildEnv(func() *diag.Diagnostic {
		for {
			for _, s := range n.Body {
				if d := e.execStmt(s); d != nil {
					return d
				}
			}
			cond, d := e.evalExpr(n.Cond)
			if d != nil {
				return d
			}
			b, ok := cond.(value.Bool)
			if !ok {
				return diag.Typ(exprLine(n.Cond), "", "until condition must be bool, got %s", cond.Kind())
			}
			if b.V {
				return nil
			}
		}
	})
}

// exprLine extracts a best-effort source line from an expression for
// diagnostics that have no operator token of their own to blame (loop
// and branch conditions). Falls back to 0 for expressions with no
// token anywhere in their immediate shape (bare literals).
func exprLine(expr ast.Expr) int {
	switch n := expr.(type) {
	case ast.BinaryExpr:
		return n.Op.Line
	case ast.LogicalExpr:
		return n.Op.Line
	case ast.UnaryExpr:
		return n.Op.Line
	case ast.VariableExpr:
		return n.Token.Line
	case ast.AssignExpr:
		return n.Token.Line
	case ast.GroupingExpr:
		return exprLine(n.Inner)
	default:
		return 0
	}
}
