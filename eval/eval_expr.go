package eval

import (
	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/diag"
	"github.com/lumen-lang/lumen/value"
)

// evalExpr dispatches on the concrete Expr variant. Every branch returns
// either a value and a nil diagnostic, or a nil value and a non-nil
// diagnostic — never both nil.
func (e *Evaluator) evalExpr(expr ast.Expr) (value.Value, *diag.Diagnostic) {
	switch n := expr.(type) {
	case ast.LiteralExpr:
		return n.Value, nil
	case ast.GroupingExpr:
		return e.evalExpr(n.Inner)
	case ast.VariableExpr:
		return e.evalVariable(n)
	case ast.AssignExpr:
		return e.evalAssign(n)
	case ast.UnaryExpr:
		return e.evalUnary(n)
	case ast.BinaryExpr:
		return e.evalBinary(n)
	case ast.LogicalExpr:
		return e.evalLogical(n)
	default:
		return nil, diag.Int(0, "", "unrecognized expression node %T", expr)
	}
}

func (e *Evaluator) evalVariable(n ast.VariableExpr) (value.Value, *diag.Diagnostic) {
	v, ok := e.env.Get(n.Name)
	if !ok {
		return nil, diag.Nm(n.Token.Line, n.Name, "undefined variable '%s'", n.Name)
	}
	return v, nil
}

func (e *Evaluator) evalAssign(n ast.AssignExpr) (value.Value, *diag.Diagnostic) {
	rhs, d := e.evalExpr(n.Value)
	if d != nil {
		return nil, d
	}
	current, ok := e.env.Get(n.Name)
	if !ok {
		return nil, diag.Nm(n.Token.Line, n.Name, "undefined variable '%s'", n.Name)
	}
	if current.Kind() != rhs.Kind() {
		return nil, diag.Typ(n.Token.Line, n.Name,
			"cannot assign %s value to %s variable '%s'", rhs.Kind(), current.Kind(), n.Name)
	}
	e.env.Assign(n.Name, rhs)
	return rhs, nil
}

func (e *Evaluator) evalUnary(n ast.UnaryExpr) (value.Value, *diag.Diagnostic) {
	operand, d := e.evalExpr(n.Operand)
	if d != nil {
		return nil, d
	}
	switch n.Op.Kind {
	case "-":
		switch v := operand.(type) {
		case value.Int:
			return value.Int{V: -v.V}, nil
		case value.Real:
			return value.Real{V: -v.V}, nil
		default:
			return nil, diag.Typ(n.Op.Line, n.Op.Lexeme, "unary '-' requires an int or real operand, got %s", operand.Kind())
		}
	case "!":
		b, ok := operand.(value.Bool)
		if !ok {
			return nil, diag.Typ(n.Op.Line, n.Op.Lexeme, "unary '!' requires a bool operand, got %s", operand.Kind())
		}
		return value.Bool{V: !b.V}, nil
	default:
		return nil, diag.Int(n.Op.Line, n.Op.Lexeme, "unrecognized unary operator %q", n.Op.Lexeme)
	}
}

func (e *Evaluator) evalLogical(n ast.LogicalExpr) (value.Value, *diag.Diagnostic) {
	left, d := e.evalExpr(n.Left)
	if d != nil {
		return nil, d
	}
	lb, ok := left.(value.Bool)
	if !ok {
		return nil, diag.Typ(n.Op.Line, n.Op.Lexeme, "'%s' requires a bool operand, got %s", n.Op.Lexeme, left.Kind())
	}
	if n.Op.Kind == "or" {
		if lb.V {
			return lb, nil
		}
	} else {
		if !lb.V {
			return lb, nil
		}
	}
	right, d := e.evalExpr(n.Right)
	if d != nil {
		return nil, d
	}
	rb, ok := right.(value.Bool)
	if !ok {
		return nil, diag.Typ(n.Op.Line, n.Op.Lexeme, "'%s' requires a bool operand, got %s", n.Op.Lexeme, right.Kind())
	}
	return rb, nil
}

func (e *Evaluator) evalBinary(n ast.BinaryExpr) (value.Value, *diag.Diagnostic) {
	left, d := e.evalExpr(n.Left)
	if d != nil {
		return nil, d
	}
	right, d := e.evalExpr(n.Right)
	if d != nil {
		return nil, d
	}

	op := n.Op.Kind
	if op == "==" || op == "!=" {
		return evalEquality(n.Op.Line, n.Op.Lexeme, left, right, op == "==")
	}

	switch l := left.(type) {
	case value.Int:
		r, ok := right.(value.Int)
		if !ok {
			return nil, diag.Typ(n.Op.Line, n.Op.Lexeme,
				"operator '%s' requires two operands of the same type, got int and %s", n.Op.Lexeme, right.Kind())
		}
		return evalIntOp(string(n.Op.Kind), n.Op.Line, n.Op.Lexeme, l.V, r.V)
	case value.Real:
		r, ok := right.(value.Real)
		if !ok {
			return nil, diag.Typ(n.Op.Line, n.Op.Lexeme,
				"operator '%s' requires two operands of the same type, got real and %s", n.Op.Lexeme, right.Kind())
		}
		return evalRealOp(string(n.Op.Kind), n.Op.Line, n.Op.Lexeme, l.V, r.V)
	default:
		return nil, diag.Typ(n.Op.Line, n.Op.Lexeme, "operator '%s' requires numeric operands, got %s", n.Op.Lexeme, left.Kind())
	}
}
