// Package ast defines Lumen's abstract syntax tree: a closed set of
// Expr and Stmt variants, produced once by the parser and consumed
// read-only by the evaluator.
package ast

import (
	"github.com/lumen-lang/lumen/token"
	"github.com/lumen-lang/lumen/value"
)

// Expr is any expression node. The evaluator type-switches over the
// concrete types below; there is no open extension point.
type Expr interface {
	exprNode()
}

// BinaryExpr is a two-operand arithmetic, ordering, or equality
// expression: `left Op right`.
type BinaryExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// LogicalExpr is `left and right` or `left or right`. Kept distinct from
// BinaryExpr because and/or short-circuit; Binary never does.
type LogicalExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// UnaryExpr is a single-operand prefix expression: `-right` or `!right`.
type UnaryExpr struct {
	Op      token.Token
	Operand Expr
}

// GroupingExpr is a parenthesized expression, kept as its own node so
// that the tree records the source parenthesization.
type GroupingExpr struct {
	Inner Expr
}

// LiteralExpr is a literal int/real/string/bool/nil value baked directly
// into the tree at parse time.
type LiteralExpr struct {
	Value value.Value
}

// VariableExpr is a reference to a bound name.
type VariableExpr struct {
	Name  string
	Token token.Token
}

// AssignExpr is `name = value`; assignment is an expression, so it
// yields the assigned value.
type AssignExpr struct {
	Name  string
	Token token.Token
	Value Expr
}

func (BinaryExpr) exprNode()   {}
func (LogicalExpr) exprNode()  {}
func (UnaryExpr) exprNode()    {}
func (GroupingExpr) exprNode() {}
func (LiteralExpr) exprNode()  {}
func (VariableExpr) exprNode() {}
func (AssignExpr) exprNode()   {}
