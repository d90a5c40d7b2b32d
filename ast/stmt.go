package ast

import "github.com/lumen-lang/lumen/token"

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
}

// PrintStmt evaluates Expr and writes its textual form followed by a
// newline to the configured writer.
type PrintStmt struct {
	Expr Expr
}

// ExprStmt evaluates Expr for its side effects and discards the result.
type ExprStmt struct {
	Expr Expr
}

// IntDeclStmt, RealDeclStmt and StrDeclStmt bind Name in the current
// environment. Init is nil when the declaration has no initializer, in
// which case the binding defaults to the type's zero value.
type IntDeclStmt struct {
	Name  string
	Token token.Token
	Init  Expr // nil if absent
}

type RealDeclStmt struct {
	Name  string
	Token token.Token
	Init  Expr
}

type StrDeclStmt struct {
	Name  string
	Token token.Token
	Init  Expr
}

// BlockStmt executes Stmts in a fresh child environment, discarded on
// block exit.
type BlockStmt struct {
	Stmts []Stmt
}

// IfStmt executes Then if Cond is true, else Else (which may be nil).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

// WhileStmt repeats Body while Cond evaluates to true.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// ForStmt is the supplemented Pascal-style counting loop:
// `for Name = Start to End do Body`. Name is bound as a fresh int-typed
// local of the loop's own block scope, stepped by 1, inclusive of End.
type ForStmt struct {
	Name  string
	Token token.Token
	Start Expr
	End   Expr
	Body  Stmt
}

// RepeatStmt is the supplemented post-condition loop:
// `repeat Body until ( Cond ) ;`. Body runs at least once; the loop
// stops the first time Cond is true.
type RepeatStmt struct {
	Body []Stmt
	Cond Expr
}

func (PrintStmt) stmtNode()    {}
func (ExprStmt) stmtNode()     {}
func (IntDeclStmt) stmtNode()  {}
func (RealDeclStmt) stmtNode() {}
func (StrDeclStmt) stmtNode()  {}
func (BlockStmt) stmtNode()    {}
func (IfStmt) stmtNode()       {}
func (WhileStmt) stmtNode()    {}
func (ForStmt) stmtNode()      {}
func (RepeatStmt) stmtNode()   {}
