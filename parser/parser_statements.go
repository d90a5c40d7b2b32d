package parser

import (
	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/token"
)

// declaration := 'int' intDecl | 'real' realDecl | 'str' strDecl | statement
func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.match(token.INT):
		return p.typedDecl(declInt)
	case p.match(token.REAL):
		return p.typedDecl(declReal)
	case p.match(token.STR):
		return p.typedDecl(declStr)
	default:
		return p.statement()
	}
}

type declKind int

const (
	declInt declKind = iota
	declReal
	declStr
)

// <typed>Decl := IDENT ('=' expression)? ';'
func (p *Parser) typedDecl(kind declKind) ast.Stmt {
	nameTok := p.consume(token.IDENT, "expect variable name")
	var init ast.Expr
	if p.match(token.ASSIGN) {
		init = p.expression()
	}
	p.consume(token.SEMICOLON, "expect ';' after declaration")
	switch kind {
	case declInt:
		return ast.IntDeclStmt{Name: nameTok.Lexeme, Token: nameTok, Init: init}
	case declReal:
		return ast.RealDeclStmt{Name: nameTok.Lexeme, Token: nameTok, Init: init}
	default:
		return ast.StrDeclStmt{Name: nameTok.Lexeme, Token: nameTok, Init: init}
	}
}

// statement := 'print' expression ';'
//            | 'if' '(' expression ')' statement ('else' statement)?
//            | 'while' '(' expression ')' statement
//            | 'for' IDENT '=' expression 'to' expression 'do' statement
//            | 'repeat' declaration* 'until' '(' expression ')' ';'
//            | block
//            | expression ';'
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.PRINT):
		return p.printStmt()
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.REPEAT):
		return p.repeatStmt()
	case p.check(token.LBRACE):
		p.advance()
		return ast.BlockStmt{Stmts: p.block()}
	default:
		return p.exprStmt()
	}
}

func (p *Parser) printStmt() ast.Stmt {
	value := p.expression()
	p.consume(token.SEMICOLON, "expect ';' after print value")
	return ast.PrintStmt{Expr: value}
}

func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "expect ';' after expression")
	return ast.ExprStmt{Expr: expr}
}

// block := '{' declaration* '}'
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(token.RBRACE, "expect '}' after block")
	return stmts
}

func (p *Parser) ifStmt() ast.Stmt {
	p.consume(token.LPAREN, "expect '(' after 'if'")
	cond := p.expression()
	p.consume(token.RPAREN, "expect ')' after if condition")
	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return ast.IfStmt{Cond: cond, Then: then, Else: elseBranch}
}

func (p *Parser) whileStmt() ast.Stmt {
	p.consume(token.LPAREN, "expect '(' after 'while'")
	cond := p.expression()
	p.consume(token.RPAREN, "expect ')' after while condition")
	body := p.statement()
	return ast.WhileStmt{Cond: cond, Body: body}
}

// for := 'for' IDENT '=' expression 'to' expression 'do' statement
func (p *Parser) forStmt() ast.Stmt {
	nameTok := p.consume(token.IDENT, "expect loop variable name")
	p.consume(token.ASSIGN, "expect '=' after loop variable")
	start := p.expression()
	p.consume(token.TO, "expect 'to' in for statement")
	end := p.expression()
	p.consume(token.DO, "expect 'do' after for bounds")
	body := p.statement()
	return ast.ForStmt{Name: nameTok.Lexeme, Token: nameTok, Start: start, End: end, Body: body}
}

// repeat := 'repeat' declaration* 'until' '(' expression ')' ';'
func (p *Parser) repeatStmt() ast.Stmt {
	var body []ast.Stmt
	for !p.check(token.UNTIL) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			body = append(body, stmt)
		}
	}
	p.consume(token.UNTIL, "expect 'until' to close repeat")
	p.consume(token.LPAREN, "expect '(' after 'until'")
	cond := p.expression()
	p.consume(token.RPAREN, "expect ')' after until condition")
	p.consume(token.SEMICOLON, "expect ';' after until condition")
	return ast.RepeatStmt{Body: body, Cond: cond}
}
