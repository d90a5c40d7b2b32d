package parser

import (
	"github.com/lumen-lang/lumen/ast"
	"github.com/lumen-lang/lumen/token"
	"github.com/lumen-lang/lumen/value"
)

// expression := assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment := IDENT '=' assignment | logic_or
//
// The left-hand side is parsed as a full logic_or expression first; if
// an '=' follows, the left-hand side must turn out to have been a bare
// VariableExpr, otherwise this is an invalid l-value.
func (p *Parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(token.ASSIGN) {
		eq := p.previous()
		value := p.assignment()

		if v, ok := expr.(ast.VariableExpr); ok {
			return ast.AssignExpr{Name: v.Name, Token: v.Token, Value: value}
		}
		p.fail(eq.Line, eq.Lexeme, "invalid l-value")
	}
	return expr
}

// logic_or := logic_and ('or' logic_and)*
func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.OR) {
		op := p.previous()
		right := p.logicAnd()
		expr = ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// logic_and := equality ('and' equality)*
func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality := comparison (('!=' | '==') comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison := term (('>' | '>=' | '<' | '<=') term)*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// term := factor (('-' | '+') factor)*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor := unary (('/' | '*') unary)*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary := ('!' | '-') unary | primary
func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		operand := p.unary()
		return ast.UnaryExpr{Op: op, Operand: operand}
	}
	return p.primary()
}

// primary := 'true' | 'false' | 'nil'
//          | INT_LIT | REAL_LIT | STR_LIT
//          | IDENT | '(' expression ')'
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.TRUE):
		return ast.LiteralExpr{Value: value.Bool{V: true}}
	case p.match(token.FALSE):
		return ast.LiteralExpr{Value: value.Bool{V: false}}
	case p.match(token.NIL):
		return ast.LiteralExpr{Value: value.NilValue}
	case p.match(token.INT_LIT):
		return ast.LiteralExpr{Value: value.Int{V: p.previous().Literal.(int64)}}
	case p.match(token.REAL_LIT):
		return ast.LiteralExpr{Value: value.Real{V: p.previous().Literal.(float64)}}
	case p.match(token.STRING_LIT):
		return ast.LiteralExpr{Value: value.Str{V: p.previous().Literal.(string)}}
	case p.match(token.IDENT):
		tok := p.previous()
		return ast.VariableExpr{Name: tok.Lexeme, Token: tok}
	case p.match(token.LPAREN):
		expr := p.expression()
		p.consume(token.RPAREN, "missing ')' after expression")
		return ast.GroupingExpr{Inner: expr}
	default:
		tok := p.peek()
		if tok.Kind == token.EOF {
			p.fail(tok.Line, "", "unfinished expression")
		}
		p.fail(tok.Line, tok.Lexeme, "expression expected")
		return nil // unreachable: fail panics
	}
}
