package parser

import (
	"github.com/deep-adeshraa/loxgo/internal/ast"
	"github.com/deep-adeshraa/loxgo/internal/token"
)

// ifStmt → "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStmt() ast.Stmt {
	keyword := p.previous()
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")

	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}

	return &ast.If{Keyword: keyword, Cond: cond, Then: then, Else: elseBranch}
}

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStmt() ast.Stmt {
	keyword := p.previous()
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after while condition.")
	body := p.statement()

	return &ast.While{Keyword: keyword, Cond: cond, Body: body}
}

// forStmt → "for" "(" ( varDecl | exprStmt | ";" )
//                    expression? ";" expression? ")" statement
//
// Desugars to the same AST as `{ init; while (cond) { body; update; } }`, a
// missing condition is literal `true`, and a missing init/update is simply
// omitted from the synthesized block (ref. spec.md §4.2 "for desugaring").
func (p *Parser) forStmt() ast.Stmt {
	keyword := p.previous()
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.match(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var update ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		update = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if update != nil {
		body = &ast.Block{LBrace: keyword, Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: update}}}
	}

	if cond == nil {
		cond = ast.NewLiteral(token.New(token.TRUE, "true", true, keyword.Pos.Line), true)
	}
	body = &ast.While{Keyword: keyword, Cond: cond, Body: body}

	if init != nil {
		body = &ast.Block{LBrace: keyword, Statements: []ast.Stmt{init, body}}
	}

	return body
}
