package parser

import (
	"github.com/deep-adeshraa/loxgo/internal/ast"
	"github.com/deep-adeshraa/loxgo/internal/token"
)

const maxParams = 255

// statement → printStmt | varDecl | block | ifStmt | whileStmt
//           | forStmt | funDecl | returnStmt | classDecl | exprStmt
func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.match(token.VAR):
		return p.varDecl()
	case p.match(token.FUN):
		return p.funDecl("function")
	case p.match(token.CLASS):
		return p.classDecl()
	default:
		return p.statement()
	}
}

// varDecl → "var" IDENT ( "=" expression )? ";"
func (p *Parser) varDecl() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}

	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarDecl{Name: name, Initializer: initializer}
}

// funDecl → "fun" IDENT "(" params? ")" block
// Also used, with kind="method", for the bodies of classDecl.
func (p *Parser) funDecl(kind string) *ast.FunctionDecl {
	name := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(token.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxParams {
				p.fail("Can't have more than 255 parameters.")
				panic(parseError{})
			}
			params = append(params, p.consume(token.IDENTIFIER, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()

	return &ast.FunctionDecl{Name: name, Params: params, Body: body}
}

// classDecl → "class" IDENT ( "<" IDENT )? "{" funDecl* "}"
func (p *Parser) classDecl() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect class name.")

	var superclass *ast.Variable
	if p.match(token.LESS) {
		p.consume(token.IDENTIFIER, "Expect superclass name.")
		superclass = ast.NewVariable(p.previous())
	}

	p.consume(token.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.FunctionDecl
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.funDecl("method"))
	}

	p.consume(token.RIGHT_BRACE, "Expect '}' after class body.")
	return &ast.ClassDecl{Name: name, Superclass: superclass, Methods: methods}
}
