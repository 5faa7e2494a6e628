package resolver

import (
	"github.com/deep-adeshraa/loxgo/internal/ast"
	"github.com/deep-adeshraa/loxgo/internal/diagnostics"
)

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch stmt := s.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(stmt.Expression)

	case *ast.PrintStmt:
		r.resolveExpr(stmt.Expression)

	case *ast.VarDecl:
		r.declare(stmt.Name.Lexeme, stmt.Name.Pos.Line)
		if stmt.Initializer != nil {
			r.resolveExpr(stmt.Initializer)
		}
		r.define(stmt.Name.Lexeme)

	case *ast.Block:
		r.beginScope()
		r.resolveStmts(stmt.Statements)
		r.endScope()

	case *ast.If:
		r.resolveExpr(stmt.Cond)
		r.resolveStmt(stmt.Then)
		if stmt.Else != nil {
			r.resolveStmt(stmt.Else)
		}

	case *ast.While:
		r.resolveExpr(stmt.Cond)
		r.resolveStmt(stmt.Body)

	case *ast.FunctionDecl:
		r.declare(stmt.Name.Lexeme, stmt.Name.Pos.Line)
		r.define(stmt.Name.Lexeme)
		r.resolveFunction(stmt)

	case *ast.Return:
		if stmt.Value != nil {
			r.resolveExpr(stmt.Value)
		}

	case *ast.ClassDecl:
		r.resolveClass(stmt)

	default:
		panic("resolver: unhandled statement type")
	}
}

// resolveFunction opens a new scope for the parameters and body, allowing
// recursive self-reference since the function's own name was already
// declared+defined in the enclosing scope before this call (ref. spec.md
// §4.3 "FunctionDecl").
func (r *Resolver) resolveFunction(fn *ast.FunctionDecl) {
	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p.Lexeme, p.Pos.Line)
		r.define(p.Lexeme)
	}
	r.resolveStmts(fn.Body.Statements)
	r.endScope()
}

// resolveClass declares the class name, then resolves each method within a
// fresh scope that binds `this` (ref. spec.md §4.3's forward reference to
// §4.5's method binding).
func (r *Resolver) resolveClass(cls *ast.ClassDecl) {
	r.declare(cls.Name.Lexeme, cls.Name.Pos.Line)
	r.define(cls.Name.Lexeme)

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = defined

	for _, m := range cls.Methods {
		r.resolveFunction(m)
	}

	r.endScope()
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch expr := e.(type) {
	case *ast.Literal:
		// no bindings to resolve

	case *ast.Grouping:
		r.resolveExpr(expr.Inner)

	case *ast.Unary:
		r.resolveExpr(expr.Operand)

	case *ast.Binary:
		r.resolveExpr(expr.Left)
		r.resolveExpr(expr.Right)

	case *ast.Logical:
		r.resolveExpr(expr.Left)
		r.resolveExpr(expr.Right)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if state, ok := r.scopes[len(r.scopes)-1][expr.Name.Lexeme]; ok && state == declared {
				r.bag.Add(diagnostics.Syntax, expr.Name.Pos.Line, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(expr.ID(), expr.Name.Lexeme)

	case *ast.Assignment:
		r.resolveExpr(expr.Value)
		r.resolveLocal(expr.ID(), expr.Name.Lexeme)

	case *ast.Call:
		r.resolveExpr(expr.Callee)
		for _, a := range expr.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(expr.Object)

	case *ast.Set:
		r.resolveExpr(expr.Value)
		r.resolveExpr(expr.Object)

	case *ast.This:
		// This resolves exactly like a Variable named "this" (ref. spec.md §9.1).
		r.resolveLocal(expr.ID(), "this")

	default:
		panic("resolver: unhandled expression type")
	}
}
