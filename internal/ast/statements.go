package ast

import (
	"strings"

	"github.com/deep-adeshraa/loxgo/internal/token"
)

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (e *ExpressionStmt) stmtNode()           {}
func (e *ExpressionStmt) Pos() token.Position { return e.Expression.Pos() }
func (e *ExpressionStmt) String() string      { return e.Expression.String() }

// PrintStmt evaluates an expression and writes its value followed by a
// newline.
type PrintStmt struct {
	Keyword    token.Token
	Expression Expr
}

func (p *PrintStmt) stmtNode()           {}
func (p *PrintStmt) Pos() token.Position { return p.Keyword.Pos }
func (p *PrintStmt) String() string      { return "(print " + p.Expression.String() + ")" }

// VarDecl declares a new binding in the current scope, optionally with an
// initializer expression.
type VarDecl struct {
	Name        token.Token
	Initializer Expr // nil if absent
}

func (v *VarDecl) stmtNode()           {}
func (v *VarDecl) Pos() token.Position { return v.Name.Pos }
func (v *VarDecl) String() string {
	if v.Initializer == nil {
		return "(var " + v.Name.Lexeme + ")"
	}
	return "(var " + v.Name.Lexeme + " " + v.Initializer.String() + ")"
}

// Block introduces a fresh lexical scope around a sequence of statements.
type Block struct {
	LBrace     token.Token
	Statements []Stmt
}

func (b *Block) stmtNode()           {}
func (b *Block) Pos() token.Position { return b.LBrace.Pos }
func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("(block")
	for _, s := range b.Statements {
		sb.WriteString(" ")
		sb.WriteString(s.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// If runs Then when Cond is truthy, else Else if present.
type If struct {
	Keyword token.Token
	Cond    Expr
	Then    Stmt
	Else    Stmt // nil if absent
}

func (i *If) stmtNode()           {}
func (i *If) Pos() token.Position { return i.Keyword.Pos }
func (i *If) String() string {
	if i.Else == nil {
		return "(if " + i.Cond.String() + " " + i.Then.String() + ")"
	}
	return "(if " + i.Cond.String() + " " + i.Then.String() + " " + i.Else.String() + ")"
}

// While evaluates Cond before each iteration and runs Body while it holds.
type While struct {
	Keyword token.Token
	Cond    Expr
	Body    Stmt
}

func (w *While) stmtNode()           {}
func (w *While) Pos() token.Position { return w.Keyword.Pos }
func (w *While) String() string {
	return "(while " + w.Cond.String() + " " + w.Body.String() + ")"
}

// FunctionDecl declares a named function (or a class method) with its
// parameter list and body.
type FunctionDecl struct {
	Name   token.Token
	Params []token.Token
	Body   *Block
}

func (f *FunctionDecl) stmtNode()           {}
func (f *FunctionDecl) Pos() token.Position { return f.Name.Pos }
func (f *FunctionDecl) String() string {
	var sb strings.Builder
	sb.WriteString("(fun " + f.Name.Lexeme + " (")
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(p.Lexeme)
	}
	sb.WriteString(") " + f.Body.String() + ")")
	return sb.String()
}

// Return transports Value (or nil, for a bare "return;") non-locally out of
// the enclosing function call.
type Return struct {
	Keyword token.Token
	Value   Expr // nil if absent
}

func (r *Return) stmtNode()           {}
func (r *Return) Pos() token.Position { return r.Keyword.Pos }
func (r *Return) String() string {
	if r.Value == nil {
		return "(return)"
	}
	return "(return " + r.Value.String() + ")"
}

// ClassDecl declares a class with its methods and an optional superclass
// reference. The superclass is parsed but, per spec.md's explicit Open
// Question, never consulted by the resolver or evaluator (ref. §9.1 of
// SPEC_FULL.md: inheritance is a non-goal).
type ClassDecl struct {
	Name       token.Token
	Superclass *Variable // nil if absent
	Methods    []*FunctionDecl
}

func (c *ClassDecl) stmtNode()           {}
func (c *ClassDecl) Pos() token.Position { return c.Name.Pos }
func (c *ClassDecl) String() string {
	var sb strings.Builder
	sb.WriteString("(class " + c.Name.Lexeme)
	if c.Superclass != nil {
		sb.WriteString(" < " + c.Superclass.Name.Lexeme)
	}
	for _, m := range c.Methods {
		sb.WriteString(" " + m.String())
	}
	sb.WriteString(")")
	return sb.String()
}
