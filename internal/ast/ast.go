// Package ast defines the Abstract Syntax Tree node types produced by the
// parser: expressions, which produce a value, and statements, which perform
// an action.
package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/deep-adeshraa/loxgo/internal/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// String renders the node in fully-parenthesized prefix form, as used
	// by the `parse` CLI mode.
	String() string
	// Pos returns the source position of the node, for diagnostics.
	Pos() token.Position
}

// Expr is any node that produces a value. Every expression carries a unique
// id, assigned at construction time, used to key the resolver's resolution
// map (ref. spec.md §9: "give each expression node a unique integer id").
type Expr interface {
	Node
	exprNode()
	ID() int
}

// Stmt is a node that performs an action but does not itself produce a
// value.
type Stmt interface {
	Node
	stmtNode()
}

var nextExprID = 0

func newExprID() int {
	nextExprID++
	return nextExprID
}

type exprBase struct {
	id int
}

func newExprBase() exprBase {
	return exprBase{id: newExprID()}
}

func (e exprBase) ID() int { return e.id }

// Program is the root node: the full sequence of top-level statements.
type Program struct {
	Statements []Stmt
}

func (p *Program) String() string {
	var out bytes.Buffer
	for i, s := range p.Statements {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(s.String())
	}
	return out.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1}
}

// ---- Expressions ----

// Literal is a number, string, boolean, or nil constant.
type Literal struct {
	exprBase
	Token token.Token
	Value any
}

func NewLiteral(tok token.Token, value any) *Literal {
	return &Literal{exprBase: newExprBase(), Token: tok, Value: value}
}

func (l *Literal) exprNode() {}
func (l *Literal) Pos() token.Position { return l.Token.Pos }
func (l *Literal) String() string {
	switch v := l.Value.(type) {
	case nil:
		return "nil"
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Grouping is a parenthesized expression, e.g. "(1 + 2)".
type Grouping struct {
	exprBase
	LParen token.Token
	Inner  Expr
}

func NewGrouping(lparen token.Token, inner Expr) *Grouping {
	return &Grouping{exprBase: newExprBase(), LParen: lparen, Inner: inner}
}

func (g *Grouping) exprNode()             {}
func (g *Grouping) Pos() token.Position   { return g.LParen.Pos }
func (g *Grouping) String() string        { return "(group " + g.Inner.String() + ")" }

// Unary is a prefix operator applied to a single operand: "-x" or "!x".
type Unary struct {
	exprBase
	Op      token.Token
	Operand Expr
}

func NewUnary(op token.Token, operand Expr) *Unary {
	return &Unary{exprBase: newExprBase(), Op: op, Operand: operand}
}

func (u *Unary) exprNode()           {}
func (u *Unary) Pos() token.Position { return u.Op.Pos }
func (u *Unary) String() string {
	return "(" + u.Op.Lexeme + " " + u.Operand.String() + ")"
}

// Binary applies an infix operator to two operands.
type Binary struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

func NewBinary(left Expr, op token.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(), Left: left, Op: op, Right: right}
}

func (b *Binary) exprNode()           {}
func (b *Binary) Pos() token.Position { return b.Op.Pos }
func (b *Binary) String() string {
	return "(" + b.Op.Lexeme + " " + b.Left.String() + " " + b.Right.String() + ")"
}

// Logical is "and"/"or", which short-circuit rather than always evaluating
// both operands.
type Logical struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

func NewLogical(left Expr, op token.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(), Left: left, Op: op, Right: right}
}

func (l *Logical) exprNode()           {}
func (l *Logical) Pos() token.Position { return l.Op.Pos }
func (l *Logical) String() string {
	return "(" + l.Op.Lexeme + " " + l.Left.String() + " " + l.Right.String() + ")"
}

// Variable is a read of a named binding.
type Variable struct {
	exprBase
	Name token.Token
}

func NewVariable(name token.Token) *Variable {
	return &Variable{exprBase: newExprBase(), Name: name}
}

func (v *Variable) exprNode()           {}
func (v *Variable) Pos() token.Position { return v.Name.Pos }
func (v *Variable) String() string      { return v.Name.Lexeme }

// Assignment writes a new value to a named binding and yields that value.
type Assignment struct {
	exprBase
	Name  token.Token
	Value Expr
}

func NewAssignment(name token.Token, value Expr) *Assignment {
	return &Assignment{exprBase: newExprBase(), Name: name, Value: value}
}

func (a *Assignment) exprNode()           {}
func (a *Assignment) Pos() token.Position { return a.Name.Pos }
func (a *Assignment) String() string {
	return "(= " + a.Name.Lexeme + " " + a.Value.String() + ")"
}

// Call invokes a callee with a list of arguments. Paren is the closing
// parenthesis token, recorded so runtime errors can point at the call site.
type Call struct {
	exprBase
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{exprBase: newExprBase(), Callee: callee, Paren: paren, Args: args}
}

func (c *Call) exprNode()           {}
func (c *Call) Pos() token.Position { return c.Paren.Pos }
func (c *Call) String() string {
	var sb strings.Builder
	sb.WriteString("(call ")
	sb.WriteString(c.Callee.String())
	for _, a := range c.Args {
		sb.WriteString(" ")
		sb.WriteString(a.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// Get reads a property (field or method) off an instance.
type Get struct {
	exprBase
	Object Expr
	Name   token.Token
}

func NewGet(object Expr, name token.Token) *Get {
	return &Get{exprBase: newExprBase(), Object: object, Name: name}
}

func (g *Get) exprNode()           {}
func (g *Get) Pos() token.Position { return g.Name.Pos }
func (g *Get) String() string {
	return "(. " + g.Object.String() + " " + g.Name.Lexeme + ")"
}

// Set writes a property on an instance and yields the assigned value.
type Set struct {
	exprBase
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{exprBase: newExprBase(), Object: object, Name: name, Value: value}
}

func (s *Set) exprNode()           {}
func (s *Set) Pos() token.Position { return s.Name.Pos }
func (s *Set) String() string {
	return "(set " + s.Object.String() + " " + s.Name.Lexeme + " " + s.Value.String() + ")"
}

// This is the implicit receiver inside a method body. It resolves and
// evaluates exactly like a Variable named "this" (ref. spec.md §9.1).
type This struct {
	exprBase
	Keyword token.Token
}

func NewThis(keyword token.Token) *This {
	return &This{exprBase: newExprBase(), Keyword: keyword}
}

func (t *This) exprNode()           {}
func (t *This) Pos() token.Position { return t.Keyword.Pos }
func (t *This) String() string      { return "this" }
