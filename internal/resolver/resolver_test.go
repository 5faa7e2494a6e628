package resolver

import (
	"testing"

	"github.com/deep-adeshraa/loxgo/internal/ast"
	"github.com/deep-adeshraa/loxgo/internal/lexer"
	"github.com/deep-adeshraa/loxgo/internal/parser"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l.Scan())
	prog, bag := p.Parse()
	require.False(t, bag.HasErrors(), "unexpected parse errors: %v", bag.Errors())
	return prog
}

func TestResolveLocalVariableDepth(t *testing.T) {
	prog := parseProgram(t, `
		var a = 1;
		{
			var b = 2;
			print a + b;
		}
	`)
	locals, bag := New().Resolve(prog.Statements)
	require.False(t, bag.HasErrors())

	block := prog.Statements[1].(*ast.Block)
	printStmt := block.Statements[1].(*ast.PrintStmt)
	binary := printStmt.Expression.(*ast.Binary)

	aRef := binary.Left.(*ast.Variable)
	bRef := binary.Right.(*ast.Variable)

	// `a` is declared one scope out (global, never entered as a resolver
	// scope) so it has no recorded depth; `b` is local to the block (depth 0).
	_, aHasDepth := locals[aRef.ID()]
	require.False(t, aHasDepth, "global variable should be unannotated")

	depth, ok := locals[bRef.ID()]
	require.True(t, ok)
	require.Equal(t, 0, depth)
}

func TestResolveReadBeforeInitializeIsError(t *testing.T) {
	prog := parseProgram(t, `{ var a = a; }`)
	_, bag := New().Resolve(prog.Statements)
	require.True(t, bag.HasErrors())
}

func TestResolveDuplicateLocalIsError(t *testing.T) {
	prog := parseProgram(t, `{ var a = 1; var a = 2; }`)
	_, bag := New().Resolve(prog.Statements)
	require.True(t, bag.HasErrors())
}

func TestResolveFunctionAllowsSelfReference(t *testing.T) {
	prog := parseProgram(t, `fun fib(n) { return fib(n-1); }`)
	_, bag := New().Resolve(prog.Statements)
	require.False(t, bag.HasErrors())
}

func TestResolveThisInsideMethod(t *testing.T) {
	prog := parseProgram(t, `class C { get() { return this; } }`)
	locals, bag := New().Resolve(prog.Statements)
	require.False(t, bag.HasErrors())

	cls := prog.Statements[0].(*ast.ClassDecl)
	method := cls.Methods[0]
	ret := method.Body.Statements[0].(*ast.Return)
	this := ret.Value.(*ast.This)

	// The class's `this` scope encloses the method's parameter scope, so
	// `this` read from the method body is one scope out.
	depth, ok := locals[this.ID()]
	require.True(t, ok)
	require.Equal(t, 1, depth)
}
