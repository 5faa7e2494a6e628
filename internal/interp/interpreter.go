// Package interp evaluates a resolved AST: the tree-walking evaluator
// described by spec.md §4.5, operating over the internal/interp/runtime
// value and environment model.
package interp

import (
	"fmt"
	"io"

	"github.com/deep-adeshraa/loxgo/internal/ast"
	"github.com/deep-adeshraa/loxgo/internal/diagnostics"
	"github.com/deep-adeshraa/loxgo/internal/interp/runtime"
	"github.com/deep-adeshraa/loxgo/internal/resolver"
)

// Interpreter walks a resolved program once, executing its statements for
// effect. It owns the global environment and the current one, which is
// swapped on block entry/exit and function call (ref. spec.md §4.5).
type Interpreter struct {
	globals *runtime.Environment
	env     *runtime.Environment
	locals  resolver.Locals
	out     io.Writer
}

// New creates an Interpreter with a fresh global environment pre-bound
// with the clock builtin, writing `print` output to out (ref. spec.md
// §4.4 "A fresh global environment pre-binds clock").
func New(out io.Writer) *Interpreter {
	globals := runtime.Globals()
	return &Interpreter{globals: globals, env: globals, out: out}
}

// Run executes prog's top-level statements using locals, the resolver's
// lexical-distance annotations. It returns the first runtime error
// encountered, already formatted as a *diagnostics.SourceError; execution
// stops at that point, matching spec.md §7's "fatal" runtime errors.
func (it *Interpreter) Run(prog *ast.Program, locals resolver.Locals) error {
	it.locals = locals
	for _, stmt := range prog.Statements {
		if err := it.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ExecStmts implements runtime.Interpreter: it runs stmts against env,
// temporarily making env the interpreter's current environment. A
// *runtime.ReturnSignal or any other error aborts the remaining
// statements and propagates to the caller (ref. spec.md §4.5 "Block" —
// "the environment is always restored on exit, including on non-local
// return").
func (it *Interpreter) ExecStmts(stmts []ast.Stmt, env *runtime.Environment) error {
	prev := it.env
	it.env = env
	defer func() { it.env = prev }()

	for _, stmt := range stmts {
		if err := it.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) runtimeErr(line int, format string, args ...any) error {
	return diagnostics.New(diagnostics.Runtime, line, fmt.Sprintf(format, args...))
}
