package runtime

import (
	"fmt"

	"github.com/deep-adeshraa/loxgo/internal/ast"
)

// Function is a user-defined function or method: a declaration paired
// with the environment in which it was declared (ref. spec.md §4.5
// "FunctionDecl" and "Closures" — "every FunctionDecl captures the
// environment active at its own declaration").
type Function struct {
	decl          *ast.FunctionDecl
	closure       *Environment
	isInitializer bool
}

// NewFunction wraps decl with the environment it closes over. isInitializer
// marks the class's init method, whose return value is always discarded
// in favor of the instance (ref. spec.md §9.1, confirmed against the
// original's MyFunction.__call__).
func NewFunction(decl *ast.FunctionDecl, closure *Environment, isInitializer bool) *Function {
	return &Function{decl: decl, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Arity() int { return len(f.decl.Params) }

// Call binds each argument to its parameter in a fresh environment
// enclosed by the function's closure, then runs the body. A `return`
// inside the body surfaces here as a *ReturnSignal, which Call unwraps
// into an ordinary value; falling off the end of the body yields nil.
func (f *Function) Call(interp Interpreter, args []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.ExecStmts(f.decl.Body.Statements, env)
	if err != nil {
		ret, ok := err.(*ReturnSignal)
		if !ok {
			return nil, err
		}
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// Bind returns a new Function identical to f except that its closure
// additionally binds "this" to instance, leaving f itself untouched (ref.
// spec.md §4.5 "Method binding" — "binding produces a new function value;
// it never mutates the method stored on the class").
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.decl, env, f.isInitializer)
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.decl.Name.Lexeme)
}
