// Package runtime defines loxgo's runtime value representation — the
// dynamically-typed values a program computes over — and the chained
// lexical environments that bind names to them (ref. spec.md §3 "Runtime
// values", §4.4 "Environment").
package runtime

import (
	"fmt"

	"github.com/deep-adeshraa/loxgo/internal/ast"
)

// Value is any loxgo runtime value: nil, a boolean, a number (float64), a
// string, a Callable (function, bound method, or class), or an *Instance.
// Go's `any` stands in for the source language's own dynamic type tag;
// IsTruthy, Equal, and Stringify below give it the language's semantics
// rather than Go's.
type Value = any

// Callable is any value that can appear as the callee of a Call
// expression: a user function, a bound method, a class (construction), or
// a native builtin such as clock.
type Callable interface {
	Arity() int
	Call(interp Interpreter, args []Value) (Value, error)
	String() string
}

// Interpreter is the minimal surface of the evaluator that a Callable
// needs in order to run a function body: execute a statement sequence in
// a given environment, returning a non-local return as a *ReturnSignal
// error. Declaring it here (rather than importing internal/interp)
// avoids a runtime → interp import cycle, the same seam the teacher's
// runtime package keeps against its ClassInfo via IClassInfo.
type Interpreter interface {
	ExecStmts(stmts []ast.Stmt, env *Environment) error
}

// IsTruthy implements the language's truthiness rule: nil and false are
// falsy, everything else is truthy (ref. spec.md's "Truthiness" glossary
// entry).
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal implements the language's equality rule: nil-safe and typed.
// Values of different Go dynamic types never compare equal.
func Equal(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		// Callables and instances compare by identity.
		return a == b
	}
}

// Stringify renders v the way `print` does: number formatting strips a
// trailing ".0" for integral floats, nil prints as "nil", booleans as
// "true"/"false", and strings print without surrounding quotes (ref.
// spec.md §4.5 "PrintStmt", §6 "Number formatting"). This is distinct
// from token.Token.TokenizeText, which always keeps the ".0".
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(val)
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
