// Package resolver performs the static name-resolution pass: a single walk
// over the AST that annotates every Variable, Assignment, and This
// expression with the lexical distance to its binding, before any
// statement is executed (ref. spec.md §4.3).
package resolver

import (
	"github.com/deep-adeshraa/loxgo/internal/ast"
	"github.com/deep-adeshraa/loxgo/internal/diagnostics"
)

// varState is the tri-value a declared name carries while a scope is open:
// declared-but-uninitialized, or initialized.
type varState int

const (
	declared varState = iota
	defined
)

// scope is one frame of the resolver's scope stack: a mapping from name to
// its declaration state.
type scope map[string]varState

// Locals is the resolution map: for each expression (keyed by its AST node
// id, ref. spec.md §9), the number of enclosing environments to skip before
// its binding is found. An absent entry means "resolve against the global
// environment" (ref. spec.md §3 "Resolution map").
type Locals map[int]int

// Resolver walks the AST once, before evaluation, to populate a Locals map.
// It never executes code; populating the map is its only side effect.
type Resolver struct {
	scopes []scope
	locals Locals
	bag    *diagnostics.Bag
}

// New creates a Resolver ready to walk a program.
func New() *Resolver {
	return &Resolver{locals: Locals{}, bag: &diagnostics.Bag{}}
}

// Resolve walks every top-level statement and returns the resolution map.
// bag.HasErrors() reports duplicate-local and read-before-init errors,
// which spec.md §7 treats as syntactic (exit 65).
func (r *Resolver) Resolve(stmts []ast.Stmt) (Locals, *diagnostics.Bag) {
	r.resolveStmts(stmts)
	return r.locals, r.bag
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks name as present-but-uninitialized in the innermost scope.
// Re-declaring a name already present in that scope is a static error
// (ref. spec.md §4.3).
func (r *Resolver) declare(name string, line int) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if _, ok := top[name]; ok {
		r.bag.Add(diagnostics.Syntax, line, "Already a variable with this name in this scope.")
	}
	top[name] = declared
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = defined
}

// resolveLocal scans scopes innermost-to-outermost and, on the first hit,
// records the lexical distance for exprID. No hit leaves the expression
// unannotated (resolved against the global environment at runtime).
func (r *Resolver) resolveLocal(exprID int, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[exprID] = len(r.scopes) - 1 - i
			return
		}
	}
}
