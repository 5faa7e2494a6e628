package interp

import (
	"fmt"

	"github.com/deep-adeshraa/loxgo/internal/ast"
	"github.com/deep-adeshraa/loxgo/internal/interp/runtime"
)

// exec runs one statement for effect against it.env (ref. spec.md §4.5
// "Statement execution").
func (it *Interpreter) exec(s ast.Stmt) error {
	switch stmt := s.(type) {
	case *ast.ExpressionStmt:
		_, err := it.eval(stmt.Expression)
		return err

	case *ast.PrintStmt:
		val, err := it.eval(stmt.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.out, runtime.Stringify(val))
		return nil

	case *ast.VarDecl:
		var val runtime.Value
		if stmt.Initializer != nil {
			v, err := it.eval(stmt.Initializer)
			if err != nil {
				return err
			}
			val = v
		}
		it.env.Define(stmt.Name.Lexeme, val)
		return nil

	case *ast.Block:
		return it.ExecStmts(stmt.Statements, runtime.NewEnclosedEnvironment(it.env))

	case *ast.If:
		cond, err := it.eval(stmt.Cond)
		if err != nil {
			return err
		}
		if runtime.IsTruthy(cond) {
			return it.exec(stmt.Then)
		}
		if stmt.Else != nil {
			return it.exec(stmt.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := it.eval(stmt.Cond)
			if err != nil {
				return err
			}
			if !runtime.IsTruthy(cond) {
				return nil
			}
			if err := it.exec(stmt.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionDecl:
		fn := runtime.NewFunction(stmt, it.env, false)
		it.env.Define(stmt.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var val runtime.Value
		if stmt.Value != nil {
			v, err := it.eval(stmt.Value)
			if err != nil {
				return err
			}
			val = v
		}
		return &runtime.ReturnSignal{Value: val}

	case *ast.ClassDecl:
		return it.execClassDecl(stmt)

	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", s))
	}
}

// execClassDecl declares the class name ahead of building its methods —
// placeholder nil, then the real value — so a method that (syntactically)
// referenced its own class name during resolution finds a binding,
// mirroring FunctionDecl's self-reference support (ref. spec.md §4.5
// "ClassDecl").
func (it *Interpreter) execClassDecl(stmt *ast.ClassDecl) error {
	it.env.Define(stmt.Name.Lexeme, nil)

	methods := make(map[string]*runtime.Function, len(stmt.Methods))
	for _, m := range stmt.Methods {
		methods[m.Name.Lexeme] = runtime.NewFunction(m, it.env, m.Name.Lexeme == "init")
	}

	class := runtime.NewClass(stmt.Name.Lexeme, methods)
	return it.env.Assign(stmt.Name.Lexeme, class)
}
