package interp

import (
	"fmt"

	"github.com/deep-adeshraa/loxgo/internal/ast"
	"github.com/deep-adeshraa/loxgo/internal/interp/runtime"
	"github.com/deep-adeshraa/loxgo/internal/token"
)

// eval computes the value of expr against it.env (ref. spec.md §4.5
// "Expression evaluation").
func (it *Interpreter) eval(e ast.Expr) (runtime.Value, error) {
	switch expr := e.(type) {
	case *ast.Literal:
		return expr.Value, nil

	case *ast.Grouping:
		return it.eval(expr.Inner)

	case *ast.Unary:
		return it.evalUnary(expr)

	case *ast.Binary:
		return it.evalBinary(expr)

	case *ast.Logical:
		return it.evalLogical(expr)

	case *ast.Variable:
		return it.lookupVariable(expr.Name.Lexeme, expr.ID(), expr.Name.Pos.Line)

	case *ast.Assignment:
		val, err := it.eval(expr.Value)
		if err != nil {
			return nil, err
		}
		if err := it.assignVariable(expr.Name.Lexeme, expr.ID(), val); err != nil {
			return nil, it.runtimeErr(expr.Name.Pos.Line, "%s", err)
		}
		return val, nil

	case *ast.Call:
		return it.evalCall(expr)

	case *ast.Get:
		return it.evalGet(expr)

	case *ast.Set:
		return it.evalSet(expr)

	case *ast.This:
		return it.lookupVariable("this", expr.ID(), expr.Keyword.Pos.Line)

	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", e))
	}
}

// lookupVariable routes a read through the resolver's annotation: a
// recorded depth reads via GetAt on the current environment, an
// unannotated expression reads the global environment directly (ref.
// spec.md §4.5 "Variable reads via the resolution map").
func (it *Interpreter) lookupVariable(name string, exprID int, line int) (runtime.Value, error) {
	if depth, ok := it.locals[exprID]; ok {
		return it.env.GetAt(depth, name), nil
	}
	val, err := it.globals.Get(name)
	if err != nil {
		return nil, it.runtimeErr(line, "%s", err)
	}
	return val, nil
}

// assignVariable mirrors lookupVariable's routing for writes.
func (it *Interpreter) assignVariable(name string, exprID int, val runtime.Value) error {
	if depth, ok := it.locals[exprID]; ok {
		it.env.AssignAt(depth, name, val)
		return nil
	}
	return it.globals.Assign(name, val)
}

func (it *Interpreter) evalUnary(expr *ast.Unary) (runtime.Value, error) {
	operand, err := it.eval(expr.Operand)
	if err != nil {
		return nil, err
	}
	switch expr.Op.Kind {
	case token.MINUS:
		n, ok := operand.(float64)
		if !ok {
			return nil, it.runtimeErr(expr.Op.Pos.Line, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !runtime.IsTruthy(operand), nil
	default:
		panic("interp: unhandled unary operator " + expr.Op.Kind.String())
	}
}

func (it *Interpreter) evalLogical(expr *ast.Logical) (runtime.Value, error) {
	left, err := it.eval(expr.Left)
	if err != nil {
		return nil, err
	}
	switch expr.Op.Kind {
	case token.OR:
		if runtime.IsTruthy(left) {
			return left, nil
		}
	case token.AND:
		if !runtime.IsTruthy(left) {
			return left, nil
		}
	default:
		panic("interp: unhandled logical operator " + expr.Op.Kind.String())
	}
	return it.eval(expr.Right)
}

func (it *Interpreter) evalBinary(expr *ast.Binary) (runtime.Value, error) {
	left, err := it.eval(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.eval(expr.Right)
	if err != nil {
		return nil, err
	}

	line := expr.Op.Pos.Line
	switch expr.Op.Kind {
	case token.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, it.runtimeErr(line, "Operands must be two numbers or two strings.")
	case token.MINUS:
		ln, rn, err := it.bothNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil
	case token.STAR:
		ln, rn, err := it.bothNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil
	case token.SLASH:
		ln, rn, err := it.bothNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil
	case token.GREATER:
		ln, rn, err := it.bothNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil
	case token.GREATER_EQUAL:
		ln, rn, err := it.bothNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil
	case token.LESS:
		ln, rn, err := it.bothNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil
	case token.LESS_EQUAL:
		ln, rn, err := it.bothNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil
	case token.EQUAL_EQUAL:
		return runtime.Equal(left, right), nil
	case token.BANG_EQUAL:
		return !runtime.Equal(left, right), nil
	default:
		panic("interp: unhandled binary operator " + expr.Op.Kind.String())
	}
}

func (it *Interpreter) bothNumbers(left, right runtime.Value, line int) (float64, float64, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, it.runtimeErr(line, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (it *Interpreter) evalCall(expr *ast.Call) (runtime.Value, error) {
	callee, err := it.eval(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]runtime.Value, len(expr.Args))
	for i, a := range expr.Args {
		val, err := it.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	callable, ok := callee.(runtime.Callable)
	if !ok {
		return nil, it.runtimeErr(expr.Paren.Pos.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, it.runtimeErr(expr.Paren.Pos.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(it, args)
}

func (it *Interpreter) evalGet(expr *ast.Get) (runtime.Value, error) {
	obj, err := it.eval(expr.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*runtime.Instance)
	if !ok {
		return nil, it.runtimeErr(expr.Name.Pos.Line, "Only instances have properties.")
	}
	val, err := instance.Get(expr.Name.Lexeme)
	if err != nil {
		return nil, it.runtimeErr(expr.Name.Pos.Line, "%s", err)
	}
	return val, nil
}

func (it *Interpreter) evalSet(expr *ast.Set) (runtime.Value, error) {
	obj, err := it.eval(expr.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*runtime.Instance)
	if !ok {
		return nil, it.runtimeErr(expr.Name.Pos.Line, "Only instances have fields.")
	}
	val, err := it.eval(expr.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(expr.Name.Lexeme, val)
	return val, nil
}
