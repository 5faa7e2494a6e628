package runtime

import (
	"testing"

	"github.com/deep-adeshraa/loxgo/internal/ast"
	"github.com/deep-adeshraa/loxgo/internal/token"
)

// fakeInterp is a minimal ExecStmts shim that only understands
// *ast.Return with a literal value (or none), since the real
// statement dispatch lives in internal/interp and this package must stay
// free of that import to avoid a cycle.
type fakeInterp struct{}

func (fakeInterp) ExecStmts(stmts []ast.Stmt, env *Environment) error {
	for _, s := range stmts {
		if ret, ok := s.(*ast.Return); ok {
			var val Value
			if ret.Value != nil {
				lit := ret.Value.(*ast.Literal)
				val = lit.Value
			}
			return &ReturnSignal{Value: val}
		}
	}
	return nil
}

func nameTok(name string) token.Token {
	return token.New(token.IDENTIFIER, name, nil, 1)
}

func TestFunctionCallBindsParamsAndReturns(t *testing.T) {
	decl := &ast.FunctionDecl{
		Name:   nameTok("f"),
		Params: []token.Token{nameTok("a")},
		Body: &ast.Block{Statements: []ast.Stmt{
			&ast.Return{Value: ast.NewLiteral(token.New(token.NUMBER, "1", 1.0, 1), 1.0)},
		}},
	}
	fn := NewFunction(decl, NewEnvironment(), false)

	got, err := fn.Call(fakeInterp{}, []Value{"ignored"})
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if got != 1.0 {
		t.Errorf("got %v, want 1.0", got)
	}
}

func TestFunctionFallsOffEndReturnsNil(t *testing.T) {
	decl := &ast.FunctionDecl{Name: nameTok("f"), Body: &ast.Block{}}
	fn := NewFunction(decl, NewEnvironment(), false)

	got, err := fn.Call(fakeInterp{}, nil)
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestBindDoesNotMutateOriginalFunction(t *testing.T) {
	decl := &ast.FunctionDecl{Name: nameTok("m"), Body: &ast.Block{}}
	closure := NewEnvironment()
	fn := NewFunction(decl, closure, false)

	instance := NewInstance(NewClass("C", nil))
	bound := fn.Bind(instance)

	if _, err := closure.Get("this"); err == nil {
		t.Fatal("Bind must not define 'this' on the original closure")
	}
	if got, err := bound.closure.Get("this"); err != nil || got != instance {
		t.Errorf("bound function's closure should resolve 'this' to instance, got %v, err %v", got, err)
	}
}

func TestClassCallReturnsInstance(t *testing.T) {
	cls := NewClass("Point", nil)
	instance, err := cls.Call(fakeInterp{}, nil)
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if _, ok := instance.(*Instance); !ok {
		t.Fatalf("got %T, want *Instance", instance)
	}
}

func TestClassArityMatchesInitWhenPresent(t *testing.T) {
	initDecl := &ast.FunctionDecl{
		Name:   nameTok("init"),
		Params: []token.Token{nameTok("x"), nameTok("y")},
		Body:   &ast.Block{},
	}
	cls := NewClass("Point", map[string]*Function{
		"init": NewFunction(initDecl, NewEnvironment(), true),
	})
	if got := cls.Arity(); got != 2 {
		t.Errorf("Arity() = %d, want 2", got)
	}
}

func TestInstanceGetBindsMethodToSelf(t *testing.T) {
	methodDecl := &ast.FunctionDecl{Name: nameTok("get"), Body: &ast.Block{}}
	cls := NewClass("C", map[string]*Function{
		"get": NewFunction(methodDecl, NewEnvironment(), false),
	})
	instance := NewInstance(cls)

	val, err := instance.Get("get")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	bound, ok := val.(*Function)
	if !ok {
		t.Fatalf("got %T, want *Function", val)
	}
	if got, err := bound.closure.Get("this"); err != nil || got != instance {
		t.Errorf("bound method should close over 'this' = instance, got %v, err %v", got, err)
	}
}

func TestInstanceGetUndefinedPropertyIsError(t *testing.T) {
	instance := NewInstance(NewClass("C", nil))
	if _, err := instance.Get("missing"); err == nil {
		t.Fatal("expected an error for an undefined property")
	}
}

func TestInstanceFieldShadowsMethod(t *testing.T) {
	methodDecl := &ast.FunctionDecl{Name: nameTok("x"), Body: &ast.Block{}}
	cls := NewClass("C", map[string]*Function{
		"x": NewFunction(methodDecl, NewEnvironment(), false),
	})
	instance := NewInstance(cls)
	instance.Set("x", 42.0)

	val, err := instance.Get("x")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if val != 42.0 {
		t.Errorf("got %v, want field value 42.0", val)
	}
}
