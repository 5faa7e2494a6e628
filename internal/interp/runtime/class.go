package runtime

import "fmt"

// Class is a runtime class value. Calling it constructs an *Instance
// (ref. spec.md §4.5 "ClassDecl"). A superclass may be present on the
// declaration but, per spec.md §9.1, nothing ever consults it — there is
// no inheritance of methods or fields in this language.
type Class struct {
	Name    string
	Methods map[string]*Function
}

// NewClass creates a class value with its own method table. methods maps
// method name to the Function closing over the environment active at the
// class declaration (ref. spec.md §4.5 — methods share the declaring
// scope, not a per-instance one, until bound).
func NewClass(name string, methods map[string]*Function) *Class {
	return &Class{Name: name, Methods: methods}
}

// FindMethod looks up a method by name on this class's own method table.
// There is no superclass chain to fall back to (ref. spec.md §9.1).
func (c *Class) FindMethod(name string) (*Function, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

// Arity is the constructor's arity: init's parameter count if the class
// declares one, otherwise zero (ref. spec.md §4.5 "Call" on a class).
func (c *Class) Arity() int {
	if init, ok := c.Methods["init"]; ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance and, if the class declares init, runs it
// bound to that instance. The constructor always yields the instance
// regardless of what init's body does (ref. spec.md §9.1).
func (c *Class) Call(interp Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.Methods["init"]; ok {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return fmt.Sprintf("<class %s>", c.Name)
}
