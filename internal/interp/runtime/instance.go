package runtime

import "fmt"

// Instance is a runtime object produced by calling a Class: a bag of
// fields plus a pointer back to the class for method lookup (ref.
// spec.md §4.5 "Get"/"Set" on an instance).
type Instance struct {
	class  *Class
	fields map[string]Value
}

// NewInstance creates an instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

// Get resolves a property read: an instance's own fields shadow its
// class's methods. A method hit is bound to this instance before being
// returned, producing a fresh Function value each time (ref. spec.md
// §4.5 "Get" and "Method binding").
func (i *Instance) Get(name string) (Value, error) {
	if val, ok := i.fields[name]; ok {
		return val, nil
	}
	if method, ok := i.class.FindMethod(name); ok {
		return method.Bind(i), nil
	}
	return nil, fmt.Errorf("Undefined property '%s'.", name)
}

// Set writes a field, creating it if this is its first assignment (ref.
// spec.md §4.5 "Set" — instances have no fixed field list).
func (i *Instance) Set(name string, val Value) {
	i.fields[name] = val
}

func (i *Instance) String() string {
	return fmt.Sprintf("<instance of %s>", i.class.Name)
}
