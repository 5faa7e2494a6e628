package runtime

import "time"

// nativeFunction wraps a Go function as a Callable, giving the single
// builtin this language defines — clock — a value indistinguishable from
// a user-defined function at call sites (ref. spec.md §4.6 "Builtins").
type nativeFunction struct {
	name  string
	arity int
	fn    func(args []Value) (Value, error)
}

func (n *nativeFunction) Arity() int { return n.arity }

func (n *nativeFunction) Call(_ Interpreter, args []Value) (Value, error) {
	return n.fn(args)
}

func (n *nativeFunction) String() string {
	return "<native fn " + n.name + ">"
}

// Clock returns the clock builtin: zero arguments, the current time as
// seconds since the Unix epoch (ref. spec.md §4.6 — "clock() returns a
// number of seconds, with no guarantee of sub-second precision").
func Clock() Callable {
	return &nativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(_ []Value) (Value, error) {
			return float64(time.Now().UnixNano()) / float64(time.Second), nil
		},
	}
}

// Globals builds a fresh global environment with every builtin defined,
// the starting point for a new program run (ref. spec.md §4.6).
func Globals() *Environment {
	env := NewEnvironment()
	env.Define("clock", Clock())
	return env
}
