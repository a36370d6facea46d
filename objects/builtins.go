/*
File    : gomonkey/objects/builtins.go
Package : objects
*/
package objects

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Builtins is the fixed name → built-in table wired to os.Stdout, for
// callers that call built-ins directly and don't need to capture print
// output. Every eval.Evaluator (the REPL's and the runner's included)
// builds its own table with NewBuiltins instead.
var Builtins = NewBuiltins(os.Stdout)

// NewBuiltins returns the fixed built-in table with print's output bound
// to w, so an Evaluator constructed over a buffer can assert on what print
// wrote instead of it always landing on the process's real stdout.
func NewBuiltins(w io.Writer) map[string]*BuiltinFunction {
	print := func(args ...Value) Value { return builtinPrint(w, args...) }
	return map[string]*BuiltinFunction{
		"len":     {Name: "len", Fn: builtinLen},
		"print":   {Name: "print", Fn: print},
		"push":    {Name: "push", Fn: builtinPush},
		"pop":     {Name: "pop", Fn: builtinPop},
		"is_null": {Name: "is_null", Fn: builtinIsNull},
		"insert":  {Name: "insert", Fn: builtinInsert},
		"delete":  {Name: "delete", Fn: builtinDelete},
		"sleep":   {Name: "sleep", Fn: builtinSleep},
	}
}

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

func builtinLen(args ...Value) Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch arg := args[0].(type) {
	case *Error:
		return arg
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("expected a STRING/ARRAY argument, but received %s", args[0].Type())
	}
}

// builtinPrint writes each argument's Inspect form to w separated by a
// single space, with no trailing newline; zero arguments writes a single
// newline. Argument order is simply the caller's evaluated order — the
// source language's variadic implementation materialized arguments into
// an environment under synthesized names (arg_0, arg_1, ...) and sorted
// those names back into order to recover it; passing the ordered slice
// straight through makes that indirection unnecessary.
func builtinPrint(w io.Writer, args ...Value) Value {
	if len(args) == 0 {
		fmt.Fprintln(w)
		return NULL
	}
	for i, a := range args {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, a.Inspect())
	}
	return NULL
}

func builtinPush(args ...Value) Value {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("expected an ARRAY argument, but received %s", args[0].Type())
	}
	arr.Elements = append(arr.Elements, args[1])
	return NULL
}

func builtinPop(args ...Value) Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("expected an ARRAY argument, but received %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	last := arr.Elements[len(arr.Elements)-1]
	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return last
}

func builtinIsNull(args ...Value) Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	_, ok := args[0].(*Null)
	return NativeBool(ok)
}

func builtinInsert(args ...Value) Value {
	if len(args) != 3 {
		return newError("wrong number of arguments. got=%d, want=3", len(args))
	}
	m, ok := args[0].(*HashMap)
	if !ok {
		return newError("expected a HASH argument, but received %s", args[0].Type())
	}
	key, ok := args[1].(Hashable)
	if !ok {
		return newError("unusable as hash key: %s", args[1].Type())
	}
	return m.Set(key, args[2])
}

func builtinDelete(args ...Value) Value {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	m, ok := args[0].(*HashMap)
	if !ok {
		return newError("expected a HASH argument, but received %s", args[0].Type())
	}
	key, ok := args[1].(Hashable)
	if !ok {
		return newError("unusable as hash key: %s", args[1].Type())
	}
	return m.Delete(key)
}

func builtinSleep(args ...Value) Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	n, ok := args[0].(*Integer)
	if !ok {
		return newError("expected an INTEGER argument, but received %s", args[0].Type())
	}
	if n.Value < 0 {
		return newError("sleep argument must be a non-negative integer, got %d", n.Value)
	}
	time.Sleep(time.Duration(n.Value) * time.Second)
	return NULL
}
