/*
File    : gomonkey/environment/environment.go
Package : environment
*/

// Package environment implements the scope-frame chain the evaluator
// threads through every node. It is a deliberately narrow trim of the
// teacher's scope.Scope: no Consts/LetVars/LetTypes bookkeeping, because
// this language's `let` never locks a variable's type or mutability —
// `environment` just needs to answer "what is this name bound to" and
// "assign to wherever this name already lives in the chain".
package environment

import "github.com/akashmaji946/gomonkey/objects"

// Environment is a scope frame: a flat name→value store plus an optional
// link to the enclosing frame. Get walks the Outer chain; Set always binds
// in the current frame. Assign walks the chain looking for an existing
// binding to overwrite in place, which is what makes mutation inside a
// closure visible to the scope that captured it.
type Environment struct {
	store map[string]objects.Value
	outer *Environment
}

// New returns an empty root environment, created once per program run.
func New() *Environment {
	return &Environment{store: make(map[string]objects.Value)}
}

// NewEnclosed returns an environment nested inside outer, created on
// function call and on entry to an if/else/while body.
func NewEnclosed(outer *Environment) *Environment {
	env := New()
	env.outer = outer
	return env
}

// Get looks up name, walking outer frames if it is not bound here.
func (e *Environment) Get(name string) (objects.Value, bool) {
	val, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return val, ok
}

// Set binds name to val in this frame (not an outer one), as `let` does.
func (e *Environment) Set(name string, val objects.Value) objects.Value {
	e.store[name] = val
	return val
}

// Assign walks the chain for an existing binding of name and overwrites it
// in place, returning (val, true). If no frame in the chain already binds
// name, it returns (nil, false) and leaves every frame untouched — the
// caller (AssignmentExpression evaluation) turns that into an
// "identifier not found" Error rather than silently declaring a new
// variable.
func (e *Environment) Assign(name string, val objects.Value) (objects.Value, bool) {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return val, true
	}
	if e.outer != nil {
		return e.outer.Assign(name, val)
	}
	return nil, false
}

// NewEnclosed satisfies objects.Scope, letting the evaluator nest a scope
// without importing this package (and cycling back through objects).
func (e *Environment) NewEnclosed() objects.Scope {
	return NewEnclosed(e)
}
