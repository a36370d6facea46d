/*
File    : gomonkey/eval/eval_assignments.go
Package : eval
*/
package eval

import (
	"github.com/akashmaji946/gomonkey/objects"
	"github.com/akashmaji946/gomonkey/parser"
)

// evalAssignmentExpression evaluates the right-hand side and rebinds it in
// whichever scope already holds the name, walking the chain outward. It
// never declares a new binding — assigning to a name that was never
// `let`-bound is an Error, not an implicit declaration.
func (e *Evaluator) evalAssignmentExpression(node *parser.AssignmentExpression, env Scope) objects.Value {
	val := e.Eval(node.Value, env)
	if isError(val) {
		return val
	}

	if _, ok := env.Assign(node.Name.Value, val); !ok {
		return newError("identifier not found: " + node.Name.Value)
	}

	return val
}
