/*
File    : gomonkey/eval/eval_conditionals.go
Package : eval
*/
package eval

import (
	"github.com/akashmaji946/gomonkey/objects"
	"github.com/akashmaji946/gomonkey/parser"
)

// evalIfExpression evaluates exactly one branch: the consequence when the
// condition is truthy, the alternative when it is falsy and present, or
// NULL when it is falsy with no else. Each taken branch runs in its own
// enclosed scope so bindings made inside don't leak to the surrounding one.
func (e *Evaluator) evalIfExpression(node *parser.IfExpression, env Scope) objects.Value {
	condition := e.Eval(node.Condition, env)
	if isError(condition) {
		return condition
	}

	if objects.IsTruthy(condition) {
		return e.Eval(node.Consequence, env.NewEnclosed())
	}
	if node.Alternative != nil {
		return e.Eval(node.Alternative, env.NewEnclosed())
	}
	return objects.NULL
}
