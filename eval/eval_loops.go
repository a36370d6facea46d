/*
File    : gomonkey/eval/eval_loops.go
Package : eval
*/
package eval

import (
	"github.com/akashmaji946/gomonkey/objects"
	"github.com/akashmaji946/gomonkey/parser"
)

// evalWhileStatement repeatedly evaluates the condition and, while it is
// truthy, the body in a fresh enclosed scope per iteration. A body that
// yields an Error or ReturnValue stops the loop immediately, handing that
// value straight to the caller as is (a ReturnValue stays wrapped) — a
// while loop never swallows a
// `return` nested inside it. A never-truthy condition evaluates to NULL
// without the body ever running.
func (e *Evaluator) evalWhileStatement(node *parser.While, env Scope) objects.Value {
	for {
		condition := e.Eval(node.Condition, env)
		if isError(condition) {
			return condition
		}
		if !objects.IsTruthy(condition) {
			return objects.NULL
		}

		result := e.Eval(node.Body, env.NewEnclosed())
		if result != nil {
			rt := result.Type()
			if rt == objects.ErrorType || rt == objects.ReturnType {
				return result
			}
		}
	}
}
