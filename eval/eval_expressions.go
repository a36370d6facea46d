/*
File    : gomonkey/eval/eval_expressions.go
Package : eval
*/
package eval

import (
	"github.com/akashmaji946/gomonkey/objects"
	"github.com/akashmaji946/gomonkey/parser"
)

// evalIdentifier resolves a name by walking the scope chain first, then
// falling back to the fixed built-in table; an unresolved name is an
// Error, not a panic.
func (e *Evaluator) evalIdentifier(node *parser.Identifier, env Scope) objects.Value {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if builtin, ok := e.Builtins[node.Value]; ok {
		return builtin
	}
	return newError("identifier not found: " + node.Value)
}

func (e *Evaluator) evalPrefixExpression(node *parser.PrefixExpression, env Scope) objects.Value {
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	switch node.Operator {
	case "!":
		return objects.NativeBool(!objects.IsTruthy(right))
	case "-":
		i, ok := right.(*objects.Integer)
		if !ok {
			return newError("unknown operator: -%s", right.Type())
		}
		return &objects.Integer{Value: -i.Value}
	default:
		return newError("unknown operator: %s%s", node.Operator, right.Type())
	}
}

func (e *Evaluator) evalInfixExpression(node *parser.InfixExpression, env Scope) objects.Value {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	switch {
	case left.Type() != right.Type():
		return newError("type mismatch: %s %s %s", left.Type(), node.Operator, right.Type())

	case left.Type() == objects.IntegerType && right.Type() == objects.IntegerType:
		return evalIntegerInfix(node.Operator, left.(*objects.Integer), right.(*objects.Integer))

	case left.Type() == objects.StringType && right.Type() == objects.StringType:
		return evalStringInfix(node.Operator, left.(*objects.String), right.(*objects.String))

	case left.Type() == objects.BooleanType && right.Type() == objects.BooleanType:
		return evalBooleanInfix(node.Operator, left.(*objects.Boolean), right.(*objects.Boolean))

	case node.Operator == "==":
		return objects.NativeBool(objects.Equal(left, right))
	case node.Operator == "!=":
		return objects.NativeBool(!objects.Equal(left, right))

	default:
		return newError("unknown operator: %s %s %s", left.Type(), node.Operator, right.Type())
	}
}

func evalIntegerInfix(operator string, left, right *objects.Integer) objects.Value {
	switch operator {
	case "+":
		return &objects.Integer{Value: left.Value + right.Value}
	case "-":
		return &objects.Integer{Value: left.Value - right.Value}
	case "*":
		return &objects.Integer{Value: left.Value * right.Value}
	case "/":
		// Division by zero is unguarded by design: it surfaces as whatever
		// the host runtime does (a panic), rather than a language Error.
		return &objects.Integer{Value: left.Value / right.Value}
	case "<":
		return objects.NativeBool(left.Value < right.Value)
	case ">":
		return objects.NativeBool(left.Value > right.Value)
	case "==":
		return objects.NativeBool(left.Value == right.Value)
	case "!=":
		return objects.NativeBool(left.Value != right.Value)
	default:
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func evalStringInfix(operator string, left, right *objects.String) objects.Value {
	switch operator {
	case "+":
		return &objects.String{Value: left.Value + right.Value}
	case "<":
		return objects.NativeBool(left.Value < right.Value)
	case ">":
		return objects.NativeBool(left.Value > right.Value)
	case "==":
		return objects.NativeBool(left.Value == right.Value)
	case "!=":
		return objects.NativeBool(left.Value != right.Value)
	default:
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func evalBooleanInfix(operator string, left, right *objects.Boolean) objects.Value {
	switch operator {
	case "==":
		return objects.NativeBool(left.Value == right.Value)
	case "!=":
		return objects.NativeBool(left.Value != right.Value)
	default:
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

// evalFunctionLiteral captures the current environment handle (not a
// snapshot) so the closure sees later mutations of the defining scope.
func (e *Evaluator) evalFunctionLiteral(node *parser.FunctionLiteral, env Scope) objects.Value {
	params := make([]objects.Identifier, len(node.Parameters))
	for i, p := range node.Parameters {
		params[i] = p
	}
	return objects.NewFunction(params, node.Body, env)
}

// evalCallExpression evaluates the callee and arguments (left to right,
// stopping at the first Error), then dispatches to either a user Function
// or a BuiltinFunction.
func (e *Evaluator) evalCallExpression(node *parser.CallExpression, env Scope) objects.Value {
	fn := e.Eval(node.Function, env)
	if isError(fn) {
		return fn
	}

	args := make([]objects.Value, 0, len(node.Arguments))
	for _, a := range node.Arguments {
		val := e.Eval(a, env)
		if isError(val) {
			return val
		}
		args = append(args, val)
	}

	switch fn := fn.(type) {
	case *objects.Function:
		return e.applyFunction(fn, args)
	case *objects.BuiltinFunction:
		return fn.Fn(args...)
	default:
		return newError("not a function: %s", fn.Type())
	}
}

// applyFunction binds args positionally atop an environment enclosed by
// the function's captured one, evaluates the body as a Block, and unwraps
// any ReturnValue the body produced — the function-call boundary is one of
// the two places (with Program) where that unwrapping happens.
func (e *Evaluator) applyFunction(fn *objects.Function, args []objects.Value) objects.Value {
	if len(args) != len(fn.Parameters) {
		return newError("incorrect number of arguments: want=%d, got=%d", len(fn.Parameters), len(args))
	}

	callEnv := fn.Env.NewEnclosed()
	for i, param := range fn.Parameters {
		callEnv.Set(param.(*parser.Identifier).Value, args[i])
	}

	result := e.Eval(fn.Body.(*parser.Block), callEnv)

	if returnValue, ok := result.(*objects.ReturnValue); ok {
		return returnValue.Value
	}
	return result
}
