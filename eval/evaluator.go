/*
File    : gomonkey/eval/evaluator.go
Package : eval
*/

// Package eval implements the tree-walking evaluator: eval(node, env) that
// reduces an AST node to an objects.Value. Evaluation is strictly
// recursive and single-threaded; the only blocking point anywhere in the
// interpreter is the sleep built-in.
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/gomonkey/objects"
	"github.com/akashmaji946/gomonkey/parser"
)

// Scope is the environment interface the evaluator threads through
// recursion. It is objects.Scope under the hood; the alias just saves
// every eval file an import. The concrete implementation lives in the
// environment package, which eval deliberately never imports — Get/Set/
// Assign/NewEnclosed are all eval ever needs.
type Scope = objects.Scope

// Evaluator holds the state threaded through a single program run: where
// built-in output goes, and the fixed built-in table. The Scope itself is
// not stored here — it is passed explicitly to Eval so that nested scopes
// (function calls, if/else, while bodies) can each pass their own enclosed
// scope down the recursion.
type Evaluator struct {
	Writer   io.Writer
	Builtins map[string]*objects.BuiltinFunction
}

// New returns an Evaluator that writes built-in output (print, mainly) to
// os.Stdout.
func New() *Evaluator {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter returns an Evaluator whose print builtin writes to w,
// primarily useful in tests that want to capture what print wrote.
func NewWithWriter(w io.Writer) *Evaluator {
	return &Evaluator{
		Writer:   w,
		Builtins: objects.NewBuiltins(w),
	}
}

// Eval is the recursive dispatcher, routing each concrete AST node type to
// its evaluation handler.
func (e *Evaluator) Eval(node parser.Node, env Scope) objects.Value {
	switch n := node.(type) {

	case *parser.Program:
		return e.evalProgram(n, env)
	case *parser.Block:
		return e.evalBlock(n, env)
	case *parser.ExpressionStatement:
		return e.Eval(n.Expression, env)
	case *parser.Let:
		return e.evalLetStatement(n, env)
	case *parser.Return:
		return e.evalReturnStatement(n, env)
	case *parser.While:
		return e.evalWhileStatement(n, env)

	case *parser.IntegerLiteral:
		return &objects.Integer{Value: n.Value}
	case *parser.StringLiteral:
		return &objects.String{Value: n.Value}
	case *parser.Boolean:
		return objects.NativeBool(n.Value)
	case *parser.NullLiteral:
		return objects.NULL
	case *parser.Identifier:
		return e.evalIdentifier(n, env)
	case *parser.PrefixExpression:
		return e.evalPrefixExpression(n, env)
	case *parser.InfixExpression:
		return e.evalInfixExpression(n, env)
	case *parser.AssignmentExpression:
		return e.evalAssignmentExpression(n, env)
	case *parser.IfExpression:
		return e.evalIfExpression(n, env)
	case *parser.FunctionLiteral:
		return e.evalFunctionLiteral(n, env)
	case *parser.CallExpression:
		return e.evalCallExpression(n, env)
	case *parser.ArrayLiteral:
		return e.evalArrayLiteral(n, env)
	case *parser.HashLiteral:
		return e.evalHashLiteral(n, env)
	case *parser.IndexExpression:
		return e.evalIndexExpression(n, env)
	case *parser.RangeExpression:
		return e.evalRangeExpression(n, env)

	default:
		return newError("unsupported AST node: %T", node)
	}
}

func isError(v objects.Value) bool {
	if v == nil {
		return false
	}
	return v.Type() == objects.ErrorType
}
