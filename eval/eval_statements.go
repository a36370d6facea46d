/*
File    : gomonkey/eval/eval_statements.go
Package : eval
*/
package eval

import (
	"github.com/akashmaji946/gomonkey/objects"
	"github.com/akashmaji946/gomonkey/parser"
)

// evalProgram executes top-level statements in order. A ReturnValue
// unwraps here (there is no enclosing call to unwrap it later); an Error
// stops evaluation immediately either way.
func (e *Evaluator) evalProgram(program *parser.Program, env Scope) objects.Value {
	var result objects.Value = objects.NULL

	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)

		switch result := result.(type) {
		case *objects.ReturnValue:
			return result.Value
		case *objects.Error:
			return result
		}
	}

	return result
}

// evalBlock executes a brace-delimited statement list in order. Unlike
// evalProgram, it does NOT unwrap a ReturnValue — that only happens at the
// function-call boundary or at Program level, so a `return` nested inside
// several if/while blocks still reaches all the way out.
func (e *Evaluator) evalBlock(block *parser.Block, env Scope) objects.Value {
	var result objects.Value = objects.NULL

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)

		if result != nil {
			rt := result.Type()
			if rt == objects.ReturnType || rt == objects.ErrorType {
				return result
			}
		}
	}

	return result
}

func (e *Evaluator) evalLetStatement(stmt *parser.Let, env Scope) objects.Value {
	val := e.Eval(stmt.Value, env)
	if isError(val) {
		return val
	}
	env.Set(stmt.Name.Value, val)
	return val
}

func (e *Evaluator) evalReturnStatement(stmt *parser.Return, env Scope) objects.Value {
	val := e.Eval(stmt.Value, env)
	if isError(val) {
		return val
	}
	return &objects.ReturnValue{Value: val}
}
