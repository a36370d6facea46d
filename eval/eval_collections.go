/*
File    : gomonkey/eval/eval_collections.go
Package : eval
*/
package eval

import (
	"github.com/akashmaji946/gomonkey/objects"
	"github.com/akashmaji946/gomonkey/parser"
)

func (e *Evaluator) evalArrayLiteral(node *parser.ArrayLiteral, env Scope) objects.Value {
	elements := make([]objects.Value, 0, len(node.Elements))
	for _, el := range node.Elements {
		val := e.Eval(el, env)
		if isError(val) {
			return val
		}
		elements = append(elements, val)
	}
	return &objects.Array{Elements: elements}
}

// evalHashLiteral evaluates each key/value pair in source order and
// inserts into a fresh HashMap; a later duplicate key overwrites the
// earlier one's value but the map's Inspect order remains the first
// occurrence's position.
func (e *Evaluator) evalHashLiteral(node *parser.HashLiteral, env Scope) objects.Value {
	hash := objects.NewHashMap()

	for _, pair := range node.Pairs {
		key := e.Eval(pair.Key, env)
		if isError(key) {
			return key
		}

		hashable, ok := key.(objects.Hashable)
		if !ok {
			return newError("unusable as hash key: %s", key.Type())
		}

		value := e.Eval(pair.Value, env)
		if isError(value) {
			return value
		}

		hash.Set(hashable, value)
	}

	return hash
}

// evalIndexExpression handles left[index] for all three indexable types.
// HashMap indexing looks up by full value equality and yields NULL on a
// miss rather than an Error; Array/String indexing requires a
// non-negative in-range Integer index and yields an Error otherwise.
func (e *Evaluator) evalIndexExpression(node *parser.IndexExpression, env Scope) objects.Value {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}

	if hash, ok := left.(*objects.HashMap); ok {
		return e.evalHashIndex(hash, node.Index, env)
	}

	index := e.Eval(node.Index, env)
	if isError(index) {
		return index
	}
	idx, ok := index.(*objects.Integer)
	if !ok || idx.Value < 0 {
		return newError("index must be a non-negative integer")
	}

	switch left := left.(type) {
	case *objects.Array:
		if int(idx.Value) >= len(left.Elements) {
			return newError("list index out of range")
		}
		return left.Elements[idx.Value]
	case *objects.String:
		if int(idx.Value) >= len(left.Value) {
			return newError("string index out of range")
		}
		return &objects.String{Value: string(left.Value[idx.Value])}
	default:
		return newError("index operator not supported: %s", left.Type())
	}
}

func (e *Evaluator) evalHashIndex(hash *objects.HashMap, indexNode parser.Expression, env Scope) objects.Value {
	key := e.Eval(indexNode, env)
	if isError(key) {
		return key
	}
	hashable, ok := key.(objects.Hashable)
	if !ok {
		return newError("unusable as hash key: %s", key.Type())
	}
	val, ok := hash.Get(hashable)
	if !ok {
		return objects.NULL
	}
	return val
}

// evalRangeExpression handles left[lo:hi], a half-open slice over an
// Array or String; lo and hi must both be non-negative Integers and the
// slice must stay in bounds, else an Error.
func (e *Evaluator) evalRangeExpression(node *parser.RangeExpression, env Scope) objects.Value {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}

	lo := e.Eval(node.LeftIndex, env)
	if isError(lo) {
		return lo
	}
	hi := e.Eval(node.RightIndex, env)
	if isError(hi) {
		return hi
	}

	loInt, ok := lo.(*objects.Integer)
	if !ok || loInt.Value < 0 {
		return newError("range start must be a non-negative integer")
	}
	hiInt, ok := hi.(*objects.Integer)
	if !ok || hiInt.Value < 0 {
		return newError("range end must be a non-negative integer")
	}

	switch left := left.(type) {
	case *objects.Array:
		if loInt.Value > hiInt.Value || hiInt.Value > int64(len(left.Elements)) {
			return newError("list index out of range")
		}
		sliced := make([]objects.Value, hiInt.Value-loInt.Value)
		copy(sliced, left.Elements[loInt.Value:hiInt.Value])
		return &objects.Array{Elements: sliced}
	case *objects.String:
		if loInt.Value > hiInt.Value || hiInt.Value > int64(len(left.Value)) {
			return newError("string index out of range")
		}
		return &objects.String{Value: left.Value[loInt.Value:hiInt.Value]}
	default:
		return newError("range operator not supported: %s", left.Type())
	}
}
