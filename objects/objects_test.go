package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringInspectRendersEscapes(t *testing.T) {
	s := &String{Value: `line one\nline two\ttabbed`}
	assert.Equal(t, "line one\nline two\ttabbed", s.Inspect())
}

func TestHashKeyEquality(t *testing.T) {
	hello1 := &String{Value: "hello"}
	hello2 := &String{Value: "hello"}
	diff := &String{Value: "world"}

	assert.Equal(t, hello1.HashKey(), hello2.HashKey())
	assert.NotEqual(t, hello1.HashKey(), diff.HashKey())
}

func TestHashMapPreservesInsertionOrderAcrossOverwrite(t *testing.T) {
	h := NewHashMap()
	h.Set(&String{Value: "one"}, &Integer{Value: 1})
	h.Set(&String{Value: "two"}, &Integer{Value: 2})
	prev := h.Set(&String{Value: "one"}, &Integer{Value: 100})

	assert.Equal(t, &Integer{Value: 1}, prev)
	assert.Equal(t, "{ one:100, two:2 }", h.Inspect())
}

func TestHashMapDeleteReturnsPreviousValue(t *testing.T) {
	h := NewHashMap()
	h.Set(&String{Value: "k"}, &Integer{Value: 7})

	assert.Equal(t, &Integer{Value: 7}, h.Delete(&String{Value: "k"}))
	assert.Equal(t, NULL, h.Delete(&String{Value: "k"}))
}

func TestEqualArraysElementwise(t *testing.T) {
	a := &Array{Elements: []Value{&Integer{Value: 1}, &Integer{Value: 2}}}
	b := &Array{Elements: []Value{&Integer{Value: 1}, &Integer{Value: 2}}}
	c := &Array{Elements: []Value{&Integer{Value: 1}, &Integer{Value: 3}}}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestEqualFunctionsByIdentity(t *testing.T) {
	f1 := NewFunction(nil, nil, nil)
	f2 := NewFunction(nil, nil, nil)

	assert.True(t, Equal(f1, f1))
	assert.False(t, Equal(f1, f2))
}

func TestIsTruthy(t *testing.T) {
	assert.True(t, IsTruthy(TRUE))
	assert.False(t, IsTruthy(FALSE))
	assert.False(t, IsTruthy(NULL))
	assert.True(t, IsTruthy(&Integer{Value: 0}))
}

func TestBuiltinLenOnStringAndArray(t *testing.T) {
	assert.Equal(t, &Integer{Value: 5}, Builtins["len"].Fn(&String{Value: "hello"}))
	assert.Equal(t, &Integer{Value: 2}, Builtins["len"].Fn(&Array{Elements: []Value{TRUE, FALSE}}))

	errVal := Builtins["len"].Fn(&Integer{Value: 1})
	_, ok := errVal.(*Error)
	assert.True(t, ok)
}

func TestBuiltinPushAndPop(t *testing.T) {
	arr := &Array{Elements: []Value{&Integer{Value: 1}}}

	res := Builtins["push"].Fn(arr, &Integer{Value: 2})
	assert.Equal(t, NULL, res)
	assert.Len(t, arr.Elements, 2)

	popped := Builtins["pop"].Fn(arr)
	assert.Equal(t, &Integer{Value: 2}, popped)
	assert.Len(t, arr.Elements, 1)

	emptied := Builtins["pop"].Fn(&Array{})
	assert.Equal(t, NULL, emptied)
}

func TestBuiltinInsertAndDelete(t *testing.T) {
	h := NewHashMap()
	prev := Builtins["insert"].Fn(h, &String{Value: "k"}, &Integer{Value: 1})
	assert.Equal(t, NULL, prev)

	removed := Builtins["delete"].Fn(h, &String{Value: "k"})
	assert.Equal(t, &Integer{Value: 1}, removed)
}
