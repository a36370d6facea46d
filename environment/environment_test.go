package environment

import (
	"testing"

	"github.com/akashmaji946/gomonkey/objects"
	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	env := New()
	env.Set("x", &objects.Integer{Value: 5})

	val, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, &objects.Integer{Value: 5}, val)
}

func TestGetWalksOuterChain(t *testing.T) {
	outer := New()
	outer.Set("x", &objects.Integer{Value: 1})
	inner := NewEnclosed(outer)

	val, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, &objects.Integer{Value: 1}, val)
}

func TestGetMissingReturnsFalse(t *testing.T) {
	env := New()
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestAssignMutatesOuterFrameInPlace(t *testing.T) {
	outer := New()
	outer.Set("x", &objects.Integer{Value: 1})
	inner := NewEnclosed(outer)

	val, ok := inner.Assign("x", &objects.Integer{Value: 99})
	assert.True(t, ok)
	assert.Equal(t, &objects.Integer{Value: 99}, val)

	got, _ := outer.Get("x")
	assert.Equal(t, &objects.Integer{Value: 99}, got)
}

func TestAssignUnknownNameFails(t *testing.T) {
	env := New()
	_, ok := env.Assign("never_declared", &objects.Integer{Value: 1})
	assert.False(t, ok)
}

func TestSetAlwaysBindsInCurrentFrame(t *testing.T) {
	outer := New()
	outer.Set("x", &objects.Integer{Value: 1})
	inner := NewEnclosed(outer)
	inner.Set("x", &objects.Integer{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	assert.Equal(t, &objects.Integer{Value: 2}, innerVal)
	assert.Equal(t, &objects.Integer{Value: 1}, outerVal)
}
