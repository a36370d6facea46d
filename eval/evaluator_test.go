package eval

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/gomonkey/environment"
	"github.com/akashmaji946/gomonkey/lexer"
	"github.com/akashmaji946/gomonkey/objects"
	"github.com/akashmaji946/gomonkey/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEval(t *testing.T, input string) (objects.Value, *bytes.Buffer) {
	t.Helper()
	l := lexer.New(input)
	p := parser.NewParser(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors())

	var buf bytes.Buffer
	ev := NewWithWriter(&buf)
	env := environment.New()

	return ev.Eval(program, env), &buf
}

func TestEndToEndEvaluationScenarios(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", "50"},
		{"let a = 5; let b = a; let c = a + b + 5; c", "15"},
		{"let add = fn(x, y) { x + y }; add(5 + 5, add(6, 10))", "26"},
		{"let newAdder = fn(x) { fn(y) { x + y } }; let addTwo = newAdder(2); addTwo(3)", "5"},
		{`let m = {"foo": 4, "bar": 5}; m["foo"] + m["bar"]`, "9"},
		{"let i = 1; let x = 0; while(i < 6) { x = x + 10; i = i + 1 } x", "50"},
		{`"foobar"[0:3]`, "foo"},
		{"5 + true", "Error: type mismatch: INTEGER + BOOLEAN"},
	}

	for _, tt := range tests {
		result, _ := testEval(t, tt.input)
		require.NotNil(t, result, "input: %s", tt.input)
		assert.Equal(t, tt.expected, result.Inspect(), "input: %s", tt.input)
	}
}

func TestIfElseDoesNotEvaluateTheUntakenBranch(t *testing.T) {
	result, buf := testEval(t, `if (true) { print("a") } else { print("b") }`)
	assert.Equal(t, objects.NULL, result)
	assert.Equal(t, "a", buf.String())
}

func TestIdentifierNotFound(t *testing.T) {
	result, _ := testEval(t, "foobar")
	assert.Equal(t, "Error: identifier not found: foobar", result.Inspect())
}

func TestWhileNeverTruthyEvaluatesToNullWithoutRunningBody(t *testing.T) {
	result, buf := testEval(t, `while (false) { print("never") }`)
	assert.Equal(t, objects.NULL, result)
	assert.Equal(t, "", buf.String())
}

func TestCallingNonFunctionIsRuntimeError(t *testing.T) {
	result, _ := testEval(t, "let x = 5; x()")
	_, ok := result.(*objects.Error)
	assert.True(t, ok)
}

func TestIndexingNonIndexableIsRuntimeError(t *testing.T) {
	result, _ := testEval(t, "let f = fn() { 1 }; f[0]")
	_, ok := result.(*objects.Error)
	assert.True(t, ok)
}

func TestPushPopShareArrayAcrossVariables(t *testing.T) {
	result, _ := testEval(t, `
		let a = [1, 2];
		let b = a;
		push(b, 3);
		push(a, 9);
		pop(b);
		a
	`)
	assert.Equal(t, "[1, 2, 3]", result.Inspect())
}

func TestHashLiteralDuplicateKeyKeepsLastValueInSourceOrder(t *testing.T) {
	result, _ := testEval(t, `{"one": 1, "two": 2, "one": 3}`)
	assert.Equal(t, "{ one:3, two:2 }", result.Inspect())
}

func TestClosureCapturesEnvironmentHandleNotSnapshot(t *testing.T) {
	result, _ := testEval(t, `
		let counter = 0;
		let bump = fn() { counter = counter + 1 };
		bump();
		bump();
		counter
	`)
	assert.Equal(t, "2", result.Inspect())
}

func TestArrayLiteralEvaluatedTwiceYieldsNonAliasedContainers(t *testing.T) {
	result, _ := testEval(t, `
		let make = fn() { [1, 2] };
		let a = make();
		let b = make();
		push(a, 3);
		b
	`)
	assert.Equal(t, "[1, 2]", result.Inspect())
}

func TestSleepBlocksForZeroSecondsAndReturnsNull(t *testing.T) {
	result, _ := testEval(t, "sleep(0)")
	assert.Equal(t, objects.NULL, result)
}
