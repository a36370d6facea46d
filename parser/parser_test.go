package parser

import (
	"testing"

	"github.com/akashmaji946/gomonkey/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, input string) *Program {
	t.Helper()
	l := lexer.New(input)
	p := NewParser(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parser errors: %v", p.Errors())
	return program
}

func TestOperatorPrecedenceString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"add(a * b[2], b[1], 2 * [1, 2][1])", "add((a * (b[2])), (b[1]), (2 * ([1, 2][1])))"},
		{"a = b = 5", "(a = (b = 5))"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		assert.Equal(t, tt.expected, program.String(), "input: %s", tt.input)
	}
}

func TestLetStatements(t *testing.T) {
	program := parseProgram(t, "let x = 5; let y = true; let foobar = y;")
	require.Len(t, program.Statements, 3)

	names := []string{"x", "y", "foobar"}
	for i, name := range names {
		letStmt, ok := program.Statements[i].(*Let)
		require.True(t, ok)
		assert.Equal(t, "let", letStmt.TokenLiteral())
		assert.Equal(t, name, letStmt.Name.Value)
	}
}

func TestReturnStatements(t *testing.T) {
	program := parseProgram(t, "return 5; return true; return add(1);")
	require.Len(t, program.Statements, 3)

	for _, stmt := range program.Statements {
		ret, ok := stmt.(*Return)
		require.True(t, ok)
		assert.Equal(t, "return", ret.TokenLiteral())
	}
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, "fn(x, y) { x + y; }")
	stmt := program.Statements[0].(*ExpressionStatement)
	fn, ok := stmt.Expression.(*FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].Value)
	assert.Equal(t, "y", fn.Parameters[1].Value)
	require.Len(t, fn.Body.Statements, 1)
}

func TestIndexAndRangeExpressions(t *testing.T) {
	program := parseProgram(t, `myArray[1 + 1]; "foobar"[0:3];`)
	require.Len(t, program.Statements, 2)

	idxStmt := program.Statements[0].(*ExpressionStatement)
	idx, ok := idxStmt.Expression.(*IndexExpression)
	require.True(t, ok)
	assert.Equal(t, "myArray", idx.Left.String())

	rangeStmt := program.Statements[1].(*ExpressionStatement)
	rng, ok := rangeStmt.Expression.(*RangeExpression)
	require.True(t, ok)
	assert.Equal(t, `"foobar"`, rng.Left.String())
}

func TestHashLiteralPreservesOrder(t *testing.T) {
	program := parseProgram(t, `{"one": 1, "two": 2, "one": 3}`)
	stmt := program.Statements[0].(*ExpressionStatement)
	hash, ok := stmt.Expression.(*HashLiteral)
	require.True(t, ok)
	require.Len(t, hash.Pairs, 3)
	assert.Equal(t, `"one"`, hash.Pairs[0].Key.String())
	assert.Equal(t, `"one"`, hash.Pairs[2].Key.String())
}

func TestWhileStatementParsing(t *testing.T) {
	program := parseProgram(t, "while (x < 10) { x = x + 1; }")
	require.Len(t, program.Statements, 1)
	w, ok := program.Statements[0].(*While)
	require.True(t, ok)
	assert.Equal(t, "(x < 10)", w.Condition.String())
}

func TestParseErrorsAccumulate(t *testing.T) {
	l := lexer.New("let = 5; let y 10;")
	p := NewParser(l)
	p.ParseProgram()
	assert.GreaterOrEqual(t, len(p.Errors()), 2)
}
