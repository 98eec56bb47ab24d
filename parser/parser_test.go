/*
File    : lumen/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"testing"

	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New(input)
	p := New(l)
	program := p.ParseProgram()
	checkParserErrors(t, p)
	return program
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	for _, msg := range errs {
		t.Errorf("parser error: %s", msg)
	}
	t.FailNow()
}

func TestLetStatements(t *testing.T) {
	program := parseProgram(t, `
let x = 5;
let y = 10;
let foobar = 838383;
`)
	require.Len(t, program.Statements, 3)

	expectedNames := []string{"x", "y", "foobar"}
	for i, name := range expectedNames {
		stmt := program.Statements[i].(*ast.LetStatement)
		assert.Equal(t, "let", stmt.TokenLiteral())
		assert.Equal(t, name, stmt.Name.Value)
	}
}

func TestReturnStatements(t *testing.T) {
	program := parseProgram(t, `
return 5;
return 10;
return 993322;
`)
	require.Len(t, program.Statements, 3)
	for _, s := range program.Statements {
		stmt := s.(*ast.ReturnStatement)
		assert.Equal(t, "return", stmt.TokenLiteral())
	}
}

func TestIdentifierExpression(t *testing.T) {
	program := parseProgram(t, "foobar;")
	require.Len(t, program.Statements, 1)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ident := stmt.Expression.(*ast.Identifier)
	assert.Equal(t, "foobar", ident.Value)
}

func TestStringLiteralExpression(t *testing.T) {
	program := parseProgram(t, `"hello world";`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	lit := stmt.Expression.(*ast.StringLiteral)
	assert.Equal(t, "hello world", lit.Value)
}

func TestOperatorPrecedenceParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"!(true == true)", "(!(true == true))"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"a * b * c", "((a * b) * c)"},
		{"a + b / c", "(a + (b / c))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := parseProgram(t, tt.input)
			assert.Equal(t, tt.expected, program.String())
		})
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr := stmt.Expression.(*ast.IfExpression)

	require.Len(t, expr.Consequence.Statements, 1)
	assert.Nil(t, expr.Alternative)
}

func TestIfElseExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x } else { y }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr := stmt.Expression.(*ast.IfExpression)

	require.NotNil(t, expr.Alternative)
	require.Len(t, expr.Alternative.Statements, 1)
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, "fn(x, y) { x + y; }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn := stmt.Expression.(*ast.FunctionLiteral)

	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].String())
	assert.Equal(t, "y", fn.Parameters[1].String())
	require.Len(t, fn.Body.Statements, 1)
}

func TestFunctionParameterParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		fn := stmt.Expression.(*ast.FunctionLiteral)
		require.Len(t, fn.Parameters, len(tt.expected))
		for i, name := range tt.expected {
			assert.Equal(t, name, fn.Parameters[i].String())
		}
	}
}

func TestCallExpressionParsing(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call := stmt.Expression.(*ast.CallExpression)

	ident := call.Function.(*ast.Identifier)
	assert.Equal(t, "add", ident.Value)
	require.Len(t, call.Arguments, 3)
}

func TestParseErrors_MissingAssign(t *testing.T) {
	l := lexer.New("let x 5;")
	p := New(l)
	p.ParseProgram()
	assert.NotEmpty(t, p.Errors())
}

func TestParseErrors_NoPrefixFn(t *testing.T) {
	l := lexer.New(")")
	p := New(l)
	p.ParseProgram()
	assert.NotEmpty(t, p.Errors())
}

func TestRoundTrip_CanonicalDisplay(t *testing.T) {
	inputs := []string{
		"((-a) * b)",
		"((a + b) + c)",
		"(!(true == true))",
	}
	for _, input := range inputs {
		program := parseProgram(t, input)
		again := parseProgram(t, program.String())
		assert.Equal(t, program.String(), again.String(), fmt.Sprintf("round trip mismatch for %q", input))
	}
}
