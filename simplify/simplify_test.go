package simplify_test

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/xsolve/ast"
	"go.creack.net/xsolve/parser"
	"go.creack.net/xsolve/simplify"
)

func num(v float64) ast.Number { return ast.Number{Value: v} }

func sym(name string) ast.Symbol { return ast.Symbol{Name: name} }

func mustParse(t *testing.T, input string) ast.Expr {
	t.Helper()
	expr, err := parser.ParseComplex(input)
	require.NoError(t, err, "parse %q", input)
	return expr
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "linear collection", input: "2 * x + 3 * x + 3 - 4", expected: "(5 * x - 1)"},
		{name: "zero product", input: "0 * x", expected: "0"},
		{name: "cancel x", input: "x - x", expected: "0"},
		{name: "number", input: "7", expected: "7"},
		{name: "symbol", input: "x", expected: "x"},
		{name: "unit product", input: "1 * x", expected: "x"},
		{name: "constant sum", input: "1 + 2 - 4", expected: "-1"},
		{name: "x only", input: "2 * x + 3 * x", expected: "(5 * x)"},
		{name: "unit coefficient", input: "x + x - x", expected: "x"},
		{name: "negated x", input: "3 - x", expected: "(-x + 3)"},
		{name: "negated x with negative constant", input: "-2 - x", expected: "(-x - 2)"},
		{name: "subtracting a product", input: "x - 2 * x", expected: "-x"},
		{name: "subtracting a product with constant", input: "10 - 4 * x + 1", expected: "((-4 * x) + 11)"},
		{name: "positive constant", input: "x + 3", expected: "((1 * x) + 3)"},
		{name: "negative literal product", input: "3 + -2 * x", expected: "((-2 * x) + 3)"},
		{name: "other symbol kept", input: "y + 2", expected: "(2 + y)"},
		{name: "other symbol subtracted", input: "x - y", expected: "(x - y)"},
		{name: "other symbol with x", input: "2 * x - y + 1", expected: "(((2 * x) + 1) - y)"},
		{name: "other symbol product", input: "1 + 3 * y", expected: "(1 + (3 * y))"},
		{name: "other symbol alone", input: "y - y + y", expected: "((y - y) + y)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			simplified := simplify.Simplify(mustParse(t, tt.input))
			assert.Equal(t, tt.expected, simplified.String(), "%# v", pretty.Formatter(simplified))
		})
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	inputs := []string{
		"2 * x + 3 * x + 3 - 4",
		"0 * x",
		"x - x",
		"x + x - x",
		"1 * x + 0",
		"10 - 4 * x + 1",
		"-2 - x",
		"x - 2 * x",
		"y + 2",
		"2 * x - y + 1",
		"1 + 3 * y",
		"0.1 + 0.2 - 0.3 * x",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := simplify.Simplify(mustParse(t, input))
			twice := simplify.Simplify(once)
			assert.Equal(t, once.String(), twice.String())
		})
	}
}

func TestSimplifyPreservesValue(t *testing.T) {
	inputs := []string{
		"1 + 2 - 4",
		"0.1 + 0.2 - 0.3",
		"-5 - -5 + 12.5",
		"2 * x + 3 * x + 3 - 4",
		"10 - 4 * x + 1",
		"x - 2 * x - 3 * x + 7",
		"2 * x - y + 1",
	}
	bindings := []ast.Bindings{nil, {"x": 2}, {"x": -1.5, "y": 4}}
	for _, input := range inputs {
		expr := mustParse(t, input)
		simplified := simplify.Simplify(expr)
		for _, vars := range bindings {
			assert.InDelta(t, ast.Evaluate(expr, vars), ast.Evaluate(simplified, vars), 1e-9, "%q with %v", input, vars)
		}
	}
}

func TestSimplifyMultiply(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Multiply
		expected ast.Expr
	}{
		{name: "right one", expr: ast.Multiply{Left: sym("y"), Right: num(1)}, expected: sym("y")},
		{name: "left one", expr: ast.Multiply{Left: num(1), Right: sym("y")}, expected: sym("y")},
		{name: "one times zero", expr: ast.Multiply{Left: num(0), Right: num(1)}, expected: num(0)},
		{name: "right zero", expr: ast.Multiply{Left: sym("y"), Right: num(0)}, expected: num(0)},
		{name: "left zero", expr: ast.Multiply{Left: num(0), Right: sym("x")}, expected: num(0)},
		{name: "fold numbers", expr: ast.Multiply{Left: num(3), Right: num(-4)}, expected: num(-12)},
		{name: "symbols", expr: ast.Multiply{Left: sym("x"), Right: sym("y")}, expected: ast.Multiply{Left: sym("x"), Right: sym("y")}},
		{
			name:     "simplifies children",
			expr:     ast.Multiply{Left: num(2), Right: ast.Subtract{Left: ast.Multiply{Left: num(3), Right: sym("x")}, Right: sym("x")}},
			expected: ast.Multiply{Left: num(2), Right: ast.Multiply{Left: num(2), Right: sym("x")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, simplify.Simplify(tt.expr))
		})
	}
}

func TestSimplifyDoesNotMutate(t *testing.T) {
	expr := mustParse(t, "2 * x + 3 - 4")
	before := pretty.Sprint(expr)
	_ = simplify.Simplify(expr)
	assert.Equal(t, before, pretty.Sprint(expr))
}

func TestCollect(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Expr
		expected simplify.LinearForm
	}{
		{name: "number", expr: num(4), expected: simplify.LinearForm{Constant: 4}},
		{name: "x", expr: sym("x"), expected: simplify.LinearForm{Coefficient: 1}},
		{
			name:     "coefficient and constant",
			expr:     mustParse(t, "2 * x + 3 * x + 3 - 4"),
			expected: simplify.LinearForm{Coefficient: 5, Constant: -1},
		},
		{
			name:     "number product",
			expr:     ast.Multiply{Left: num(3), Right: num(4)},
			expected: simplify.LinearForm{Constant: 12},
		},
		{
			name:     "x times number",
			expr:     ast.Multiply{Left: sym("x"), Right: num(4)},
			expected: simplify.LinearForm{Coefficient: 4},
		},
		{
			name:     "nested scale",
			expr:     ast.Subtract{Left: num(1), Right: ast.Multiply{Left: num(2), Right: ast.Add{Left: sym("x"), Right: num(3)}}},
			expected: simplify.LinearForm{Coefficient: -2, Constant: -5},
		},
		{
			name:     "residual symbol",
			expr:     ast.Subtract{Left: sym("x"), Right: sym("y")},
			expected: simplify.LinearForm{Coefficient: 1, Residual: []ast.Expr{ast.Multiply{Left: num(-1), Right: sym("y")}}},
		},
		{
			name:     "residual product",
			expr:     ast.Add{Left: ast.Multiply{Left: sym("x"), Right: sym("x")}, Right: num(1)},
			expected: simplify.LinearForm{Constant: 1, Residual: []ast.Expr{ast.Multiply{Left: sym("x"), Right: sym("x")}}},
		},
		{
			name:     "zero scaled residual is dropped",
			expr:     ast.Multiply{Left: num(0), Right: sym("y")},
			expected: simplify.LinearForm{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := simplify.Collect(tt.expr)
			assert.Equal(t, tt.expected, form, "%# v", pretty.Formatter(form))
			assert.Equal(t, len(tt.expected.Residual) == 0, form.IsLinear())
		})
	}
}

func TestRebuild(t *testing.T) {
	x := ast.NewX()
	tests := []struct {
		name     string
		form     simplify.LinearForm
		expected ast.Expr
	}{
		{name: "zero", form: simplify.LinearForm{}, expected: num(0)},
		{name: "constant", form: simplify.LinearForm{Constant: -3}, expected: num(-3)},
		{name: "x term", form: simplify.LinearForm{Coefficient: 2}, expected: ast.Multiply{Left: num(2), Right: x}},
		{name: "unit x", form: simplify.LinearForm{Coefficient: 1}, expected: x},
		{
			name:     "full",
			form:     simplify.LinearForm{Coefficient: 1, Constant: 2},
			expected: ast.Add{Left: ast.Multiply{Left: num(1), Right: x}, Right: num(2)},
		},
		{
			name:     "residual only",
			form:     simplify.LinearForm{Residual: []ast.Expr{sym("y"), sym("z")}},
			expected: ast.Add{Left: sym("y"), Right: sym("z")},
		},
		{
			name:     "residual after constant",
			form:     simplify.LinearForm{Constant: 2, Residual: []ast.Expr{sym("y")}},
			expected: ast.Add{Left: num(2), Right: sym("y")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, simplify.Rebuild(tt.form))
		})
	}
}
