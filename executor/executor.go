// Package executor runs the simplify, solve and evaluate operations on raw
// text. It is the entry point for front ends.
package executor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tliron/commonlog"

	"go.creack.net/xsolve/ast"
	"go.creack.net/xsolve/parser"
	"go.creack.net/xsolve/simplify"
	"go.creack.net/xsolve/solver"
)

// ErrNotAnEquation is returned by Solve when the input does not hold exactly one '='.
var ErrNotAnEquation = errors.New("enter an equation with exactly one '='")

var log = commonlog.GetLogger("xsolve.executor")

// Simplify returns the canonical rendering of the input. For an equation,
// the left side is simplified.
func Simplify(input string, opts ...parser.Option) (string, error) {
	stmt, err := parser.ParseExpression(input, opts...)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", input, err)
	}
	log.Debugf("parsed %q: %s", input, stmt)

	simplified := simplify.Simplify(exprOf(stmt))
	log.Debugf("simplified %q: %s", input, simplified)
	return simplified.String(), nil
}

// Solve returns the root of a linear equation `a*x + b = c`.
func Solve(input string, opts ...parser.Option) (float64, error) {
	if n := strings.Count(input, "="); n != 1 {
		return 0, fmt.Errorf("%w: found %d in %q", ErrNotAnEquation, n, input)
	}
	stmt, err := parser.ParseExpression(input, opts...)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", input, err)
	}
	eq, ok := stmt.(ast.Equation)
	if !ok { // Should never happen.
		return 0, fmt.Errorf("%w: %q", ErrNotAnEquation, input)
	}
	log.Debugf("solving %s", eq)

	x, err := solver.SolveLinear(eq.Left, eq.Right)
	if err != nil {
		return 0, fmt.Errorf("solve %q: %w", input, err)
	}
	log.Debugf("solution of %q: x = %s", input, ast.FormatNumber(x))
	return x, nil
}

// Evaluate computes the input with the given bindings. For an equation, the
// left side is evaluated.
func Evaluate(input string, vars ast.Bindings, opts ...parser.Option) (float64, error) {
	stmt, err := parser.ParseExpression(input, opts...)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", input, err)
	}
	return ast.Evaluate(exprOf(stmt), vars), nil
}

func exprOf(stmt ast.Stmt) ast.Expr {
	switch s := stmt.(type) {
	case ast.ExpressionStmt:
		return s.Expression
	case ast.Equation:
		return s.Left
	default:
		panic(fmt.Errorf("unsupported statement type %T", s))
	}
}
