// Package solver solves linear equations `a*x + b = c` for x.
package solver

import (
	"errors"
	"fmt"

	"go.creack.net/xsolve/ast"
	"go.creack.net/xsolve/simplify"
)

var (
	// ErrUnsolvableForm is returned when the left side does not simplify to `a*x + b`.
	ErrUnsolvableForm = errors.New("equation not in solvable form (ax + b = c)")
	// ErrZeroCoefficient is returned when the coefficient of x is 0.
	ErrZeroCoefficient = errors.New("coefficient of x cannot be zero")
)

// SolveLinear simplifies left, evaluates right and returns x = (c - b) / a.
func SolveLinear(left, right ast.Expr) (float64, error) {
	simplified := simplify.Simplify(left)
	c := ast.Evaluate(right, nil)

	a, b, ok := canonicalTerms(simplified)
	if !ok {
		// `0 * x + 5` and `x - x` lose x during simplification.
		if ast.MentionsX(left) {
			if form := simplify.Collect(left); form.IsLinear() && form.Coefficient == 0 {
				return 0, fmt.Errorf("%w: %s", ErrZeroCoefficient, left)
			}
		}
		return 0, fmt.Errorf("%w: left side simplifies to %s", ErrUnsolvableForm, simplified)
	}
	if a == 0 {
		return 0, fmt.Errorf("%w: %s", ErrZeroCoefficient, left)
	}
	return (c - b) / a, nil
}

// canonicalTerms extracts a and b from `Add(Multiply(Number a, Symbol), Number b)`.
func canonicalTerms(e ast.Expr) (a, b float64, ok bool) {
	add, ok := e.(ast.Add)
	if !ok {
		return 0, 0, false
	}
	term, ok := add.Left.(ast.Multiply)
	if !ok {
		return 0, 0, false
	}
	coef, ok := term.Left.(ast.Number)
	if !ok {
		return 0, 0, false
	}
	if _, ok := term.Right.(ast.Symbol); !ok {
		return 0, 0, false
	}
	constant, ok := add.Right.(ast.Number)
	if !ok {
		return 0, 0, false
	}
	return coef.Value, constant.Value, true
}
