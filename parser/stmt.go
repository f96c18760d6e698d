package parser

import (
	"fmt"
	"strings"

	"go.creack.net/xsolve/ast"
)

// Option configures ParseExpression.
type Option func(*options)

type options struct {
	strictRightSide bool
}

// WithStrictRightSide makes a right side that is not exactly a number
// literal fail with ErrInvalidRightSide. By default the longest numeric
// prefix is used and anything else reads as 0.
func WithStrictRightSide() Option {
	return func(o *options) { o.strictRightSide = true }
}

// WithStrict is WithStrictRightSide when strict is set, a no-op otherwise.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strictRightSide = strict }
}

// ParseExpression parses a bare expression or, when the input holds '=',
// an equation. The input is split at the first '='; the left side is a full
// expression and the right side a number.
func ParseExpression(input string, opts ...Option) (ast.Stmt, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	input = strings.TrimSpace(input)
	leftStr, rightStr, isEquation := strings.Cut(input, "=")
	if !isEquation {
		expr, err := ParseComplex(input)
		if err != nil {
			return nil, err
		}
		return ast.ExpressionStmt{Expression: expr}, nil
	}

	left, err := ParseComplex(leftStr)
	if err != nil {
		return nil, fmt.Errorf("left side: %w", err)
	}
	right, err := parseRightSide(strings.TrimSpace(rightStr), o.strictRightSide)
	if err != nil {
		return nil, err
	}
	return ast.Equation{Left: left, Right: right}, nil
}

func parseRightSide(s string, strict bool) (ast.Number, error) {
	if strict {
		number, ok := parseNumber(s)
		if !ok {
			return ast.Number{}, fmt.Errorf("%w: %q is not a number", ErrInvalidRightSide, s)
		}
		return ast.Number{Value: number}, nil
	}
	// Lenient: read the numeric prefix, default to 0.
	number, _ := parseNumber(s[:scanNumber(s)])
	return ast.Number{Value: number}, nil
}
