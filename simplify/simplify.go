// Package simplify rewrites expression trees into their canonical linear
// form.
package simplify

import (
	"fmt"

	"go.creack.net/xsolve/ast"
)

// Simplify returns a new, simplified tree. The input is left untouched.
func Simplify(e ast.Expr) ast.Expr {
	switch e := e.(type) {
	case ast.Number, ast.Symbol:
		return e
	case ast.Add:
		return Rebuild(Collect(e))
	case ast.Subtract:
		// a - b is a + -1*b.
		return Simplify(ast.Add{
			Left:  Simplify(e.Left),
			Right: ast.Multiply{Left: ast.Number{Value: -1}, Right: Simplify(e.Right)},
		})
	case ast.Multiply:
		return simplifyMultiply(e)
	default:
		panic(unknownExpr(e))
	}
}

// simplifyMultiply applies, in order: x*1 = x, 1*x = x, x*0 = 0*x = 0,
// folding of two numbers.
func simplifyMultiply(m ast.Multiply) ast.Expr {
	left := Simplify(m.Left)
	right := Simplify(m.Right)

	switch {
	case ast.IsNumber(right, 1):
		return left
	case ast.IsNumber(left, 1):
		return right
	case ast.IsNumber(right, 0), ast.IsNumber(left, 0):
		return ast.Number{Value: 0}
	}
	if l, ok := left.(ast.Number); ok {
		if r, ok := right.(ast.Number); ok {
			return ast.Number{Value: l.Value * r.Value}
		}
	}
	return ast.Multiply{Left: left, Right: right}
}

func unknownExpr(e ast.Expr) error {
	return fmt.Errorf("unsupported expression type %T", e)
}
