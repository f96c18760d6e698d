package simplify

import (
	"go.creack.net/xsolve/ast"
)

// LinearForm is `Coefficient*x + Constant` plus the terms collection could
// not fold, kept in the order they were met.
type LinearForm struct {
	Coefficient float64
	Constant    float64
	Residual    []ast.Expr
}

// IsLinear reports whether every term was folded.
func (f LinearForm) IsLinear() bool { return len(f.Residual) == 0 }

// Collect flattens an additive tree into its linear form.
func Collect(e ast.Expr) LinearForm {
	var f LinearForm
	f.collect(e, 1)
	return f
}

// collect accumulates scale*e into f.
func (f *LinearForm) collect(e ast.Expr, scale float64) {
	switch e := e.(type) {
	case ast.Number:
		f.Constant += scale * e.Value
	case ast.Symbol:
		if e.Name == ast.X {
			f.Coefficient += scale
			return
		}
		f.keep(e, scale)
	case ast.Add:
		f.collect(e.Left, scale)
		f.collect(e.Right, scale)
	case ast.Subtract:
		f.collect(e.Left, scale)
		f.collect(ast.Multiply{Left: ast.Number{Value: -1}, Right: e.Right}, scale)
	case ast.Multiply:
		// Only products with a numeric factor are linear.
		if n, ok := e.Left.(ast.Number); ok {
			f.collect(e.Right, scale*n.Value)
			return
		}
		if n, ok := e.Right.(ast.Number); ok {
			f.collect(e.Left, scale*n.Value)
			return
		}
		f.keep(e, scale)
	default:
		panic(unknownExpr(e))
	}
}

func (f *LinearForm) keep(e ast.Expr, scale float64) {
	switch scale {
	case 0:
	case 1:
		f.Residual = append(f.Residual, e)
	default:
		f.Residual = append(f.Residual, ast.Multiply{Left: ast.Number{Value: scale}, Right: e})
	}
}

// Rebuild returns the canonical tree of f: `Number`, `a * x`, or
// `(a * x) + b`, followed by the residual terms.
func Rebuild(f LinearForm) ast.Expr {
	var root ast.Expr
	switch {
	case f.Coefficient == 0:
		root = ast.Number{Value: f.Constant}
	case f.Constant == 0 && f.Coefficient == 1:
		// `1 * x` would simplify to x again.
		root = ast.NewX()
	case f.Constant == 0:
		root = xTerm(f.Coefficient)
	default:
		root = ast.Add{Left: xTerm(f.Coefficient), Right: ast.Number{Value: f.Constant}}
	}

	for i, term := range f.Residual {
		if i == 0 && ast.IsNumber(root, 0) {
			root = term
			continue
		}
		root = ast.Add{Left: root, Right: term}
	}
	return root
}

func xTerm(coef float64) ast.Multiply {
	return ast.Multiply{Left: ast.Number{Value: coef}, Right: ast.NewX()}
}
