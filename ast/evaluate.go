package ast

// Bindings maps symbol names to their value. Missing names evaluate to 0.
type Bindings map[string]float64

// Evaluate computes the numeric value of e. Both operands of a binary node
// are always evaluated.
func Evaluate(e Expr, vars Bindings) float64 {
	switch e := e.(type) {
	case Number:
		return e.Value
	case Symbol:
		return vars[e.Name]
	case Add:
		return Evaluate(e.Left, vars) + Evaluate(e.Right, vars)
	case Subtract:
		return Evaluate(e.Left, vars) - Evaluate(e.Right, vars)
	case Multiply:
		return Evaluate(e.Left, vars) * Evaluate(e.Right, vars)
	default:
		panic(unknownExpr(e))
	}
}
