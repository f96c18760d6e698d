package ast

// ExpressionStmt is a bare expression, without '='.
type ExpressionStmt struct {
	Expression Expr
}

func (ExpressionStmt) stmt() {}

func (s ExpressionStmt) String() string { return s.Expression.String() }

// Equation is `Left = Right`. Right is always a Number built by the parser.
type Equation struct {
	Left  Expr
	Right Expr
}

func (Equation) stmt() {}

func (e Equation) String() string {
	return e.Left.String() + " = " + e.Right.String()
}
