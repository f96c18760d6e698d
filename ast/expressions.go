package ast

// Number is a literal constant.
type Number struct {
	Value float64
}

func (Number) expr() {}

// Symbol is a free variable reference.
type Symbol struct {
	Name string
}

func (Symbol) expr() {}

type Add struct {
	Left  Expr
	Right Expr
}

func (Add) expr() {}

type Subtract struct {
	Left  Expr
	Right Expr
}

func (Subtract) expr() {}

type Multiply struct {
	Left  Expr
	Right Expr
}

func (Multiply) expr() {}

// X is the symbol equations are solved for.
const X = "x"

// NewX returns the Symbol for x.
func NewX() Symbol { return Symbol{Name: X} }

// IsNumber reports whether e is a Number with the given value.
func IsNumber(e Expr, value float64) bool {
	n, ok := e.(Number)
	return ok && n.Value == value
}

// MentionsX reports whether the tree references x anywhere.
func MentionsX(e Expr) bool {
	switch e := e.(type) {
	case Number:
		return false
	case Symbol:
		return e.Name == X
	case Add:
		return MentionsX(e.Left) || MentionsX(e.Right)
	case Subtract:
		return MentionsX(e.Left) || MentionsX(e.Right)
	case Multiply:
		return MentionsX(e.Left) || MentionsX(e.Right)
	default:
		panic(unknownExpr(e))
	}
}
