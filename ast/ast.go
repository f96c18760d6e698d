// Package ast defines the expression tree of linear expressions and
// equations in the single variable x.
package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Expr is one of Number, Symbol, Add, Subtract or Multiply.
// The set is closed: code switching over it panics on anything else.
type Expr interface {
	fmt.Stringer
	expr()
}

// Stmt is what the parser produces for a line of input: an ExpressionStmt or an Equation.
type Stmt interface {
	fmt.Stringer
	stmt()
}

func unknownExpr(e Expr) error {
	return fmt.Errorf("unsupported expression type %T", e)
}

func (n Number) String() string { return FormatNumber(n.Value) }

func (s Symbol) String() string { return s.Name }

// String renders `(L + R)`. When R renders with a leading minus, the sum is
// shown as a difference, `(L - R')`, and a product on the left drops its own
// parentheses: the canonical `5x + -1` prints as `(5 * x - 1)`.
func (a Add) String() string {
	right := a.Right.String()
	if rest, ok := strings.CutPrefix(right, "-"); ok {
		return fmt.Sprintf("(%s - %s)", bareProduct(a.Left), rest)
	}
	return fmt.Sprintf("(%s + %s)", a.Left, right)
}

func (s Subtract) String() string {
	return fmt.Sprintf("(%s - %s)", s.Left, s.Right)
}

func (m Multiply) String() string {
	if sym, ok := m.Right.(Symbol); ok && IsNumber(m.Left, -1) {
		return "-" + sym.String()
	}
	return fmt.Sprintf("(%s * %s)", m.Left, m.Right)
}

func bareProduct(e Expr) string {
	m, ok := e.(Multiply)
	if !ok {
		return e.String()
	}
	out := m.String()
	if strings.HasPrefix(out, "(") {
		return fmt.Sprintf("%s * %s", m.Left, m.Right)
	}
	return out
}

// FormatNumber renders a float the way JavaScript prints numbers: shortest
// round-trip digits, exponent notation outside [1e-6, 1e21), no negative zero.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		out := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(out, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
