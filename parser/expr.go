package parser

import (
	"errors"
	"fmt"
	"strconv"

	"go.creack.net/xsolve/ast"
	"go.creack.net/xsolve/lexer"
)

// parseTerm parses `number * identifier`, a number or a symbol.
func (p *parser) parseTerm() (ast.Expr, error) {
	if p.atEnd() {
		return nil, fmt.Errorf("%w: no tokens left", ErrInvalidTerm)
	}
	tok := p.curToken()
	if tok.Type != lexer.TokWord {
		return nil, fmt.Errorf("%w: unexpected operator %q at offset %d", ErrInvalidTerm, tok.Value, tok.Pos)
	}

	if coef, ok := parseNumber(tok.Value); ok && p.peekN(1).Type == lexer.TokMultiply {
		if ident := p.peekN(2); ident.Type == lexer.TokWord && !isNumberLiteral(ident.Value) {
			p.pos += 3
			return ast.Multiply{
				Left:  ast.Number{Value: coef},
				Right: ast.Symbol{Name: ident.Value},
			}, nil
		}
	}

	p.nextToken()
	return parsePrimaryExpr(tok), nil
}

func parsePrimaryExpr(tok lexer.Token) ast.Expr {
	if number, ok := parseNumber(tok.Value); ok {
		return ast.Number{Value: number}
	}
	return ast.Symbol{Name: tok.Value}
}

// parseNumber parses a decimal literal. Inf, NaN and hexadecimal forms are
// rejected so they stay symbols. Out of range literals yield ±Inf.
func parseNumber(s string) (float64, bool) {
	if !isNumberLiteral(s) {
		return 0, false
	}
	number, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return number, true
}

func isNumberLiteral(s string) bool {
	return s != "" && scanNumber(s) == len(s)
}

// scanNumber returns the length of the longest prefix of s matching
// [+-]? (digits [. digits?] | . digits) ([eE] [+-]? digits)?.
func scanNumber(s string) int {
	isDigit := func(i int) bool { return i < len(s) && s[i] >= '0' && s[i] <= '9' }

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for isDigit(i) {
		i++
	}
	intDigits := i - start

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for isDigit(j) {
			j++
		}
		fracDigits = j - i - 1
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for isDigit(k) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}
