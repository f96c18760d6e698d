// Package parser builds ast trees from linear expressions and equations.
//
// The grammar is flat, left to right:
//
//	expression = term { ("+" | "-") term }
//	term       = number "*" identifier | number | identifier
//
// There is no grouping and no precedence beyond the `number * identifier`
// lookahead.
package parser

import (
	"errors"
	"fmt"

	"go.creack.net/xsolve/ast"
	"go.creack.net/xsolve/lexer"
)

var (
	// ErrEmptyExpression is returned when the input holds no token.
	ErrEmptyExpression = errors.New("empty expression")
	// ErrUnexpectedToken is returned when a '+' or '-' is expected between two terms.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrInvalidTerm is returned when a term is expected but the input is
	// exhausted or holds an operator.
	ErrInvalidTerm = errors.New("invalid term")
	// ErrInvalidRightSide is returned in strict mode when the right side of
	// an equation is not a number literal.
	ErrInvalidRightSide = errors.New("invalid right side")
)

type parser struct {
	tokens []lexer.Token
	pos    int // Index of the current token.
}

func newParser(input string) *parser {
	return &parser{
		tokens: lexer.Tokenize(input),
	}
}

// ParseComplex parses an expression without '='.
func ParseComplex(input string) (ast.Expr, error) {
	p := newParser(input)
	if len(p.tokens) == 0 {
		return nil, ErrEmptyExpression
	}
	return p.parseExpr()
}

func (p *parser) parseExpr() (ast.Expr, error) {
	root, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for !p.atEnd() {
		operator := p.curToken()
		fold, ok := infixLookupTable[operator.Type]
		if !ok {
			return nil, fmt.Errorf("%w %q at offset %d, expected '+' or '-'", ErrUnexpectedToken, operator.Value, operator.Pos)
		}
		p.nextToken()

		term, err := p.parseTerm()
		if err != nil {
			return nil, fmt.Errorf("after %q at offset %d: %w", operator.Value, operator.Pos, err)
		}
		root = fold(root, term)
	}

	return root, nil
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) curToken() lexer.Token {
	return p.peekN(0)
}

// peekN returns the token n positions after the current one, or EOF.
func (p *parser) peekN(n int) lexer.Token {
	if p.pos+n >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokEOF, Value: "EOF"}
	}
	return p.tokens[p.pos+n]
}

func (p *parser) nextToken() lexer.Token {
	tok := p.curToken()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}
