// Package lexer splits linear expressions into operator and word tokens.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input string

	curToken  Token
	prevToken Token // Last emitted token, used for the unary minus rule.

	pos   int // Current position in input.
	width int // Width of the last rune read.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input:     input,
		prevToken: Token{Type: TokEOF},
	}
}

// Tokenize consumes the whole input and returns its tokens, without the
// trailing EOF.
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Values returns the raw text of each token.
func Values(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Value)
	}
	return out
}

func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Value: "EOF", Pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			if l.curToken.Type != TokEOF {
				l.prevToken = l.curToken
			}
			return l.curToken
		}
	}
}

// next returns the next rune, or 0 at the end of the input.
func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = n
	l.pos += n
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *Lexer) backup() {
	l.pos -= l.width
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// peekSecond returns the rune following the next one without consuming anything.
func (l *Lexer) peekSecond() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	_, n := utf8.DecodeRuneInString(l.input[l.pos:])
	if l.pos+n >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos+n:])
	return r
}

func (l *Lexer) acceptRunFunc(valid func(rune) bool) bool {
	accepted := false
	for {
		r := l.next()
		if r == 0 || !valid(r) {
			l.backup()
			return accepted
		}
		accepted = true
	}
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		Pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emit(tt TokenType) stateFn {
	l.curToken = l.thisToken(tt)
	return nil
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func isBlank(r rune) bool {
	return unicode.IsSpace(r)
}

func isWordRune(r rune) bool {
	return !isBlank(r) && !strings.ContainsRune("+-*=", r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
