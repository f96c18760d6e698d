package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Operands.
	TokWord // Any run of non operator, non blank characters.

	// Operators.
	TokPlus     // '+'.
	TokDash     // '-'.
	TokMultiply // '*'.
	TokEquals   // '='.

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokWord: "WORD",

	TokPlus:     "PLUS",
	TokDash:     "DASH",
	TokMultiply: "MULTIPLY",
	TokEquals:   "EQUALS",
}

// operators maps the operator runes to their token type.
var operators = map[rune]TokenType{
	'+': TokPlus,
	'-': TokDash,
	'*': TokMultiply,
	'=': TokEquals,
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsOperator reports whether the token type is one of + - * =.
func (tt TokenType) IsOperator() bool {
	return tt.IsOneOf(TokPlus, TokDash, TokMultiply, TokEquals)
}

// Token represents a lexical token of an expression.
type Token struct {
	Type  TokenType
	Value string

	Pos int // Byte offset of the token in the input.
}

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d]: %.16q", t.Type, t.Pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.Pos, t.Value)
}
