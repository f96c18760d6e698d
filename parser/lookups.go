package parser

import (
	"go.creack.net/xsolve/ast"
	"go.creack.net/xsolve/lexer"
)

// infixHandler folds the running root and the next term into a binary node.
type infixHandler func(left, right ast.Expr) ast.Expr

type lookupTable[T any] map[lexer.TokenType]T

// infixLookupTable holds the operators allowed between two terms.
// '*' only appears inside a term and '=' is split off before parsing.
var infixLookupTable = lookupTable[infixHandler]{
	lexer.TokPlus: func(left, right ast.Expr) ast.Expr {
		return ast.Add{Left: left, Right: right}
	},
	lexer.TokDash: func(left, right ast.Expr) ast.Expr {
		return ast.Subtract{Left: left, Right: right}
	},
}
