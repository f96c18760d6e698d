package lexer

type stateFn func(*Lexer) stateFn

func lexText(l *Lexer) stateFn {
	switch r := l.peek(); {
	case r == 0:
		return l.emit(TokEOF)
	case isBlank(r):
		l.acceptRunFunc(isBlank)
		l.ignore()
		return lexText
	case r == '-':
		return lexDash
	default:
		if tok, ok := operators[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return lexWord
	}
}

// lexDash folds a unary minus into the following number. A dash is unary at
// the start of the input or right after another operator, and only when a
// digit follows it directly.
func lexDash(l *Lexer) stateFn {
	unary := l.prevToken.Type == TokEOF || l.prevToken.Type.IsOperator()
	if unary && isDigit(l.peekSecond()) {
		l.next()
		return lexWord
	}
	l.next()
	return l.emit(TokDash)
}

func lexWord(l *Lexer) stateFn {
	l.acceptRunFunc(isWordRune)
	return l.emit(TokWord)
}
