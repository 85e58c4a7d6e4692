package lexer

import (
	"strconv"
	"unicode/utf8"
)

type lexFn func(*Lexer) lexFn

func lexDefault(l *Lexer) lexFn {
	for {
		l.start = l.pos
		switch r := l.next(); {
		case r == eof:
			l.emit(TokEof)
			return nil
		case isStmtEnd(r):
			l.emit(TokEndStmt)
		case r == '#':
			return lexComment
		case isBlank(r):
			l.ignore()
		case isDigit(r):
			l.backup()
			return lexNumber
		case isIdentStart(r):
			l.backup()
			return lexIdent
		default:
			if k, ok := punctuation[r]; ok {
				l.emit(k)
				continue
			}
			l.emit(TokError)
		}
	}
}

func lexComment(l *Lexer) lexFn {
	for r := l.next(); r != '\n' && r != eof; r = l.next() {
	}
	l.backup()
	l.ignore()
	return lexDefault
}

func lexNumber(l *Lexer) lexFn {
	l.acceptRun(isDigit)

	if l.peek() == '.' {
		l.next()
		if r, _ := utf8.DecodeRuneInString(l.input[l.pos:]); isDigit(r) {
			l.acceptRun(isDigit)
			return lexFloat(l)
		}
		l.backup()
	}

	s := l.input[l.start:l.pos]
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		l.emit(TokError)
		return lexDefault
	}
	l.push(Token{Kind: TokInt, Pos: l.position(l.start), Val: s, Int: n})
	return lexDefault
}

func lexFloat(l *Lexer) lexFn {
	s := l.input[l.start:l.pos]
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		l.emit(TokError)
		return lexDefault
	}
	l.push(Token{Kind: TokFloat, Pos: l.position(l.start), Val: s, Float: f})
	return lexDefault
}

func lexIdent(l *Lexer) lexFn {
	l.acceptRun(isIdentChar)
	if k, ok := keywords[l.input[l.start:l.pos]]; ok {
		l.emit(k)
	} else {
		l.emit(TokIdent)
	}
	return lexDefault
}
