package lexer

import "unicode"

func isStmtEnd(r rune) bool {
	return r == ';' || r == '\n'
}

func isBlank(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
