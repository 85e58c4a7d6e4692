package lexer

// IsOperandStart reports whether a token of the given kind can begin an
// operand: a literal, a variable, an opening parenthesis or the prefix ‘~’.
func IsOperandStart(kind TokenType) bool {
	return kind == TokInt ||
		kind == TokFloat ||
		kind == TokIdent ||
		kind == TokPOpen ||
		kind == TokTilde
}

// IsBinaryOp reports whether kind is one of the infix arithmetic operators.
func IsBinaryOp(kind TokenType) bool {
	return kind == TokPlus ||
		kind == TokMinus ||
		kind == TokStar ||
		kind == TokSlash ||
		kind == TokCaret
}

// IsKeyword reports whether kind is a reserved word.
func IsKeyword(kind TokenType) bool {
	return kind == TokKwInt ||
		kind == TokKwDouble ||
		kind == TokKwPrint
}

// IsTerminator reports whether kind ends a statement.
func IsTerminator(kind TokenType) bool {
	return kind == TokEndStmt || kind == TokEof
}
