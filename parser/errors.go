package parser

import (
	"fmt"

	"git.sr.ht/~mango/calc/lexer"
)

type CompileErrorKind int

const (
	ErrConsecutive CompileErrorKind = iota
	ErrUnmatchedRParen
	ErrUnmatchedLParen
	ErrMissingOperand
	ErrUndefined
	ErrRedeclared
	ErrUnexpected
	ErrInvalidLexeme
	ErrEmptyExpr
)

// CompileError is an error found while parsing.  Tok is the token at which
// the problem was noticed; for errors detected at the end of an expression
// it is the token that ended it.
type CompileError struct {
	Kind CompileErrorKind
	Tok  lexer.Token
	Want string // What was expected instead, for ErrUnexpected and ErrEmptyExpr
}

func (e *CompileError) Pos() lexer.Pos {
	return e.Tok.Pos
}

func (e *CompileError) Error() string {
	var s string
	switch e.Kind {
	case ErrConsecutive:
		s = fmt.Sprintf("Consecutive operands or operators found: %s", e.Tok)
	case ErrUnmatchedRParen:
		s = "Unmatched right parenthesis"
	case ErrUnmatchedLParen:
		s = fmt.Sprintf("Unmatched left parenthesis before %s", e.Tok)
	case ErrMissingOperand:
		s = fmt.Sprintf("Missing operand before %s", e.Tok)
	case ErrUndefined:
		s = fmt.Sprintf("Undefined variable ‘%s’", e.Tok.Val)
	case ErrRedeclared:
		s = fmt.Sprintf("Variable ‘%s’ is already declared", e.Tok.Val)
	case ErrUnexpected:
		s = fmt.Sprintf("Expected %s but got %s", e.Want, e.Tok)
	case ErrInvalidLexeme:
		s = fmt.Sprintf("Unrecognized input ‘%s’", e.Tok.Val)
	case ErrEmptyExpr:
		s = fmt.Sprintf("Expected an expression %s", e.Want)
	default:
		panic("unreachable")
	}
	return fmt.Sprintf("%s at %s", s, e.Tok.Pos)
}

// Is makes errors.Is match any CompileError of the same kind.
func (e *CompileError) Is(target error) bool {
	t, ok := target.(*CompileError)
	return ok && t.Kind == e.Kind
}

func errAt(k CompileErrorKind, t lexer.Token) *CompileError {
	return &CompileError{Kind: k, Tok: t}
}

// errExpected reports t where want was expected.  Scanner errors are reported
// as such rather than as a bad token.
func errExpected(want string, t lexer.Token) *CompileError {
	if t.Kind == lexer.TokError {
		return errAt(ErrInvalidLexeme, t)
	}
	return &CompileError{Kind: ErrUnexpected, Tok: t, Want: want}
}
