package parser

import (
	"git.sr.ht/~mango/calc/ast"
	"git.sr.ht/~mango/calc/lexer"
)

// op is an entry on the operator stack of the expression builder.
type op int

const (
	opPOpen op = iota
	opRound
	opAdd
	opSub
	opMul
	opDiv
	opPow
)

// prec is the binding power of o; higher binds tighter.  An opening
// parenthesis has the lowest so that no binary operator reduces past it.
func (o op) prec() int {
	switch o {
	case opPOpen:
		return 0
	case opAdd, opSub:
		return 1
	case opMul, opDiv:
		return 2
	case opPow, opRound:
		return 3
	}
	panic("unreachable")
}

func (o op) binOp() ast.BinOp {
	switch o {
	case opAdd:
		return ast.Add
	case opSub:
		return ast.Sub
	case opMul:
		return ast.Mul
	case opDiv:
		return ast.Div
	case opPow:
		return ast.Pow
	}
	panic("unreachable")
}

var binOps = map[lexer.TokenType]op{
	lexer.TokPlus:  opAdd,
	lexer.TokMinus: opSub,
	lexer.TokStar:  opMul,
	lexer.TokSlash: opDiv,
	lexer.TokCaret: opPow,
}

// Scope resolves the declared type of a variable while parsing.
type Scope interface {
	Lookup(name string) (ast.Type, error)
}
