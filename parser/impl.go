package parser

import (
	"fmt"

	"git.sr.ht/~mango/calc/ast"
	"git.sr.ht/~mango/calc/lexer"
	"git.sr.ht/~mango/calc/pkg/stack"
)

// builder holds the two stacks of a single expression parse.
type builder struct {
	ops      stack.Stack[op]
	operands stack.Stack[ast.Expr]
}

func newBuilder() *builder {
	return &builder{
		ops:      stack.New[op](8),
		operands: stack.New[ast.Expr](8),
	}
}

func (b *builder) release() {
	b.ops.Clear()
	b.operands.Clear()
}

// reduce pops one operator and replaces its operands with the node it
// builds.
func (b *builder) reduce() {
	o := *b.ops.Pop()
	if o == opRound {
		x := *b.operands.Pop()
		b.operands.Push(ast.NewRound(x))
		return
	}

	r := *b.operands.Pop()
	l := *b.operands.Pop()
	b.operands.Push(ast.NewBinary(o.binOp(), l, r))
}

// endsExpr reports whether a token of kind k is left for the caller.
func endsExpr(k lexer.TokenType) bool {
	return lexer.IsTerminator(k) || lexer.IsKeyword(k) || k == lexer.TokAssign
}

// parseExpr reads one expression, stopping without consuming the token that
// ends it.  It returns a nil expression if there was nothing to read.
func (p *parser) parseExpr(sc Scope) (ast.Expr, error) {
	b := newBuilder()
	defer b.release()

	n := 0
	expectOperand := true

	for ; !endsExpr(p.peek().Kind); n++ {
		t := p.next()

		if t.Kind == lexer.TokError {
			return nil, errAt(ErrInvalidLexeme, t)
		}
		if expectOperand != lexer.IsOperandStart(t.Kind) {
			return nil, errAt(ErrConsecutive, t)
		}

		switch t.Kind {
		case lexer.TokInt:
			b.operands.Push(ast.NewNumber(ast.IntVal(t.Int)))
			expectOperand = false
		case lexer.TokFloat:
			b.operands.Push(ast.NewNumber(ast.DoubleVal(t.Float)))
			expectOperand = false
		case lexer.TokIdent:
			typ, err := sc.Lookup(t.Val)
			if err != nil {
				return nil, errAt(ErrUndefined, t)
			}
			b.operands.Push(ast.NewVar(t.Val, typ))
			expectOperand = false
		case lexer.TokPOpen:
			b.ops.Push(opPOpen)
		case lexer.TokTilde:
			b.ops.Push(opRound)
		case lexer.TokPClose:
			for !b.ops.Empty() && !b.ops.TopIs(opPOpen) {
				b.reduce()
			}
			if b.ops.Empty() {
				return nil, errAt(ErrUnmatchedRParen, t)
			}
			b.ops.Pop()
		default:
			if !lexer.IsBinaryOp(t.Kind) {
				return nil, errExpected("an operator", t)
			}
			o := binOps[t.Kind]
			for !b.ops.Empty() && b.ops.Peek().prec() >= o.prec() {
				b.reduce()
			}
			b.ops.Push(o)
			expectOperand = true
		}
	}

	end := p.peek()
	if expectOperand {
		if n == 0 {
			return nil, nil
		}
		return nil, errAt(ErrMissingOperand, end)
	}

	for !b.ops.Empty() {
		if b.ops.TopIs(opPOpen) {
			return nil, errAt(ErrUnmatchedLParen, end)
		}
		b.reduce()
	}

	if b.operands.Len() != 1 {
		panic(fmt.Sprintf("expression left %d operands", b.operands.Len()))
	}
	return *b.operands.Pop(), nil
}
