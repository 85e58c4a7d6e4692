// Package parser turns a token stream into a runnable program.  Statements
// are recognised with one token of lookahead; expressions are built with an
// operator-precedence parser that keeps its state on two explicit stacks
// instead of the call stack.
package parser

import (
	"git.sr.ht/~mango/calc/ast"
	"git.sr.ht/~mango/calc/lexer"
	"git.sr.ht/~mango/calc/vm"
)

// TokenSource produces tokens one at a time, ending with lexer.TokEof.
type TokenSource interface {
	Next() lexer.Token
}

type parser struct {
	src   TokenSource
	cache *lexer.Token
}

func (p *parser) next() lexer.Token {
	var t lexer.Token
	if p.cache != nil {
		t, p.cache = *p.cache, nil
	} else {
		t = p.src.Next()
	}
	return t
}

func (p *parser) peek() lexer.Token {
	if p.cache == nil {
		t := p.src.Next()
		p.cache = &t
	}
	return *p.cache
}

// Parse reads a whole program from src.  The program prints to the standard
// output until told otherwise with SetOutput.
func Parse(src TokenSource) (*vm.Program, error) {
	prog := vm.NewProgram(nil)
	if err := ParseInto(prog, src); err != nil {
		return nil, err
	}
	return prog, nil
}

// ParseInto appends the statements read from src to prog, declaring their
// variables along the way.  If parsing fails prog is left exactly as it was
// before the call.
func ParseInto(prog *vm.Program, src TokenSource) error {
	c := prog.Checkpoint()
	p := parser{src: src}
	if err := p.parseProgram(prog); err != nil {
		prog.Restore(c)
		return err
	}
	return nil
}

// ParseExpr reads a single expression from src, resolving variables in sc.
// It stops at the first token that cannot continue the expression without
// consuming it, and returns a nil expression if there was none.
func ParseExpr(src TokenSource, sc Scope) (ast.Expr, error) {
	p := parser{src: src}
	return p.parseExpr(sc)
}
