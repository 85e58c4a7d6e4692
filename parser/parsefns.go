package parser

import (
	"git.sr.ht/~mango/calc/ast"
	"git.sr.ht/~mango/calc/lexer"
	"git.sr.ht/~mango/calc/vm"
)

func (p *parser) parseProgram(prog *vm.Program) error {
	for {
		var err error

		switch t := p.peek(); t.Kind {
		case lexer.TokEof:
			return nil
		case lexer.TokEndStmt:
			p.next()
		case lexer.TokKwInt, lexer.TokKwDouble:
			err = p.parseDeclare(prog)
		case lexer.TokIdent:
			err = p.parseAssign(prog)
		case lexer.TokKwPrint:
			err = p.parsePrint(prog)
		default:
			err = errExpected("a statement", p.next())
		}

		if err != nil {
			return err
		}
	}
}

func (p *parser) parseDeclare(prog *vm.Program) error {
	typ := ast.Int
	if p.next().Kind == lexer.TokKwDouble {
		typ = ast.Double
	}

	name := p.next()
	if name.Kind != lexer.TokIdent {
		return errExpected("a variable name", name)
	}
	if err := prog.Declare(name.Val, typ); err != nil {
		return errAt(ErrRedeclared, name)
	}

	st := &vm.Declare{Name: name.Val, Type: typ}
	if t := p.peek(); t.Kind == lexer.TokAssign {
		p.next()
		e, err := p.parseExpr(prog)
		if err != nil {
			return err
		}
		if e == nil {
			return &CompileError{
				Kind: ErrEmptyExpr,
				Tok:  t,
				Want: "to initialize ‘" + name.Val + "’",
			}
		}
		st.Init = e
	}

	if err := p.parseEnd(); err != nil {
		return err
	}
	prog.Append(st)
	return nil
}

func (p *parser) parseAssign(prog *vm.Program) error {
	name := p.next()
	if _, err := prog.Lookup(name.Val); err != nil {
		return errAt(ErrUndefined, name)
	}

	t := p.next()
	if t.Kind != lexer.TokAssign {
		return errExpected("‘=’", t)
	}

	e, err := p.parseExpr(prog)
	if err != nil {
		return err
	}
	if e == nil {
		return &CompileError{
			Kind: ErrEmptyExpr,
			Tok:  t,
			Want: "to assign to ‘" + name.Val + "’",
		}
	}

	if err := p.parseEnd(); err != nil {
		return err
	}
	prog.Append(&vm.Assign{Name: name.Val, Expr: e})
	return nil
}

func (p *parser) parsePrint(prog *vm.Program) error {
	t := p.next() // Consume ‘print’

	e, err := p.parseExpr(prog)
	if err != nil {
		return err
	}
	if e == nil {
		return &CompileError{Kind: ErrEmptyExpr, Tok: t, Want: "to print"}
	}

	if err := p.parseEnd(); err != nil {
		return err
	}
	prog.Append(&vm.Print{Expr: e})
	return nil
}

// parseEnd consumes the end of a statement.  The end of input also ends a
// statement but is left for parseProgram to see.
func (p *parser) parseEnd() error {
	switch t := p.peek(); t.Kind {
	case lexer.TokEndStmt:
		p.next()
		return nil
	case lexer.TokEof:
		return nil
	default:
		return errExpected("end of statement", p.next())
	}
}
