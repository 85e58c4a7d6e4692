// Package vm runs parsed programs.  Expressions are evaluated straight off
// the tree; there is no intermediate code.
package vm

import (
	"io"
	"os"

	"git.sr.ht/~mango/calc/ast"
	"git.sr.ht/~mango/calc/vm/vars"
)

// Program is a sequence of statements together with the variables they
// declare.  A Program is not safe for concurrent use.
type Program struct {
	vars  *vars.Store
	stmts []Statement
	out   io.Writer
}

// NewProgram returns an empty program printing to out, or to the standard
// output if out is nil.
func NewProgram(out io.Writer) *Program {
	if out == nil {
		out = os.Stdout
	}
	return &Program{vars: vars.New(), out: out}
}

// Declare adds a variable of type t.  It fails with vars.ErrRedeclared if the
// name is taken.
func (p *Program) Declare(name string, t ast.Type) error {
	_, err := p.vars.Declare(name, t)
	return err
}

// Lookup returns the declared type of name, failing with vars.ErrUndeclared
// if there is no such variable.
func (p *Program) Lookup(name string) (ast.Type, error) {
	v, err := p.vars.Lookup(name)
	if err != nil {
		return 0, err
	}
	return v.Type, nil
}

// SetOutput redirects the output of print statements to w.
func (p *Program) SetOutput(w io.Writer) {
	p.out = w
}

func (p *Program) Append(st Statement) {
	p.stmts = append(p.stmts, st)
}

func (p *Program) Len() int {
	return len(p.stmts)
}

func (p *Program) Statements() []Statement {
	return p.stmts
}

func (p *Program) Vars() *vars.Store {
	return p.vars
}

// Checkpoint records the current statements and declarations so that a
// failed parse can be undone with Restore.
type Checkpoint struct {
	stmts, vars int
}

func (p *Program) Checkpoint() Checkpoint {
	return Checkpoint{len(p.stmts), p.vars.Mark()}
}

func (p *Program) Restore(c Checkpoint) {
	clear(p.stmts[c.stmts:])
	p.stmts = p.stmts[:c.stmts]
	p.vars.Rollback(c.vars)
}

// Run resets every variable and executes the whole program.  The first
// runtime error stops execution and is returned.
func (p *Program) Run() error {
	p.vars.Reset()
	return p.RunFrom(0)
}

// RunFrom executes the statements from index i onwards without resetting
// any variable.
func (p *Program) RunFrom(i int) error {
	for _, st := range p.stmts[i:] {
		if err := p.exec(st); err != nil {
			return err
		}
	}
	return nil
}
