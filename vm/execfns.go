package vm

import (
	"fmt"
	"io"

	"git.sr.ht/~mango/calc/ast"
)

func (p *Program) exec(st Statement) error {
	switch st := st.(type) {
	case *Declare:
		if st.Init == nil {
			return nil
		}
		return p.store(st.Name, st.Init)
	case *Assign:
		return p.store(st.Name, st.Expr)
	case *Print:
		return p.print(st.Expr)
	}
	panic(fmt.Sprintf("unhandled statement: %T", st))
}

func (p *Program) store(name string, e ast.Expr) error {
	v, err := p.vars.Lookup(name)
	if err != nil {
		panic(fmt.Sprintf("assignment to undeclared variable ‘%s’", name))
	}

	x, err := EvalTyped(e, p.vars)
	if err != nil {
		return err
	}
	v.Set(x)
	return nil
}

func (p *Program) print(e ast.Expr) error {
	x, err := EvalTyped(e, p.vars)
	if err != nil {
		return err
	}
	_, err = io.WriteString(p.out, FormatValue(x)+"\n")
	return err
}

// FormatValue renders integers without a decimal point and doubles with
// exactly two decimals.
func FormatValue(x ast.Value) string {
	switch x := x.(type) {
	case ast.IntVal:
		return fmt.Sprintf("%d", int64(x))
	case ast.DoubleVal:
		return fmt.Sprintf("%.2f", float64(x))
	}
	panic(fmt.Sprintf("unhandled value: %T", x))
}
