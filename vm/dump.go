package vm

import (
	"fmt"
	"io"

	"github.com/kr/pretty"

	"git.sr.ht/~mango/calc/ast"
)

// FormatStatement renders st in source form with its expressions fully
// parenthesised.
func FormatStatement(st Statement) string {
	switch st := st.(type) {
	case *Declare:
		if st.Init == nil {
			return fmt.Sprintf("%s %s", st.Type, st.Name)
		}
		return fmt.Sprintf("%s %s = %s", st.Type, st.Name, ast.Format(st.Init))
	case *Assign:
		return fmt.Sprintf("%s = %s", st.Name, ast.Format(st.Expr))
	case *Print:
		return "print " + ast.Format(st.Expr)
	}
	panic(fmt.Sprintf("unhandled statement: %T", st))
}

// Dump writes the statements from index from onwards to w, each as its
// source form followed by the tree.
func (p *Program) Dump(w io.Writer, from int) {
	for i, st := range p.stmts[from:] {
		fmt.Fprintf(w, "%d: %s\n", from+i, FormatStatement(st))
		pretty.Fprintf(w, "%# v\n", st)
	}
}
