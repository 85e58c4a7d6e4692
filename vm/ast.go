package vm

import "git.sr.ht/~mango/calc/ast"

// Statement is one step of a program.  Each statement owns its expression.
type Statement interface {
	isStatement()
}

// Declare creates a variable.  The variable itself is added to the program
// when the statement is parsed; running the statement only evaluates Init,
// if there is one.
type Declare struct {
	Name string
	Type ast.Type
	Init ast.Expr
}

// Assign stores the value of Expr in an existing variable.
type Assign struct {
	Name string
	Expr ast.Expr
}

// Print writes the value of Expr followed by a newline.
type Print struct {
	Expr ast.Expr
}

func (_ *Declare) isStatement() {}
func (_ *Assign) isStatement()  {}
func (_ *Print) isStatement()   {}
