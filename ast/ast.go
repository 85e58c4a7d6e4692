// Package ast defines the typed expression tree built by the parser.  Every
// node knows its result type from the moment it is constructed; nodes are
// never modified afterwards.
package ast

import "fmt"

type Expr interface {
	isExpr()
}

// Number is a literal.  Integer literals are Int, decimal literals Double.
type Number struct {
	Val Value
}

// Var is a reference to a declared variable.  Its value is looked up when the
// expression is evaluated, its type when it is parsed.
type Var struct {
	Name string
	Typ  Type
}

// Binary is an infix arithmetic operation.
type Binary struct {
	Op       BinOp
	Lhs, Rhs Expr
	Typ      Type
}

// Round is the prefix ‘~’ operator, rounding its operand to an integer.
type Round struct {
	Operand Expr
}

func (_ *Number) isExpr() {}
func (_ *Var) isExpr()    {}
func (_ *Binary) isExpr() {}
func (_ *Round) isExpr()  {}

type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	Pow
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	}
	panic("unreachable")
}

func NewNumber(v Value) *Number {
	return &Number{Val: v}
}

func NewVar(name string, t Type) *Var {
	return &Var{Name: name, Typ: t}
}

func NewBinary(op BinOp, lhs, rhs Expr) *Binary {
	t := Double
	if op != Pow {
		t = join(ResultType(lhs), ResultType(rhs))
	}
	return &Binary{Op: op, Lhs: lhs, Rhs: rhs, Typ: t}
}

func NewRound(e Expr) *Round {
	return &Round{Operand: e}
}

// ResultType returns the type e was given when it was built.
func ResultType(e Expr) Type {
	switch e := e.(type) {
	case *Number:
		return TypeOf(e.Val)
	case *Var:
		return e.Typ
	case *Binary:
		return e.Typ
	case *Round:
		return Int
	}
	panic(fmt.Sprintf("unhandled case: %T", e))
}
