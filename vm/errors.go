package vm

import (
	"fmt"

	"git.sr.ht/~mango/calc/ast"
)

type RuntimeErrorKind int

const (
	ErrDivideByZero RuntimeErrorKind = iota
	ErrNegativePow
	ErrUninitialized
	ErrWrongMode
)

// RuntimeError is an error detected while a program runs.  Only the fields
// relevant to Kind are set.
type RuntimeError struct {
	Kind      RuntimeErrorKind
	Name      string   // Variable read before initialization
	Want, Got ast.Type // Requested and actual mode of an expression
	Base, Exp float64  // Operands of a failed power
}

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case ErrDivideByZero:
		return "Divided by zero"
	case ErrNegativePow:
		return fmt.Sprintf("Cannot calculate non-integer power %g of negative value %g",
			e.Exp, e.Base)
	case ErrUninitialized:
		return fmt.Sprintf("Variable ‘%s’ used before being initialized", e.Name)
	case ErrWrongMode:
		return fmt.Sprintf("Cannot evaluate %s expression as %s", e.Got, e.Want)
	}
	panic("unreachable")
}

// Is makes errors.Is match any RuntimeError of the same kind.
func (e *RuntimeError) Is(target error) bool {
	t, ok := target.(*RuntimeError)
	return ok && t.Kind == e.Kind
}
