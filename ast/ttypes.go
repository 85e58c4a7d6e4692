package ast

// Type is the static result type of an expression or a variable.
type Type int

const (
	Int Type = iota
	Double
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Double:
		return "double"
	}
	panic("unreachable")
}

// join is the promotion rule for the arithmetic operators: Int iff both
// sides are Int.
func join(l, r Type) Type {
	if l == Int && r == Int {
		return Int
	}
	return Double
}
