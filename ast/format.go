package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders e in infix notation with every operation parenthesised, so
// the grouping chosen by the parser is visible.
func Format(e Expr) string {
	var sb strings.Builder
	format(&sb, e)
	return sb.String()
}

func format(sb *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *Number:
		switch v := e.Val.(type) {
		case IntVal:
			sb.WriteString(strconv.FormatInt(int64(v), 10))
		case DoubleVal:
			s := strconv.FormatFloat(float64(v), 'f', -1, 64)
			if !strings.Contains(s, ".") {
				s += ".0"
			}
			sb.WriteString(s)
		}
	case *Var:
		sb.WriteString(e.Name)
	case *Binary:
		sb.WriteByte('(')
		format(sb, e.Lhs)
		sb.WriteString(" " + e.Op.String() + " ")
		format(sb, e.Rhs)
		sb.WriteByte(')')
	case *Round:
		sb.WriteByte('~')
		format(sb, e.Operand)
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}
