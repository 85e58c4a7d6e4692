package ast

import "fmt"

// Value is a computed number, either an IntVal or a DoubleVal.
type Value interface {
	isValue()
}

type IntVal int64
type DoubleVal float64

func (_ IntVal) isValue()    {}
func (_ DoubleVal) isValue() {}

// TypeOf returns the Type a Value belongs to.
func TypeOf(v Value) Type {
	switch v.(type) {
	case IntVal:
		return Int
	case DoubleVal:
		return Double
	}
	panic(fmt.Sprintf("unhandled value: %T", v))
}

// Promote widens v to a float64.
func Promote(v Value) float64 {
	switch v := v.(type) {
	case IntVal:
		return float64(v)
	case DoubleVal:
		return float64(v)
	}
	panic(fmt.Sprintf("unhandled value: %T", v))
}

// Convert returns v as a value of type t, truncating towards zero when a
// double is narrowed to an int.
func Convert(v Value, t Type) Value {
	switch t {
	case Int:
		if d, ok := v.(DoubleVal); ok {
			return IntVal(int64(d))
		}
		return v
	case Double:
		return DoubleVal(Promote(v))
	}
	panic("unreachable")
}
