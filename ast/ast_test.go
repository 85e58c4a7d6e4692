package ast

import "testing"

func TestResultTypes(t *testing.T) {
	i, d := NewNumber(IntVal(7)), NewNumber(DoubleVal(2))
	tests := []struct {
		e    Expr
		want Type
	}{
		{i, Int},
		{d, Double},
		{NewVar("x", Double), Double},
		{NewBinary(Add, i, i), Int},
		{NewBinary(Sub, i, d), Double},
		{NewBinary(Mul, d, i), Double},
		{NewBinary(Div, i, i), Int},
		{NewBinary(Pow, i, i), Double},
		{NewRound(d), Int},
		{NewRound(NewBinary(Pow, i, i)), Int},
	}

	for _, tt := range tests {
		if got := ResultType(tt.e); got != tt.want {
			t.Errorf("ResultType(%s) = %s, want %s", Format(tt.e), got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	e := NewBinary(Add,
		NewNumber(IntVal(1)),
		NewBinary(Mul, NewVar("x", Int), NewRound(NewNumber(DoubleVal(2.5)))))
	want := "(1 + (x * ~2.5))"
	if s := Format(e); s != want {
		t.Fatalf("Expected ‘%s’ but got ‘%s’", want, s)
	}
	if s := Format(NewNumber(DoubleVal(3))); s != "3.0" {
		t.Fatalf("Expected ‘3.0’ but got ‘%s’", s)
	}
}

func TestConvert(t *testing.T) {
	if v := Convert(DoubleVal(-3.9), Int); v != IntVal(-3) {
		t.Fatalf("Expected truncation to -3 but got %v", v)
	}
	if v := Convert(IntVal(4), Double); v != DoubleVal(4) {
		t.Fatalf("Expected promotion to 4.0 but got %v", v)
	}
	if v := Convert(IntVal(4), Int); v != IntVal(4) {
		t.Fatalf("Expected 4 unchanged but got %v", v)
	}
}
