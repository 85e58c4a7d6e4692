package vm_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"git.sr.ht/~mango/calc/ast"
	"git.sr.ht/~mango/calc/lexer"
	"git.sr.ht/~mango/calc/parser"
	"git.sr.ht/~mango/calc/vm"
	"git.sr.ht/~mango/calc/vm/vars"
)

func eval(t *testing.T, s string, env *vm.Program) (ast.Value, error) {
	t.Helper()
	e, err := parser.ParseExpr(lexer.New(s), env)
	if err != nil {
		t.Fatalf("ParseExpr(%q): unexpected error: %s", s, err)
	}
	return vm.EvalTyped(e, env.Vars())
}

var evalTests = []struct {
	input string
	want  ast.Value
}{
	{"1+2*3", ast.IntVal(7)},
	{"(1+2)*3", ast.IntVal(9)},
	{"7/2", ast.IntVal(3)},
	{"7.0/2", ast.DoubleVal(3.5)},
	{"7/2.0", ast.DoubleVal(3.5)},
	{"~(3.0/2.0)", ast.IntVal(2)},
	{"~2.5", ast.IntVal(3)},
	{"~(0.0-2.5)", ast.IntVal(-3)},
	{"~2.4999", ast.IntVal(2)},
	{"~7", ast.IntVal(7)},
	{"2^10", ast.DoubleVal(1024)},
	{"2^3^2", ast.DoubleVal(64)},
	{"(0-8)^(1/3)", ast.DoubleVal(1)},
	{"(0-2)^3", ast.DoubleVal(-8)},
	{"4^0.5", ast.DoubleVal(2)},
	{"1-2-3", ast.IntVal(-4)},
	{"0*(1/0)", ast.IntVal(0)},
	{"0.0*(1/0)", ast.DoubleVal(0)},
	{"0*(1.0/0.0)", ast.DoubleVal(0)},
	{"(2-2)*(5/0)", ast.IntVal(0)},
	{"~(2^0.5 * 2^0.5)", ast.IntVal(2)},
	{"0-7/2", ast.IntVal(-3)},
	{"9223372036854775807+1", ast.IntVal(math.MinInt64)},
}

func TestEval(t *testing.T) {
	env := vm.NewProgram(nil)
	for _, tt := range evalTests {
		v, err := eval(t, tt.input, env)
		if err != nil {
			t.Errorf("eval(%q): unexpected error: %s", tt.input, err)
			continue
		}
		if v != tt.want {
			t.Errorf("eval(%q) = %#v, want %#v", tt.input, v, tt.want)
		}
	}
}

var evalErrorTests = []struct {
	input string
	kind  vm.RuntimeErrorKind
}{
	{"5/0", vm.ErrDivideByZero},
	{"5.0/0.0", vm.ErrDivideByZero},
	{"5/(1-1)", vm.ErrDivideByZero},
	{"5.0/(0.1-0.1)", vm.ErrDivideByZero},
	{"1*(1/0)", vm.ErrDivideByZero},
	{"(0-8)^(1.0/2)", vm.ErrNegativePow},
	{"(0-8)^0.5", vm.ErrNegativePow},
	{"~((0-1)^0.5)", vm.ErrNegativePow},
}

func TestEvalErrors(t *testing.T) {
	env := vm.NewProgram(nil)
	for _, tt := range evalErrorTests {
		_, err := eval(t, tt.input, env)
		var re *vm.RuntimeError
		if !errors.As(err, &re) || re.Kind != tt.kind {
			t.Errorf("eval(%q): expected runtime error kind %d but got %v",
				tt.input, tt.kind, err)
		}
	}
}

func TestWrongMode(t *testing.T) {
	env := vars.New()
	i := ast.NewNumber(ast.IntVal(1))
	d := ast.NewNumber(ast.DoubleVal(1))

	if _, err := vm.EvalInt(d, env); !errors.Is(err, &vm.RuntimeError{Kind: vm.ErrWrongMode}) {
		t.Fatalf("Expected a wrong mode error but got %v", err)
	}
	if _, err := vm.EvalDouble(ast.NewRound(d), env); !errors.Is(err, &vm.RuntimeError{Kind: vm.ErrWrongMode}) {
		t.Fatalf("Expected a wrong mode error but got %v", err)
	}
	if x, err := vm.EvalPromoted(ast.NewBinary(ast.Add, i, i), env); err != nil || x != 2 {
		t.Fatalf("Expected 2.0 but got %v, %v", x, err)
	}
}

func TestUninitialized(t *testing.T) {
	env := vm.NewProgram(nil)
	env.Declare("x", ast.Double)

	_, err := eval(t, "x + 1", env)
	var re *vm.RuntimeError
	if !errors.As(err, &re) || re.Kind != vm.ErrUninitialized || re.Name != "x" {
		t.Fatalf("Expected an uninitialized variable error but got %v", err)
	}
	if !strings.Contains(err.Error(), "‘x’") {
		t.Fatalf("Expected the error to name the variable but got ‘%s’", err)
	}

	// The right operand of a multiplication by zero is never read.
	if v, err := eval(t, "0.0 * x", env); err != nil || v != ast.DoubleVal(0) {
		t.Fatalf("Expected 0.00 but got %v, %v", v, err)
	}
}
