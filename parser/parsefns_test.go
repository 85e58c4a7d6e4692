package parser

import (
	"errors"
	"testing"

	"git.sr.ht/~mango/calc/ast"
	"git.sr.ht/~mango/calc/lexer"
	"git.sr.ht/~mango/calc/vm"
)

func TestParseStatements(t *testing.T) {
	s := `int a = 7
	double b; b = a / 2.0
	print ~b

	print a * b;`

	prog, err := Parse(lexer.New(s))
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	xs := prog.Statements()
	if len(xs) != 5 {
		t.Fatalf("Expected 5 statements but got %d", len(xs))
	}
	if d, ok := xs[0].(*vm.Declare); !ok || d.Name != "a" || d.Type != ast.Int ||
		d.Init == nil {
		t.Errorf("Expected ‘int a = 7’ but got %#v", xs[0])
	}
	if d, ok := xs[1].(*vm.Declare); !ok || d.Name != "b" || d.Type != ast.Double ||
		d.Init != nil {
		t.Errorf("Expected ‘double b’ but got %#v", xs[1])
	}
	if a, ok := xs[2].(*vm.Assign); !ok || ast.Format(a.Expr) != "(a / 2.0)" {
		t.Errorf("Expected ‘b = a / 2.0’ but got %#v", xs[2])
	}
	if p, ok := xs[3].(*vm.Print); !ok || ast.ResultType(p.Expr) != ast.Int {
		t.Errorf("Expected an integer print but got %#v", xs[3])
	}
	if p, ok := xs[4].(*vm.Print); !ok || ast.ResultType(p.Expr) != ast.Double {
		t.Errorf("Expected a double print but got %#v", xs[4])
	}
}

func TestSelfReference(t *testing.T) {
	prog, err := Parse(lexer.New("int x = x + 1"))
	if err != nil {
		t.Fatalf("Expected a declared variable to be usable in its own "+
			"initializer but got %s", err)
	}
	if prog.Len() != 1 {
		t.Fatalf("Expected 1 statement but got %d", prog.Len())
	}
}

var programErrorTests = []struct {
	input string
	kind  CompileErrorKind
	pos   lexer.Pos
}{
	{"int x\ndouble x", ErrRedeclared, lexer.Pos{Line: 2, Col: 8}},
	{"y = 1", ErrUndefined, lexer.Pos{Line: 1, Col: 1}},
	{"print y", ErrUndefined, lexer.Pos{Line: 1, Col: 7}},
	{"int x\nx = ", ErrEmptyExpr, lexer.Pos{Line: 2, Col: 3}},
	{"int x =;", ErrEmptyExpr, lexer.Pos{Line: 1, Col: 7}},
	{"print\n", ErrEmptyExpr, lexer.Pos{Line: 1, Col: 1}},
	{"int 3", ErrUnexpected, lexer.Pos{Line: 1, Col: 5}},
	{"int x 3", ErrUnexpected, lexer.Pos{Line: 1, Col: 7}},
	{"int x\nx 3", ErrUnexpected, lexer.Pos{Line: 2, Col: 3}},
	{"print 1 print 2", ErrUnexpected, lexer.Pos{Line: 1, Col: 9}},
	{"int x = 1 = 2", ErrUnexpected, lexer.Pos{Line: 1, Col: 11}},
	{"int int", ErrUnexpected, lexer.Pos{Line: 1, Col: 5}},
	{"3 + 4", ErrUnexpected, lexer.Pos{Line: 1, Col: 1}},
	{"= 4", ErrUnexpected, lexer.Pos{Line: 1, Col: 1}},
	{"print 1\n@", ErrInvalidLexeme, lexer.Pos{Line: 2, Col: 1}},
	{"int x @", ErrInvalidLexeme, lexer.Pos{Line: 1, Col: 7}},
	{"print (1 + 2", ErrUnmatchedLParen, lexer.Pos{Line: 1, Col: 13}},
	{"print 1 + 2)\nprint 3", ErrUnmatchedRParen, lexer.Pos{Line: 1, Col: 12}},
}

func TestParseErrors(t *testing.T) {
	for _, tt := range programErrorTests {
		prog, err := Parse(lexer.New(tt.input))
		if prog != nil {
			t.Errorf("Parse(%q) returned a program despite the error", tt.input)
		}

		var ce *CompileError
		if !errors.As(err, &ce) {
			t.Errorf("Parse(%q): expected a compile error but got %v",
				tt.input, err)
			continue
		}
		if ce.Kind != tt.kind || ce.Pos() != tt.pos {
			t.Errorf("Parse(%q): unexpected error: %s", tt.input, err)
			t.Errorf("Parse(%q): expected kind %d at %s", tt.input, tt.kind, tt.pos)
		}
	}
}

func TestParseIntoRollsBack(t *testing.T) {
	prog := vm.NewProgram(nil)
	if err := ParseInto(prog, lexer.New("int a = 1; print a")); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	err := ParseInto(prog, lexer.New("int b = 2; print a +"))
	if !errors.Is(err, &CompileError{Kind: ErrMissingOperand}) {
		t.Fatalf("Expected a missing operand error but got %v", err)
	}
	if prog.Len() != 2 {
		t.Fatalf("Expected 2 statements after a rollback but got %d", prog.Len())
	}
	if _, err := prog.Lookup("b"); err == nil {
		t.Fatalf("Expected ‘b’ to be undeclared after a rollback")
	}

	if err := ParseInto(prog, lexer.New("int b = a")); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if prog.Len() != 3 {
		t.Fatalf("Expected 3 statements but got %d", prog.Len())
	}
}
