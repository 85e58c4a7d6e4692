package stack

import "testing"

func TestTopIs(t *testing.T) {
	s := New[rune](0)
	s.Push('(')
	s.Push('+')
	s.Push('~')

	if !s.TopIs('~') {
		t.Fatalf("Expected top to be [~]")
	}
	if !s.TopIs('~', '+') {
		t.Fatalf("Expected top to be [~, +]")
	}
	if !s.TopIs('~', '+', '(') {
		t.Fatalf("Expected top to be [~, +, (]")
	}
	if s.TopIs('~', '+', '(', '^') {
		t.Fatalf("Expected stack to have len(s) == 3")
	}
	s.Pop()
	if !s.TopIs('+', '(') {
		t.Fatalf("Expected top to be [+, (]")
	}
	if s.TopIs('(') {
		t.Fatalf("Expected top not to be [(]")
	}
	s.Pop()
	s.Pop()
	if s.TopIs('(') {
		t.Fatalf("Expected an empty stack to match nothing")
	}
}
