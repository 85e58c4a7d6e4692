package stack

import "testing"

func assertPush[T comparable](t *testing.T, s Stack[T], x T) {
	y := s.Peek()
	if y == nil || x != *y {
		t.Fatalf("Expected top of stack to be ‘%+v’ but got ‘%+v’", x, y)
	}
}

func TestPush(t *testing.T) {
	s := New[int](0)
	s.Push(1)
	assertPush(t, s, 1)
	s.Push(69)
	assertPush(t, s, 69)
	s.Push(420)
	assertPush(t, s, 420)
	if s.Len() != 3 {
		t.Fatalf("Expected len(s) == 3 but got %d", s.Len())
	}
}

func TestClear(t *testing.T) {
	s := New[rune](4)
	s.Push('(')
	s.Push('+')
	s.Clear()
	if !s.Empty() {
		t.Fatalf("Expected an empty stack but got len(s) == %d", s.Len())
	}
	if s.Peek() != nil {
		t.Fatalf("Expected Peek() on an empty stack to be nil")
	}
	s.Push('~')
	assertPush(t, s, '~')
}
