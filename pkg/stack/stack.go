// Package stack provides the small LIFO container used by the expression
// builder for its operator and operand stacks.
package stack

type Stack[T comparable] struct {
	xs []T
}

func New[T comparable](n int) Stack[T] {
	return Stack[T]{make([]T, 0, n)}
}

func (s *Stack[T]) Push(x T) {
	s.xs = append(s.xs, x)
}

// Peek returns a pointer to the top of the stack, or nil if the stack is
// empty.
func (s Stack[T]) Peek() *T {
	if len(s.xs) == 0 {
		return nil
	}
	return &s.xs[len(s.xs)-1]
}

func (s *Stack[T]) Pop() *T {
	if len(s.xs) == 0 {
		return nil
	}
	n := len(s.xs) - 1
	x := s.xs[n]
	var zero T
	s.xs[n] = zero
	s.xs = s.xs[:n]
	return &x
}

// TopIs reports whether the topmost elements of the stack are x followed by
// xs, read from the top down.
func (s Stack[T]) TopIs(x T, xs ...T) bool {
	xs = append([]T{x}, xs...)
	if len(s.xs) < len(xs) {
		return false
	}
	for i := range xs {
		if xs[i] != s.xs[len(s.xs)-i-1] {
			return false
		}
	}
	return true
}

func (s Stack[T]) Len() int    { return len(s.xs) }
func (s Stack[T]) Empty() bool { return len(s.xs) == 0 }

// Clear drops every element while keeping the backing array, zeroing the
// slots so nothing stays reachable through it.
func (s *Stack[T]) Clear() {
	clear(s.xs)
	s.xs = s.xs[:0]
}
