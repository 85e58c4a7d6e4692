// Package vars holds the typed variable table of a program.  It is kept
// apart from vm so that the parser can declare and resolve names without
// depending on the evaluator.
package vars

import (
	"errors"
	"slices"

	"git.sr.ht/~mango/calc/ast"
	"golang.org/x/exp/maps"
)

var (
	ErrRedeclared    = errors.New("variable already declared")
	ErrUndeclared    = errors.New("variable not declared")
	ErrUninitialized = errors.New("variable not initialized")
)

// Variable is a typed storage cell.  A nil val means the variable has not
// been given a value since the last reset.
type Variable struct {
	Type ast.Type
	val  ast.Value
}

// Get returns the current value of v.
func (v *Variable) Get() (ast.Value, error) {
	if v.val == nil {
		return nil, ErrUninitialized
	}
	return v.val, nil
}

// Set stores x in v, converting it to the declared type of v first.
func (v *Variable) Set(x ast.Value) {
	v.val = ast.Convert(x, v.Type)
}

func (v *Variable) Initialized() bool {
	return v.val != nil
}

type Store struct {
	table map[string]*Variable
	order []string // Declaration order, for Rollback
}

func New() *Store {
	return &Store{table: make(map[string]*Variable, 16)}
}

func (s *Store) Declare(name string, t ast.Type) (*Variable, error) {
	if _, ok := s.table[name]; ok {
		return nil, ErrRedeclared
	}
	v := &Variable{Type: t}
	s.table[name] = v
	s.order = append(s.order, name)
	return v, nil
}

func (s *Store) Lookup(name string) (*Variable, error) {
	v, ok := s.table[name]
	if !ok {
		return nil, ErrUndeclared
	}
	return v, nil
}

// Reset marks every variable as uninitialized.
func (s *Store) Reset() {
	for _, v := range s.table {
		v.val = nil
	}
}

// Mark returns a checkpoint for Rollback.
func (s *Store) Mark() int {
	return len(s.order)
}

// Rollback forgets every variable declared after mark was taken.
func (s *Store) Rollback(mark int) {
	for _, name := range s.order[mark:] {
		delete(s.table, name)
	}
	s.order = s.order[:mark]
}

func (s *Store) Len() int {
	return len(s.table)
}

// Names returns the declared names in lexical order.
func (s *Store) Names() []string {
	xs := maps.Keys(s.table)
	slices.Sort(xs)
	return xs
}
