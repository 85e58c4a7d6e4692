package vm

import (
	"errors"
	"fmt"
	"math"

	"git.sr.ht/~mango/calc/ast"
	"git.sr.ht/~mango/calc/vm/vars"
)

// Machine epsilon; doubles closer than this to zero count as zero.
const eps = 0x1p-52

func isZero(x float64) bool {
	return x < eps && x > -eps
}

// Env resolves variable references while an expression is evaluated.
type Env interface {
	Lookup(name string) (*vars.Variable, error)
}

// EvalTyped evaluates e in the mode matching its result type.
func EvalTyped(e ast.Expr, env Env) (ast.Value, error) {
	switch ast.ResultType(e) {
	case ast.Int:
		n, err := evalInt(e, env)
		if err != nil {
			return nil, err
		}
		return ast.IntVal(n), nil
	case ast.Double:
		x, err := evalDouble(e, env)
		if err != nil {
			return nil, err
		}
		return ast.DoubleVal(x), nil
	}
	panic("unreachable")
}

// EvalPromoted evaluates e and widens an integer result to a double.
func EvalPromoted(e ast.Expr, env Env) (float64, error) {
	if ast.ResultType(e) == ast.Int {
		n, err := evalInt(e, env)
		return float64(n), err
	}
	return evalDouble(e, env)
}

// EvalInt evaluates e, which must be of type Int.
func EvalInt(e ast.Expr, env Env) (int64, error) {
	if t := ast.ResultType(e); t != ast.Int {
		return 0, &RuntimeError{Kind: ErrWrongMode, Want: ast.Int, Got: t}
	}
	return evalInt(e, env)
}

// EvalDouble evaluates e, which must be of type Double.
func EvalDouble(e ast.Expr, env Env) (float64, error) {
	if t := ast.ResultType(e); t != ast.Double {
		return 0, &RuntimeError{Kind: ErrWrongMode, Want: ast.Double, Got: t}
	}
	return evalDouble(e, env)
}

func evalInt(e ast.Expr, env Env) (int64, error) {
	switch e := e.(type) {
	case *ast.Number:
		if n, ok := e.Val.(ast.IntVal); ok {
			return int64(n), nil
		}
	case *ast.Var:
		v, err := load(e.Name, env)
		if err != nil {
			return 0, err
		}
		if n, ok := v.(ast.IntVal); ok {
			return int64(n), nil
		}
	case *ast.Binary:
		return evalIntBinary(e, env)
	case *ast.Round:
		if ast.ResultType(e.Operand) == ast.Int {
			return evalInt(e.Operand, env)
		}
		x, err := evalDouble(e.Operand, env)
		if err != nil {
			return 0, err
		}
		return int64(math.Round(x)), nil
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
	return 0, &RuntimeError{Kind: ErrWrongMode, Want: ast.Int, Got: ast.Double}
}

func evalIntBinary(e *ast.Binary, env Env) (int64, error) {
	l, err := EvalInt(e.Lhs, env)
	if err != nil {
		return 0, err
	}
	if e.Op == ast.Mul && l == 0 {
		return 0, nil
	}
	r, err := EvalInt(e.Rhs, env)
	if err != nil {
		return 0, err
	}

	switch e.Op {
	case ast.Add:
		return l + r, nil
	case ast.Sub:
		return l - r, nil
	case ast.Mul:
		return l * r, nil
	case ast.Div:
		if r == 0 {
			return 0, &RuntimeError{Kind: ErrDivideByZero}
		}
		return l / r, nil
	}
	return 0, &RuntimeError{Kind: ErrWrongMode, Want: ast.Int, Got: e.Typ}
}

func evalDouble(e ast.Expr, env Env) (float64, error) {
	switch e := e.(type) {
	case *ast.Number:
		if x, ok := e.Val.(ast.DoubleVal); ok {
			return float64(x), nil
		}
	case *ast.Var:
		v, err := load(e.Name, env)
		if err != nil {
			return 0, err
		}
		if x, ok := v.(ast.DoubleVal); ok {
			return float64(x), nil
		}
	case *ast.Binary:
		return evalDoubleBinary(e, env)
	case *ast.Round:
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
	return 0, &RuntimeError{Kind: ErrWrongMode, Want: ast.Double, Got: ast.Int}
}

func evalDoubleBinary(e *ast.Binary, env Env) (float64, error) {
	l, err := EvalPromoted(e.Lhs, env)
	if err != nil {
		return 0, err
	}
	if e.Op == ast.Mul && isZero(l) {
		return 0, nil
	}
	r, err := EvalPromoted(e.Rhs, env)
	if err != nil {
		return 0, err
	}

	switch e.Op {
	case ast.Add:
		return l + r, nil
	case ast.Sub:
		return l - r, nil
	case ast.Mul:
		return l * r, nil
	case ast.Div:
		if isZero(r) {
			return 0, &RuntimeError{Kind: ErrDivideByZero}
		}
		return l / r, nil
	case ast.Pow:
		if l < 0 && !isZero(r-math.Round(r)) {
			return 0, &RuntimeError{Kind: ErrNegativePow, Base: l, Exp: r}
		}
		return math.Pow(l, r), nil
	}
	panic("unreachable")
}

func load(name string, env Env) (ast.Value, error) {
	v, err := env.Lookup(name)
	if err != nil {
		// The parser only builds references to declared variables.
		panic(fmt.Sprintf("reference to undeclared variable ‘%s’", name))
	}
	x, err := v.Get()
	if errors.Is(err, vars.ErrUninitialized) {
		return nil, &RuntimeError{Kind: ErrUninitialized, Name: name}
	}
	return x, err
}
