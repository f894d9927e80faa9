// Package runtime implements the tree-walking evaluator for let-lang.
package runtime

import (
	"fmt"
	"math/big"

	"let-lang/internal/ast"
	"let-lang/internal/span"
)

// RuntimeError represents an error during evaluation.
type RuntimeError struct {
	Code    string
	Message string
	Span    span.Span
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[%s] runtime error at %d:%d: %s", e.Code, e.Span.Start.Line, e.Span.Start.Column, e.Message)
}

func runtimeErr(code string, s span.Span, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Code: code, Message: fmt.Sprintf(format, args...), Span: s}
}

// Eval evaluates an expression against an environment and returns its
// integer value. The environment is never mutated; an Assign extends it
// functionally for the duration of its body only.
func Eval(expr ast.Expr, env Environment) (*big.Int, error) {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		return e.Value, nil

	case *ast.VarRef:
		value, ok := env.Get(e.Name)
		if !ok {
			return nil, runtimeErr("E3001", e.Span, "unbound variable '%s'", e.Name)
		}
		return value, nil

	case *ast.Assign:
		value, err := Eval(e.Value, env)
		if err != nil {
			return nil, err
		}
		return Eval(e.Body, env.Extend(e.Name, value))

	case *ast.Sum:
		left, right, err := evalPair(e.Left, e.Right, env)
		if err != nil {
			return nil, err
		}
		return new(big.Int).Add(left, right), nil

	case *ast.Difference:
		left, right, err := evalPair(e.Left, e.Right, env)
		if err != nil {
			return nil, err
		}
		return new(big.Int).Sub(left, right), nil

	case *ast.Product:
		left, right, err := evalPair(e.Left, e.Right, env)
		if err != nil {
			return nil, err
		}
		return new(big.Int).Mul(left, right), nil

	case *ast.Quotient:
		left, right, err := evalPair(e.Left, e.Right, env)
		if err != nil {
			return nil, err
		}
		if right.Sign() == 0 {
			return nil, runtimeErr("E3002", e.Span, "division by zero")
		}
		return floorDiv(left, right), nil

	case *ast.Negation:
		value, err := Eval(e.Operand, env)
		if err != nil {
			return nil, err
		}
		return new(big.Int).Neg(value), nil

	default:
		return nil, runtimeErr("E3000", expr.GetSpan(), "unknown expression type %T", expr)
	}
}

// evalPair evaluates the left operand first, then the right.
func evalPair(left, right ast.Expr, env Environment) (*big.Int, *big.Int, error) {
	l, err := Eval(left, env)
	if err != nil {
		return nil, nil, err
	}
	r, err := Eval(right, env)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

// floorDiv returns x/y rounded toward negative infinity, so -7/2 = -4.
// big.Int's Quo truncates toward zero; adjust when the remainder and the
// divisor disagree in sign.
func floorDiv(x, y *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (y.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}
