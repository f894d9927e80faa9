// Package ast defines the abstract syntax tree for let-lang.
//
// The expression vocabulary is a closed variant set; every consumer
// dispatches with an exhaustive type switch so that adding a variant forces
// an audit of all match sites.
package ast

import (
	"math/big"

	"let-lang/internal/span"
)

// Expr is the interface implemented by all expression nodes.
type Expr interface {
	exprNode()
	GetSpan() span.Span
}

// ExprBase provides the common span field for all expression nodes.
type ExprBase struct {
	Span span.Span
}

func (e ExprBase) exprNode()          {}
func (e ExprBase) GetSpan() span.Span { return e.Span }

// IntLiteral represents an integer literal. The sign is already resolved by
// the lexer, so Value may be negative.
type IntLiteral struct {
	ExprBase
	Value *big.Int
}

// VarRef represents a variable reference.
type VarRef struct {
	ExprBase
	Name string
}

// Assign represents a let-style binding: name = value ; body.
// The binding is visible only while Body evaluates.
type Assign struct {
	ExprBase
	Name  string
	Value Expr
	Body  Expr
}

// Sum represents addition: left + right.
type Sum struct {
	ExprBase
	Left  Expr
	Right Expr
}

// Difference represents subtraction: left - right.
type Difference struct {
	ExprBase
	Left  Expr
	Right Expr
}

// Product represents multiplication: left * right.
type Product struct {
	ExprBase
	Left  Expr
	Right Expr
}

// Quotient represents floor division: left / right.
type Quotient struct {
	ExprBase
	Left  Expr
	Right Expr
}

// Negation represents arithmetic negation of a sub-expression. The parser
// never produces it (unary minus is resolved during tokenization); it is
// part of the vocabulary the evaluator supports.
type Negation struct {
	ExprBase
	Operand Expr
}
