// Package token defines the token types produced by the lexer.
package token

import (
	"fmt"
	"math/big"

	"let-lang/internal/span"
)

// Kind represents the type of a token.
type Kind int

const (
	ILLEGAL Kind = iota

	// Literals
	INT   // integer literals, sign already resolved: 123, -5
	IDENT // identifiers: x, foo, my_var

	// Operators
	PLUS   // +
	MINUS  // -
	STAR   // *
	SLASH  // /
	ASSIGN // =

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;
)

var kindNames = map[Kind]string{
	ILLEGAL: "ILLEGAL",

	INT:   "INT",
	IDENT: "IDENT",

	PLUS:   "+",
	MINUS:  "-",
	STAR:   "*",
	SLASH:  "/",
	ASSIGN: "=",

	LPAREN:    "(",
	RPAREN:    ")",
	SEMICOLON: ";",
}

// String returns the human-readable name for a token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// EndsOperand returns true if the kind can close an operand: an integer
// literal, an identifier, or a close parenthesis. A '-' read immediately
// after such a token is binary subtraction; after anything else (or at the
// start of input) it is a sign.
func (k Kind) EndsOperand() bool {
	return k == INT || k == IDENT || k == RPAREN
}

// Token represents a lexical token with its kind, text, and source location.
// Value is set only for INT tokens and carries the literal's value with any
// folded sign applied.
type Token struct {
	Kind   Kind
	Lexeme string
	Value  *big.Int
	Span   span.Span
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	if t.Kind == INT {
		return fmt.Sprintf("%s %s %s", t.Kind, t.Value, t.Span.Start)
	}
	return fmt.Sprintf("%s %q %s", t.Kind, t.Lexeme, t.Span.Start)
}
