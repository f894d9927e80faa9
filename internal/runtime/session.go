package runtime

import (
	"math/big"

	"let-lang/internal/lexer"
	"let-lang/internal/parser"
	"let-lang/internal/token"
)

// Session evaluates lines of source through the full pipeline against a
// base environment. Every line starts from the base environment: a
// top-level binding lives only for the rest of its own line, never into
// later lines. Define seeds bindings that all lines can see.
type Session struct {
	env Environment
}

// NewSession creates a session with an empty base environment.
func NewSession() *Session {
	return &Session{env: NewEnvironment()}
}

// Define adds a binding to the session's base environment.
func (s *Session) Define(name string, value *big.Int) {
	s.env = s.env.Extend(name, value)
}

// Env returns the session's base environment.
func (s *Session) Env() Environment {
	return s.env
}

// EvalLine runs one line of source through tokenize, parse, and evaluate.
// It returns the value of the line's last statement, or nil for a line with
// no tokens.
func (s *Session) EvalLine(source string) (*big.Int, error) {
	l := lexer.New(source, "<input>")
	tokens, err := l.Tokenize()
	if err != nil {
		return nil, err
	}
	return EvalTokens(tokens, s.env)
}

// EvalTokens parses and evaluates each ';'-separated statement left to
// right against env and returns the last statement's value. A failed
// statement aborts the rest of the line.
func EvalTokens(tokens []token.Token, env Environment) (*big.Int, error) {
	var result *big.Int
	for len(tokens) > 0 {
		expr, consumed, err := parser.Parse(tokens)
		if err != nil {
			return nil, err
		}
		tokens = tokens[consumed:]

		result, err = Eval(expr, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
