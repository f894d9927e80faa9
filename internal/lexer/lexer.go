// Package lexer implements the lexical analysis (tokenization) for let-lang.
//
// Tokens are emitted iteratively, directly in source order. Unary minus is
// resolved here: a '-' read where no operand has just ended is a sign, folded
// into the following integer literal or desugared to a multiplication by -1
// when the operand is an identifier or a parenthesized group.
package lexer

import (
	"math/big"

	"let-lang/internal/diag"
	"let-lang/internal/span"
	"let-lang/internal/token"
)

// Lexer tokenizes source text into a sequence of tokens.
type Lexer struct {
	source   string
	filename string

	pos  int // current read position in source
	line int // current line (1-based)
	col  int // current column (1-based)

	tokens []token.Token
}

// New creates a new Lexer for the given source text.
func New(source, filename string) *Lexer {
	return &Lexer{
		source:   source,
		filename: filename,
		pos:      0,
		line:     1,
		col:      1,
	}
}

// Tokenize scans the entire source and returns all tokens in source order.
// On the first unrecognized character it fails with a lexical error and no
// token list: the parser never sees partial input.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	for {
		l.skipWhitespace()
		if l.pos >= len(l.source) {
			return l.tokens, nil
		}
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
}

// ---- internal helpers ----

// peek returns the current character without advancing, or 0 if at end.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

// advance consumes the current character and returns it.
func (l *Lexer) advance() byte {
	ch := l.source[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// curPos returns the current position as a span.Position.
func (l *Lexer) curPos() span.Position {
	return span.Position{Offset: l.pos, Line: l.line, Column: l.col}
}

// makeSpan returns a span from start to the current position.
func (l *Lexer) makeSpan(start span.Position) span.Span {
	return span.Span{Start: start, End: l.curPos()}
}

// skipWhitespace skips spaces, tabs, newlines, and carriage returns.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.source) {
		ch := l.source[l.pos]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			l.advance()
		} else {
			break
		}
	}
}

// emit appends a token to the output stream.
func (l *Lexer) emit(tok token.Token) {
	l.tokens = append(l.tokens, tok)
}

// signContext reports whether a '-' at the current position acts as a sign.
// That is the case at the very start of input and right after an operator,
// an open parenthesis, or a statement terminator; after a token that ends an
// operand it is binary subtraction.
func (l *Lexer) signContext() bool {
	if len(l.tokens) == 0 {
		return true
	}
	return !l.tokens[len(l.tokens)-1].Kind.EndsOperand()
}

// ---- token scanning ----

// scanToken scans one source construct, emitting one or more tokens.
func (l *Lexer) scanToken() error {
	start := l.curPos()
	ch := l.peek()

	if ch == '-' && l.signContext() {
		return l.scanSigned(start)
	}

	if isDigit(ch) {
		l.emit(l.readNumber(start, false))
		return nil
	}
	if isIdentStart(ch) {
		l.emit(l.readIdentifier(start))
		return nil
	}

	l.advance()
	switch ch {
	case '+':
		l.emit(token.Token{Kind: token.PLUS, Lexeme: "+", Span: l.makeSpan(start)})
	case '-':
		l.emit(token.Token{Kind: token.MINUS, Lexeme: "-", Span: l.makeSpan(start)})
	case '*':
		l.emit(token.Token{Kind: token.STAR, Lexeme: "*", Span: l.makeSpan(start)})
	case '/':
		l.emit(token.Token{Kind: token.SLASH, Lexeme: "/", Span: l.makeSpan(start)})
	case '=':
		l.emit(token.Token{Kind: token.ASSIGN, Lexeme: "=", Span: l.makeSpan(start)})
	case '(':
		l.emit(token.Token{Kind: token.LPAREN, Lexeme: "(", Span: l.makeSpan(start)})
	case ')':
		l.emit(token.Token{Kind: token.RPAREN, Lexeme: ")", Span: l.makeSpan(start)})
	case ';':
		l.emit(token.Token{Kind: token.SEMICOLON, Lexeme: ";", Span: l.makeSpan(start)})
	default:
		return diag.Errorf("E1001", l.makeSpan(start), "unexpected character: %q", ch)
	}
	return nil
}

// scanSigned handles a '-' that acts as a sign. The operand must follow
// immediately:
//
//	-5      a single negative integer literal
//	-x      desugars to -1 * x
//	-(...)  desugars to -1 * (...)
//
// A sign not immediately followed by a digit, identifier, or '(' is emitted
// as the binary operator and left for the parser to reject.
func (l *Lexer) scanSigned(start span.Position) error {
	l.advance() // consume '-'
	ch := l.peek()

	if isDigit(ch) {
		l.emit(l.readNumber(start, true))
		return nil
	}

	if isIdentStart(ch) || ch == '(' {
		s := l.makeSpan(start)
		l.emit(token.Token{Kind: token.INT, Lexeme: "-1", Value: big.NewInt(-1), Span: s})
		l.emit(token.Token{Kind: token.STAR, Lexeme: "*", Span: s})
		// The identifier or '(' is scanned on the next round.
		return nil
	}

	l.emit(token.Token{Kind: token.MINUS, Lexeme: "-", Span: l.makeSpan(start)})
	return nil
}

// readNumber reads an integer literal. If negative, the leading '-' has
// already been consumed and the resulting value is negated.
func (l *Lexer) readNumber(start span.Position, negative bool) token.Token {
	numStart := l.pos
	for l.pos < len(l.source) && isDigit(l.peek()) {
		l.advance()
	}

	digits := l.source[numStart:l.pos]
	value, _ := new(big.Int).SetString(digits, 10)
	lexeme := digits
	if negative {
		value.Neg(value)
		lexeme = "-" + digits
	}
	return token.Token{Kind: token.INT, Lexeme: lexeme, Value: value, Span: l.makeSpan(start)}
}

// readIdentifier reads an identifier.
func (l *Lexer) readIdentifier(start span.Position) token.Token {
	identStart := l.pos
	for l.pos < len(l.source) && isIdentPart(l.peek()) {
		l.advance()
	}

	lexeme := l.source[identStart:l.pos]
	return token.Token{Kind: token.IDENT, Lexeme: lexeme, Span: l.makeSpan(start)}
}

// ---- character classification ----

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
