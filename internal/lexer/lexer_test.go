package lexer

import (
	"math/big"
	"strings"
	"testing"

	"let-lang/internal/token"

	"github.com/google/go-cmp/cmp"
)

// helper: tokenize and fail the test on a lexical error
func tokenizeOK(t *testing.T, source string) []token.Token {
	t.Helper()
	l := New(source, "test.let")
	tokens, err := l.Tokenize()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	return tokens
}

func kindsOf(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestTokenizeSimple(t *testing.T) {
	tokens := tokenizeOK(t, `x = 1 + 2`)

	want := []token.Kind{
		token.IDENT, token.ASSIGN, token.INT, token.PLUS, token.INT,
	}
	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeOperators(t *testing.T) {
	tokens := tokenizeOK(t, `+ - * / =`)

	want := []token.Kind{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.ASSIGN,
	}
	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeDelimiters(t *testing.T) {
	tokens := tokenizeOK(t, `( ) ;`)

	want := []token.Kind{token.LPAREN, token.RPAREN, token.SEMICOLON}
	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestSourceOrder(t *testing.T) {
	tokens := tokenizeOK(t, "12+x*(34-5);y")

	var lexemes []string
	for _, tok := range tokens {
		lexemes = append(lexemes, tok.Lexeme)
	}
	want := []string{"12", "+", "x", "*", "(", "34", "-", "5", ")", ";", "y"}
	if diff := cmp.Diff(want, lexemes); diff != "" {
		t.Errorf("lexemes out of source order (-want +got):\n%s", diff)
	}
}

func TestWhitespaceSkipped(t *testing.T) {
	tokens := tokenizeOK(t, " \t1\n+\r\n2 ")

	want := []token.Kind{token.INT, token.PLUS, token.INT}
	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestIdentifiers(t *testing.T) {
	tokens := tokenizeOK(t, "_x y2 long_name")

	for _, tok := range tokens {
		if tok.Kind != token.IDENT {
			t.Errorf("expected IDENT, got %s (%q)", tok.Kind, tok.Lexeme)
		}
	}
	if tokens[2].Lexeme != "long_name" {
		t.Errorf("expected lexeme 'long_name', got %q", tokens[2].Lexeme)
	}
}

// ---- unary minus ----

func TestNegativeLiteralAtStart(t *testing.T) {
	tokens := tokenizeOK(t, "-5")

	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Kind != token.INT || tokens[0].Value.Cmp(big.NewInt(-5)) != 0 {
		t.Errorf("expected INT -5, got %s %s", tokens[0].Kind, tokens[0].Value)
	}
}

func TestNegativeLiteralAfterOperator(t *testing.T) {
	tokens := tokenizeOK(t, "1--5")

	want := []token.Kind{token.INT, token.MINUS, token.INT}
	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
	if tokens[2].Value.Cmp(big.NewInt(-5)) != 0 {
		t.Errorf("expected second literal -5, got %s", tokens[2].Value)
	}
}

func TestNegativeLiteralAfterOpenParenAndTerminator(t *testing.T) {
	tokens := tokenizeOK(t, "(-5);-6")

	want := []token.Kind{
		token.LPAREN, token.INT, token.RPAREN, token.SEMICOLON, token.INT,
	}
	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
	if tokens[1].Value.Cmp(big.NewInt(-5)) != 0 || tokens[4].Value.Cmp(big.NewInt(-6)) != 0 {
		t.Errorf("sign not folded: %s, %s", tokens[1].Value, tokens[4].Value)
	}
}

func TestMinusAfterOperandIsSubtraction(t *testing.T) {
	for _, source := range []string{"1-2", "x-2", "(1)-2"} {
		tokens := tokenizeOK(t, source)
		var minus, negatives int
		for _, tok := range tokens {
			if tok.Kind == token.MINUS {
				minus++
			}
			if tok.Kind == token.INT && tok.Value.Sign() < 0 {
				negatives++
			}
		}
		if minus != 1 || negatives != 0 {
			t.Errorf("%q: expected one binary minus and no negative literals, got %v", source, tokens)
		}
	}
}

func TestDesugarNegatedIdentifier(t *testing.T) {
	tokens := tokenizeOK(t, "-x")

	want := []token.Kind{token.INT, token.STAR, token.IDENT}
	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
	if tokens[0].Value.Cmp(big.NewInt(-1)) != 0 {
		t.Errorf("expected -1 literal, got %s", tokens[0].Value)
	}
	if tokens[2].Lexeme != "x" {
		t.Errorf("expected identifier 'x', got %q", tokens[2].Lexeme)
	}
}

func TestDesugarNegatedGroup(t *testing.T) {
	tokens := tokenizeOK(t, "-(1+2)")

	want := []token.Kind{
		token.INT, token.STAR, token.LPAREN,
		token.INT, token.PLUS, token.INT, token.RPAREN,
	}
	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
	if tokens[0].Value.Cmp(big.NewInt(-1)) != 0 {
		t.Errorf("expected -1 literal, got %s", tokens[0].Value)
	}
}

// ---- literals ----

func TestBigLiteral(t *testing.T) {
	tokens := tokenizeOK(t, "123456789012345678901234567890")

	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	if tokens[0].Value.Cmp(want) != 0 {
		t.Errorf("expected %s, got %s", want, tokens[0].Value)
	}
}

// ---- errors ----

func TestUnexpectedCharacter(t *testing.T) {
	l := New("1 ? 2", "test.let")
	tokens, err := l.Tokenize()
	if err == nil {
		t.Fatal("expected lex error, got nil")
	}
	if !strings.Contains(err.Error(), "unexpected character") || !strings.Contains(err.Error(), "?") {
		t.Errorf("error should name the offending character, got: %v", err)
	}
	if tokens != nil {
		t.Errorf("expected no partial token list, got %v", tokens)
	}
}

// ---- positions ----

func TestTokenPositions(t *testing.T) {
	tokens := tokenizeOK(t, "x = 10")

	if tokens[0].Span.Start.Line != 1 || tokens[0].Span.Start.Column != 1 {
		t.Errorf("'x' position: expected 1:1, got %s", tokens[0].Span.Start)
	}
	if tokens[2].Span.Start.Column != 5 {
		t.Errorf("'10' position: expected column 5, got %d", tokens[2].Span.Start.Column)
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Span.Start.Offset < tokens[i-1].Span.Start.Offset {
			t.Errorf("token offsets not increasing at %d", i)
		}
	}
}
