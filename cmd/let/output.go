package main

import (
	"encoding/json"
	"fmt"
	"os"

	"let-lang/internal/token"

	"github.com/mattn/go-isatty"
)

// ---- ANSI colors ----

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

var (
	stdoutTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	stderrTTY = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
)

// paint wraps s in a color when the destination is a terminal.
func paint(color, s string, tty bool) string {
	if !tty {
		return s
	}
	return color + s + colorReset
}

// errText formats an error for display; lexer, parser, and runtime errors
// already carry their code and location.
func errText(err error) string {
	return paint(colorRed, err.Error(), stderrTTY)
}

func printErr(err error) {
	fmt.Fprintln(os.Stderr, errText(err))
}

// ---- JSON output ----

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "error: JSON encoding failed: %v\n", err)
		os.Exit(1)
	}
}

// ---- token output ----

func printTokensText(tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Printf("%-10s %-20s %d:%d\n", tok.Kind, tok.Lexeme, tok.Span.Start.Line, tok.Span.Start.Column)
	}
}

func printTokensJSON(tokens []token.Token) {
	type tokenJSON struct {
		Kind   string `json:"kind"`
		Lexeme string `json:"lexeme"`
		Value  string `json:"value,omitempty"`
		Line   int    `json:"line"`
		Column int    `json:"column"`
		Offset int    `json:"offset"`
	}

	var toks []tokenJSON
	for _, tok := range tokens {
		tj := tokenJSON{
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Line:   tok.Span.Start.Line,
			Column: tok.Span.Start.Column,
			Offset: tok.Span.Start.Offset,
		}
		if tok.Value != nil {
			tj.Value = tok.Value.String()
		}
		toks = append(toks, tj)
	}

	printJSON(map[string]interface{}{"tokens": toks})
}
