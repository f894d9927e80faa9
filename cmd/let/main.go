// Command let is the CLI entry point for the let-lang toolchain.
//
// Usage:
//
//	let tokens <file>            Print tokens
//	let tokens <file> --json     Print tokens as JSON
//	let parse  <file>            Print statement ASTs as JSON
//	let run    <file>            Evaluate a source file line by line
//	let repl                     Start interactive REPL
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"let-lang/internal/ast"
	"let-lang/internal/lexer"
	"let-lang/internal/parser"
	"let-lang/internal/runtime"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "tokens":
		source, filename := readFileArg()
		cmdTokens(source, filename, hasFlag("--json"))
	case "parse":
		source, filename := readFileArg()
		cmdParse(source, filename)
	case "run":
		source, filename := readFileArg()
		cmdRun(source, filename)
	case "repl":
		cmdRepl()
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command '%s'\n", command)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  let tokens <file> [--json]   Tokenize and print tokens")
	fmt.Fprintln(os.Stderr, "  let parse  <file>            Parse and print statement ASTs (JSON)")
	fmt.Fprintln(os.Stderr, "  let run    <file>            Evaluate a source file line by line")
	fmt.Fprintln(os.Stderr, "  let repl                     Start interactive REPL")
}

func readFileArg() (source, filename string) {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "error: missing file argument")
		os.Exit(1)
	}
	filename = os.Args[2]
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot read file %s: %v\n", filename, err)
		os.Exit(1)
	}
	return string(data), filename
}

func hasFlag(flag string) bool {
	for _, arg := range os.Args[3:] {
		if arg == flag {
			return true
		}
	}
	return false
}

// ---- tokens command ----

func cmdTokens(source, filename string, jsonMode bool) {
	l := lexer.New(source, filename)
	tokens, err := l.Tokenize()
	if err != nil {
		printErr(err)
		os.Exit(1)
	}

	if jsonMode {
		printTokensJSON(tokens)
	} else {
		printTokensText(tokens)
	}
}

// ---- parse command ----

func cmdParse(source, filename string) {
	l := lexer.New(source, filename)
	tokens, err := l.Tokenize()
	if err != nil {
		printErr(err)
		os.Exit(1)
	}

	var statements []map[string]interface{}
	for len(tokens) > 0 {
		expr, consumed, err := parser.Parse(tokens)
		if err != nil {
			printErr(err)
			os.Exit(1)
		}
		tokens = tokens[consumed:]
		statements = append(statements, ast.NodeToMap(expr))
	}

	printJSON(map[string]interface{}{"statements": statements})
}

// ---- run command ----

func cmdRun(source, filename string) {
	session := runtime.NewSession()

	scanner := bufio.NewScanner(strings.NewReader(source))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		result, err := session.EvalLine(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s:%d: %s\n", filename, lineNo, errText(err))
			os.Exit(1)
		}
		if result != nil {
			fmt.Println(result)
		}
	}
}
