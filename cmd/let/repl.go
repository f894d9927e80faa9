package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"let-lang/internal/runtime"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// cmdRepl starts the interactive loop. When stdin is not a terminal the
// input is treated as a piped script and read without prompts.
func cmdRepl() {
	session := runtime.NewSession()

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		replPipe(session)
		return
	}

	// History file path (~/.let_history)
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".let_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            paint(colorGreen, "let> ", stdoutTTY),
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init failed: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	// Welcome banner
	fmt.Fprintf(rl.Stdout(), "%s %s\n\n",
		paint(colorBold+colorCyan, "let-lang REPL", stdoutTTY),
		paint(colorGray, "(type 'exit' or Ctrl+D to quit)", stdoutTTY))

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Fprintf(rl.Stdout(), "%s\n", paint(colorGray, "(use 'exit' or Ctrl+D to quit)", stdoutTTY))
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			break
		}

		if strings.TrimSpace(line) == "exit" {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		result, err := session.EvalLine(line)
		if err != nil {
			fmt.Fprintln(rl.Stderr(), paint(colorRed, err.Error(), stderrTTY))
			continue
		}
		if result != nil {
			fmt.Fprintln(rl.Stdout(), result)
		}
	}
}

// replPipe evaluates stdin line by line without prompts or colors.
// Errors are reported per line; later lines still run, since each line is
// independent.
func replPipe(session *runtime.Session) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		result, err := session.EvalLine(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if result != nil {
			fmt.Println(result)
		}
	}
}
