// Package diag provides the diagnostic types reported by the pipeline.
//
// Codes are stable: E1xxx lexical, E2xxx syntax, E3xxx runtime.
package diag

import (
	"fmt"

	"let-lang/internal/span"
)

// Severity indicates the severity of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic represents a pipeline diagnostic message. It implements error
// so each stage can fail fast with a single diagnostic.
type Diagnostic struct {
	Code     string    `json:"code"`     // stable error code, e.g. "E1001"
	Severity Severity  `json:"severity"` // error or warning
	Message  string    `json:"message"`  // human-readable description
	Span     span.Span `json:"span"`     // source location
}

// String returns a human-readable representation of the diagnostic.
func (d *Diagnostic) String() string {
	loc := fmt.Sprintf("%d:%d", d.Span.Start.Line, d.Span.Start.Column)
	return fmt.Sprintf("[%s] %s at %s: %s", d.Code, d.Severity, loc, d.Message)
}

func (d *Diagnostic) Error() string {
	return d.String()
}

// Errorf creates an error diagnostic at the given span.
func Errorf(code string, s span.Span, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Code:     code,
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Span:     s,
	}
}
