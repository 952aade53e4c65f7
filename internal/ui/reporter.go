package ui

import (
	"fmt"
	"io"
)

// ConsoleReporter prints human-readable progress to a writer. It is a pure
// side-effect sink: components call it but nothing reads it back.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a reporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	if out == nil {
		panic("out is required")
	}
	return &ConsoleReporter{out: out}
}

// Progress prints one progress line.
func (r *ConsoleReporter) Progress(message string) {
	fmt.Fprintln(r.out, ProgressStyle.Render("• "+message))
}

// Warn prints one non-fatal warning line.
func (r *ConsoleReporter) Warn(message string) {
	fmt.Fprintln(r.out, WarnStyle.Render("! "+message))
}

// Error prints one fatal error line.
func (r *ConsoleReporter) Error(message string) {
	fmt.Fprintln(r.out, ErrorStyle.Render("✗ "+message))
}
