// Package ui renders polyium's terminal output: colour helpers, leveled
// status messages and interactive confirmation prompts.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const ruleWidth = 70

// UI writes status messages for a human reader.
type UI struct {
	output         io.Writer
	nonInteractive bool
}

// New returns a UI writing to stderr.
func New() *UI {
	return &UI{output: os.Stderr}
}

// NewWithWriter returns a UI writing to w.
func NewWithWriter(w io.Writer) *UI {
	return &UI{output: w}
}

// SetNonInteractive makes prompts answer with their default instead of
// asking.
func (u *UI) SetNonInteractive(enabled bool) {
	u.nonInteractive = enabled
}

// IsNonInteractive reports whether prompts are skipped.
func (u *UI) IsNonInteractive() bool {
	return u.nonInteractive
}

func (u *UI) line(style func(string) string, tag, msg string) {
	fmt.Fprintln(u.output, style(tag+" "+msg))
}

// Info prints an informational message.
func (u *UI) Info(msg string) {
	u.line(Blue, "[INFO]", msg)
}

// Infof formats and prints an informational message.
func (u *UI) Infof(format string, args ...any) {
	u.Info(fmt.Sprintf(format, args...))
}

// Success prints a success message.
func (u *UI) Success(msg string) {
	u.line(Green, "[✓]", msg)
}

// Successf formats and prints a success message.
func (u *UI) Successf(format string, args ...any) {
	u.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning.
func (u *UI) Warning(msg string) {
	u.line(Yellow, "[WARNING]", msg)
}

// Warningf formats and prints a warning.
func (u *UI) Warningf(format string, args ...any) {
	u.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (u *UI) Error(msg string) {
	u.line(Red, "[ERROR]", msg)
}

// Errorf formats and prints an error message.
func (u *UI) Errorf(format string, args ...any) {
	u.Error(fmt.Sprintf(format, args...))
}

// Header prints title between two rules.
func (u *UI) Header(title string) {
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintln(u.output)
	fmt.Fprintln(u.output, Bold(Cyan(rule)))
	fmt.Fprintln(u.output, Bold(Cyan("  "+title)))
	fmt.Fprintln(u.output, Bold(Cyan(rule)))
	fmt.Fprintln(u.output)
}

// Separator prints a thin rule.
func (u *UI) Separator() {
	fmt.Fprintln(u.output, Cyan(strings.Repeat("-", ruleWidth)))
}

// Field prints an aligned "label: value" pair.
func (u *UI) Field(label string, value any) {
	fmt.Fprintf(u.output, "  %s %v\n", Bold(fmt.Sprintf("%-22s", label+":")), value)
}

// Print prints msg without decoration.
func (u *UI) Print(msg string) {
	fmt.Fprintln(u.output, msg)
}

// Printf formats and prints a plain line.
func (u *UI) Printf(format string, args ...any) {
	fmt.Fprintf(u.output, format+"\n", args...)
}
