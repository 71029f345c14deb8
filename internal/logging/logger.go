// Package logging writes leveled diagnostics to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Logger writes diagnostics. The zero value is not usable; use New.
type Logger struct {
	out   io.Writer
	debug bool
}

// New creates a logger writing to stderr
func New(debug bool) *Logger {
	return NewWithWriter(os.Stderr, debug)
}

// NewWithWriter creates a logger writing to w
func NewWithWriter(w io.Writer, debug bool) *Logger {
	return &Logger{out: w, debug: debug}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewWithWriter(io.Discard, false)
}

// SetDebug toggles debug output
func (l *Logger) SetDebug(debug bool) {
	l.debug = debug
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.write(infoStyle.Render("✓"), format, args...)
}

// Warn logs a warning
func (l *Logger) Warn(format string, args ...interface{}) {
	l.write(warnStyle.Render("⚠"), format, args...)
}

// Error logs an error
func (l *Logger) Error(format string, args ...interface{}) {
	l.write(errorStyle.Render("✗"), format, args...)
}

// Debug logs only when debug is enabled
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	l.write(debugStyle.Render("[DEBUG]"), format, args...)
}

func (l *Logger) write(prefix, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "%s %s\n", prefix, msg)
}

// CommandLine renders argv for debug output, quoting arguments with spaces
func CommandLine(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
