// Package logging provides the colored, prefixed logger the services write
// to. Each component gets its own prefix color so interleaved lines stay
// readable on one terminal.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log"
)

const (
	infoColor    = "\033[32m"
	warningColor = "\033[33m"
	errorColor   = "\033[31m"
	colorReset   = "\033[0m"
)

// Logger writes leveled lines behind a colored component prefix.
type Logger struct {
	base *log.Logger
}

// New creates a logger whose lines carry the given component prefix in the
// given ANSI color sequence.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logging: prefix is required")
	}
	if out == nil {
		return nil, errors.New("logging: output writer is required")
	}

	tag := fmt.Sprintf("%s[%s]%s ", color, prefix, colorReset)
	return &Logger{base: log.New(out, tag, log.LstdFlags)}, nil
}

// NewNop returns a logger that discards everything. Handy in tests.
func NewNop() *Logger {
	l, _ := New("NOP", "", io.Discard)
	return l
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.base.Printf("%s[INFO]%s %s", infoColor, colorReset, msg)
}

// Warning logs a condition worth attention that did not stop anything.
func (l *Logger) Warning(msg string) {
	l.base.Printf("%s[WARNING]%s %s", warningColor, colorReset, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.base.Printf("%s[ERROR]%s %s", errorColor, colorReset, msg)
}
