package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Logger struct {
	Level  int
	writer io.Writer
}

// NewLogger creates a new logger with a log level, writing to stderr so
// report output on stdout stays pipeable.
func NewLogger(level int) *Logger {
	return &Logger{
		Level:  level,
		writer: os.Stderr,
	}
}

// SetOutput redirects the logger to another writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.writer = w
}

func (l *Logger) helper(format string, a []interface{}, msgColor *color.Color) {
	msg := fmt.Sprintf(format, a...)
	if msgColor != nil {
		msg = msgColor.Sprintf(format, a...)
	}
	fmt.Fprintln(l.writer, msg)
}

func (l *Logger) Debug(format string, a ...interface{}) {
	if l.Level >= 3 {
		l.helper(format, a, nil)
	}
}

func (l *Logger) Info(format string, a ...interface{}) {
	if l.Level >= 2 {
		l.helper(format, a, nil)
	}
}

func (l *Logger) Warning(format string, a ...interface{}) {
	if l.Level >= 1 {
		l.helper(format, a, color.New(color.FgHiYellow))
	}
}

// Error prints an error message in red and bold font, regardless of log level
func (l *Logger) Error(format string, a ...interface{}) {
	l.helper(format, a, color.New(color.FgHiRed, color.Bold))
}

// Fatal prints an error message in red and bold font, then exits
func (l *Logger) Fatal(format string, a ...interface{}) {
	l.Error(format, a...)
	os.Exit(1)
}
