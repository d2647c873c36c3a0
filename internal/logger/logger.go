// Package logger provides the leveled logger used by the huffpack command.
package logger

import (
	"io"
	"log"
)

// Logger writes leveled, printf-style log lines.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	out   *log.Logger
	quiet bool
}

// New returns a Logger writing to w. When quiet is set, Infof output is dropped and
// only errors are written.
func New(w io.Writer, quiet bool) Logger {
	return &stdLogger{out: log.New(w, "huffpack: ", 0), quiet: quiet}
}

// Infof logs an informational line unless the logger is quiet.
func (l *stdLogger) Infof(format string, v ...any) {
	if l.quiet {
		return
	}
	l.out.Printf("[INFO] "+format, v...)
}

// Errorf logs an error line.
func (l *stdLogger) Errorf(format string, v ...any) { l.out.Printf("[ERROR] "+format, v...) }
