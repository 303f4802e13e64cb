// Package logger implements domain.Logger using log/slog, in the teacher's own style:
// a text handler writing structured lines to stderr, with stdout/stderr streams exposed
// directly for task bodies that shell out. Colored detection uses golang.org/x/term, the
// same library the teacher's cli sibling module uses to pick its output renderer.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/kiln/internal/core/domain"
	"golang.org/x/term"
)

var _ domain.Logger = (*Logger)(nil)

// Logger implements domain.Logger over log/slog, with dedicated stdout/stderr streams
// for task bodies that stream subprocess output directly rather than through a log line.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger

	in, out, errW io.Writer
	closer        io.Closer
	colored       bool
}

// New creates a Logger writing structured lines to os.Stderr and streaming task output to
// os.Stdout/os.Stderr, with color detection based on whether os.Stdout is a terminal.
func New() *Logger {
	return newLogger(os.Stdin, os.Stdout, os.Stderr, nil, term.IsTerminal(int(os.Stdout.Fd())))
}

// NewToFile creates a Logger that writes both its structured log lines and task output
// streams to w, closing w when Close is called. Used for the `--log-file` style
// invocation where a run's entire output is captured to a single file rather than the
// controlling terminal.
func NewToFile(w io.WriteCloser) *Logger {
	return newLogger(os.Stdin, w, w, w, false)
}

func newLogger(in io.Writer, out, errW io.Writer, closer io.Closer, colored bool) *Logger {
	handler := slog.NewTextHandler(errW, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &Logger{
		logger:  slog.New(handler),
		in:      in,
		out:     out,
		errW:    errW,
		closer:  closer,
		colored: colored,
	}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(err.Error())
}

// Debug logs a debug-level message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Ticker writes a transient progress line, overwritten in place by the next Ticker or
// line-oriented call when the output stream is a terminal; on a non-terminal stream it
// degrades to a plain Info line, since there is nothing to overwrite.
func (l *Logger) Ticker(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.colored {
		l.logger.Info(msg)
		return
	}
	fmt.Fprintf(l.errW, "\r\033[K%s", msg) //nolint:errcheck // best-effort transient progress write
}

// Colored reports whether this logger's output stream supports ANSI escape sequences.
func (l *Logger) Colored() bool {
	return l.colored
}

// Close releases the underlying output file, if this Logger owns one.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// InStream returns the stream a task body may write interactive prompts to.
func (l *Logger) InStream() io.Writer { return l.in }

// OutStream returns the stream a task body's subprocess stdout is copied to.
func (l *Logger) OutStream() io.Writer { return l.out }

// ErrStream returns the stream a task body's subprocess stderr is copied to.
func (l *Logger) ErrStream() io.Writer { return l.errW }
