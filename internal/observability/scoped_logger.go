// Package observability hosts the cross-cutting logging and profiling collaborators the
// evaluator, driver, and scheduler share: a per-invocation scoped logger, and the
// Chrome Trace Event Format writer behind mill-par-profile.json.
package observability

import (
	"fmt"
	"io"

	"go.trai.ch/kiln/internal/core/domain"
)

// ScopedLogger decorates a base domain.Logger with a "[counter] label" prefix on every
// Info/Error/Debug/Ticker line, per §4.3's context-construction step. Stream accessors
// and Colored pass straight through: only line-oriented calls get the prefix. Close is a
// no-op that leaves the base logger open.
type ScopedLogger struct {
	base   domain.Logger
	prefix string
}

// NewScopedLogger builds a ScopedLogger. counterMsg is the "k/N" progress string; label
// is the terminal's rendered display segments, or "" for an anonymous terminal.
func NewScopedLogger(base domain.Logger, counterMsg, label string) *ScopedLogger {
	prefix := fmt.Sprintf("[%s]", counterMsg)
	if label != "" {
		prefix = fmt.Sprintf("[%s] %s", counterMsg, label)
	}
	return &ScopedLogger{base: base, prefix: prefix}
}

func (s *ScopedLogger) Info(msg string) {
	s.base.Info(s.prefix + " " + msg)
}

func (s *ScopedLogger) Error(err error) {
	s.base.Error(fmt.Errorf("%s %w", s.prefix, err))
}

func (s *ScopedLogger) Debug(msg string) {
	s.base.Debug(s.prefix + " " + msg)
}

func (s *ScopedLogger) Ticker(msg string) {
	s.base.Ticker(s.prefix + " " + msg)
}

func (s *ScopedLogger) Colored() bool { return s.base.Colored() }
func (s *ScopedLogger) Close() error  { return nil }

func (s *ScopedLogger) InStream() io.Writer  { return s.base.InStream() }
func (s *ScopedLogger) OutStream() io.Writer { return s.base.OutStream() }
func (s *ScopedLogger) ErrStream() io.Writer { return s.base.ErrStream() }

var _ domain.Logger = (*ScopedLogger)(nil)
