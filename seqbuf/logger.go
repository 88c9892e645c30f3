package seqbuf

import (
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the package's default diagnostic logger.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}

	return zap.NewNop()
}

// SetLogger configures the default diagnostic logger. A nil logger restores
// the no-op default. Buffers pick it up at construction; existing buffers
// keep theirs.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

// Report writes err to the diagnostic logger and returns it unchanged.
func (s Settings) Report(err error) error {
	if err == nil {
		return nil
	}

	l := s.Logger
	if l == nil {
		l = Logger()
	}

	var e *Error
	if !errors.As(err, &e) {
		l.Warn("seqbuf operation failed", zap.Error(err))
		return err
	}

	l.Warn("seqbuf operation failed",
		zap.String("op", e.Op),
		zap.Stringer("kind", e.Kind),
		zap.Int("index", e.Index),
		zap.Int("bound", e.Bound),
		zap.Error(err))

	return err
}
