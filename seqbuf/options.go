package seqbuf

import "go.uber.org/zap"

// Settings hold the per-buffer configuration fixed at construction.
type Settings struct {
	Limits Limits
	Logger *zap.Logger
}

// Option configures a buffer at construction.
type Option func(*Settings)

// WithLimits overrides the growth limits. Non-positive fields keep the
// platform defaults.
func WithLimits(l Limits) Option {
	return func(s *Settings) {
		s.Limits = l.normalize()
	}
}

// WithLogger sets the diagnostic logger. A nil logger disables diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Settings) {
		if l == nil {
			l = zap.NewNop()
		}

		s.Logger = l
	}
}

// NewSettings applies opts on top of the defaults.
func NewSettings(opts ...Option) Settings {
	s := Settings{
		Limits: DefaultLimits(),
		Logger: Logger(),
	}

	for _, opt := range opts {
		opt(&s)
	}

	return s
}
