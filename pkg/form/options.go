package form

import (
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

type options struct {
	logger   *slog.Logger
	maxDepth int
}

// Option configures a Registry or an Instance.
type Option func(*options)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxDepth bounds form nesting during validation. Zero means unlimited.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth >= 0 {
			o.maxDepth = depth
		}
	}
}

func newOptions(opts ...Option) options {
	o := options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) apply() []Option {
	return []Option{WithLogger(o.logger), WithMaxDepth(o.maxDepth)}
}
