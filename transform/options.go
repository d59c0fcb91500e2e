package transform

import (
	"io"
	"log/slog"
)

// Option configures ExpandGenerics.
type Option func(*options)

type options struct {
	logger         *slog.Logger
	queryBehaviors QueryBehaviors
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		queryBehaviors: DefaultQueryBehaviors(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger used to report produced types.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithQueryBehaviors replaces the set of behaviors whose properties are
// merged into request query parameters.
func WithQueryBehaviors(qb QueryBehaviors) Option {
	return func(o *options) {
		o.queryBehaviors = qb
	}
}
