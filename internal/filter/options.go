package filter

import (
	"io"
	"log/slog"
)

type options struct {
	logger *slog.Logger
}

var defaultOptions = options{
	logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
}

type Option func(*options)

// WithLogger reports every insert at debug level and each completed
// populate at info level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
