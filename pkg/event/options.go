package event

import "log/slog"

const defaultName = "event"

// Option configures a broadcaster created with one of the constructors.
type Option func(*options)

type options struct {
	name   string
	logger *slog.Logger
}

// WithName sets the name attached to log records. Empty names are ignored.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger enables debug records for subscription changes and deliveries.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
