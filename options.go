package ltimer

import (
	"time"
)

// defaultTickDuration is the real time one wheel tick stands for.
const defaultTickDuration = 10 * time.Millisecond

// Options is common options
type Options struct {
	Handler      Handler
	Logger       Logger
	TickDuration time.Duration
}

// NewOptions creates options with defaults.
func NewOptions(opts ...Option) Options {
	var options = Options{
		Handler:      defaultHandler,
		Logger:       silentLogger,
		TickDuration: defaultTickDuration,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return options
}

// Option is for setting options.
type Option func(*Options)

// WithHandler sets handler. A nil handler is ignored.
func WithHandler(handler Handler) Option {
	return func(o *Options) {
		if handler != nil {
			o.Handler = handler
		}
	}
}

// WithLogger sets logger. A nil logger is ignored.
func WithLogger(logger Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithTickDuration sets tick duration, must be greater than 0.
// If not, it will be ignored.
func WithTickDuration(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.TickDuration = d
		}
	}
}
