package pendingqueue

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// DefaultMaxBlockingTime is the ceiling Poll blocks for when no explicit
// value is configured.
const DefaultMaxBlockingTime = time.Second

type config struct {
	maxBlockingTime time.Duration
	logger          *slog.Logger
	meter           metric.Meter
}

func defaultConfig() config {
	return config{
		maxBlockingTime: DefaultMaxBlockingTime,
		logger:          slog.Default(),
	}
}

// Option configures a ListenableQueue at construction time.
type Option func(*config)

// WithMaxBlockingTime sets the maximum time a Poll call blocks waiting for
// an element. The value is read once at construction and constant for the
// queue's lifetime. Non-positive values fall back to DefaultMaxBlockingTime.
func WithMaxBlockingTime(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.maxBlockingTime = d
		}
	}
}

// WithLogger sets the logger that receives the informational record when a
// blocked Poll is cancelled. Defaults to slog.Default(). No other logging
// occurs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMeter sets the OTel meter used for queue instrumentation. By default
// instruments come from the global MeterProvider and are noop until one is
// installed. This variant allows injecting a specific meter for testing.
func WithMeter(meter metric.Meter) Option {
	return func(c *config) {
		c.meter = meter
	}
}
