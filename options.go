package enums

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Table.
type Option func(*config)

// config holds the optional collaborators of a Table.
type config struct {
	typeName string
	logger   *slog.Logger
	tracer   trace.Tracer
	meter    metric.Meter
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// WithTypeName overrides the type name used in errors, logs, telemetry and
// the Catalog. By default the Go type name of E is used (e.g. "types.Color").
func WithTypeName(name string) Option {
	return func(c *config) {
		c.typeName = name
	}
}

// WithLogger sets the logger used when the name index is built.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer. When set, the one-time name index
// build is recorded as an "enums.index.build" span.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter used to count index builds and
// reverse lookup misses.
func WithMeter(meter metric.Meter) Option {
	return func(c *config) {
		c.meter = meter
	}
}
