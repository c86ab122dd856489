package enums

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// tableMetrics holds the OpenTelemetry instruments of one table.
// A nil *tableMetrics records nothing.
type tableMetrics struct {
	builds metric.Int64Counter
	misses metric.Int64Counter
	attrs  metric.MeasurementOption
}

// newTableMetrics creates the instruments for a table. It returns nil when no
// meter is configured. Instrument errors are logged, not returned, so a
// broken meter never prevents a table from being declared.
func newTableMetrics(meter metric.Meter, logger *slog.Logger, typeName string) *tableMetrics {
	if meter == nil {
		return nil
	}

	builds, err := meter.Int64Counter(
		"enums.index.builds",
		metric.WithDescription("Number of sorted name indexes built"),
		metric.WithUnit("1"),
	)
	if err != nil {
		logger.Warn("failed to create enum metric", "metric", "enums.index.builds", "error", err)
		return nil
	}

	misses, err := meter.Int64Counter(
		"enums.lookup.misses",
		metric.WithDescription("Number of reverse lookups for names that are not registered"),
		metric.WithUnit("1"),
	)
	if err != nil {
		logger.Warn("failed to create enum metric", "metric", "enums.lookup.misses", "error", err)
		return nil
	}

	return &tableMetrics{
		builds: builds,
		misses: misses,
		attrs:  metric.WithAttributes(attribute.String("enum.type", typeName)),
	}
}

func (m *tableMetrics) recordBuild(ctx context.Context) {
	if m == nil {
		return
	}
	m.builds.Add(ctx, 1, m.attrs)
}

func (m *tableMetrics) recordMiss(ctx context.Context) {
	if m == nil {
		return
	}
	m.misses.Add(ctx, 1, m.attrs)
}
