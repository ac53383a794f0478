package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DispatchMetrics counts reminder dispatch runs and their deliveries.
type DispatchMetrics struct {
	runs   metric.Int64Counter
	sent   metric.Int64Counter
	failed metric.Int64Counter
}

func NewDispatchMetrics(meter metric.Meter) (*DispatchMetrics, error) {
	runs, err := meter.Int64Counter("reminder.dispatch.runs",
		metric.WithDescription("Reminder dispatch runs by outcome"),
	)
	if err != nil {
		return nil, err
	}

	sent, err := meter.Int64Counter("reminder.notifications.sent",
		metric.WithDescription("Reminder notifications accepted by the sink"),
	)
	if err != nil {
		return nil, err
	}

	failed, err := meter.Int64Counter("reminder.notifications.failed",
		metric.WithDescription("Reminder errors recorded during dispatch runs"),
	)
	if err != nil {
		return nil, err
	}

	return &DispatchMetrics{runs: runs, sent: sent, failed: failed}, nil
}

func (m *DispatchMetrics) RecordRun(ctx context.Context, outcome string, sent, failed int) {
	m.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	m.sent.Add(ctx, int64(sent))
	m.failed.Add(ctx, int64(failed))
}
