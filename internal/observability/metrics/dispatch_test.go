package metrics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/KasumiMercury/primind-medication-remind/internal/observability/metrics"
)

func sumOf(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}

			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)

			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}

			return total
		}
	}

	return 0
}

func TestDispatchMetricsRecordRun(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	dm, err := metrics.NewDispatchMetrics(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	dm.RecordRun(ctx, "succeeded", 3, 0)
	dm.RecordRun(ctx, "partial", 1, 2)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	assert.Equal(t, int64(2), sumOf(t, rm, "reminder.dispatch.runs"))
	assert.Equal(t, int64(4), sumOf(t, rm, "reminder.notifications.sent"))
	assert.Equal(t, int64(2), sumOf(t, rm, "reminder.notifications.failed"))
}

func TestHTTPMetricsRecord(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	hm, err := metrics.NewHTTPMetrics(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	hm.Record(ctx, "GET", "/api/v1/medications", 200, 0)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	assert.Equal(t, int64(1), sumOf(t, rm, "http.server.requests"))
}
