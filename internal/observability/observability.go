package observability

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/KasumiMercury/primind-medication-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-medication-remind/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-remind/internal/observability/tracing"
)

type Config struct {
	ServiceInfo logging.ServiceInfo
	Environment logging.Environment
}

type Resources struct {
	Tracing *tracing.Provider
	Metrics *metrics.Provider
}

// Init installs the global tracer provider, meter provider and propagator.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	tp, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
	})
	if err != nil {
		return nil, err
	}

	mp, err := metrics.NewProvider(ctx, metrics.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
	})
	if err != nil {
		return nil, errors.Join(err, tp.Shutdown(ctx))
	}

	otel.SetTracerProvider(tp.TracerProvider())
	otel.SetMeterProvider(mp.MeterProvider())
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Resources{Tracing: tp, Metrics: mp}, nil
}

func (r *Resources) Shutdown(ctx context.Context) error {
	return errors.Join(r.Tracing.Shutdown(ctx), r.Metrics.Shutdown(ctx))
}
