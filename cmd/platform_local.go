//go:build !gcloud

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/KasumiMercury/primind-medication-remind/internal/config"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/notify"
	"github.com/KasumiMercury/primind-medication-remind/internal/observability"
	"github.com/KasumiMercury/primind-medication-remind/internal/observability/logging"
)

const serviceName = "medication-remind"

func initPublisherSink(ctx context.Context, cfg config.NotifyConfig) (notify.Sink, error) {
	if cfg.Driver != config.NotifyDriverNATS {
		return nil, fmt.Errorf("notify driver %q requires the gcloud build", cfg.Driver)
	}

	sink, err := notify.NewNATSSink(ctx, notify.NATSSinkConfig{
		URL: cfg.NatsURL,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("NATS notification sink initialized", "url", cfg.NatsURL)

	return sink, nil
}

func setupLogging(cfg *config.Config) {
	logging.Setup(os.Stdout, logging.Config{
		Level: cfg.Log.Level,
		Service: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment: logging.EnvDev,
	})
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment: logging.EnvDev,
	})
}
