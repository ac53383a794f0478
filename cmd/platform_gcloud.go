//go:build gcloud

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

func initPublisherSink(ctx context.Context, cfg config.NotifyConfig) (notify.Sink, error) {
	if cfg.Driver != config.NotifyDriverPubSub {
		return nil, fmt.Errorf("notify driver %q is not available in the gcloud build", cfg.Driver)
	}

	sink, err := notify.NewGCloudSink(ctx, notify.GCloudSinkConfig{
		ProjectID: cfg.GCloudProjectID,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Google Cloud Pub/Sub notification sink initialized",
		"project_id", cfg.GCloudProjectID,
	)

	return sink, nil
}

func serviceInfo() logging.ServiceInfo {
	name := os.Getenv("K_SERVICE")
	if name == "" {
		name = "medication-remind"
	}

	return logging.ServiceInfo{
		Name:     name,
		Version:  Version,
		Revision: os.Getenv("K_REVISION"),
	}
}

func environment() logging.Environment {
	if e := os.Getenv("ENV"); e != "" {
		return logging.Environment(e)
	}

	return logging.EnvProd
}

func setupLogging(cfg *config.Config) {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = cfg.Notify.GCloudProjectID
	}

	logging.Setup(os.Stdout, logging.Config{
		Level:        cfg.Log.Level,
		Service:      serviceInfo(),
		Environment:  environment(),
		GCPProjectID: projectID,
	})
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	return observability.Init(ctx, observability.Config{
		ServiceInfo: serviceInfo(),
		Environment: environment(),
	})
}
