package main

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-medication-remind/internal/config"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/notify"
)

// initSink returns a nil sink when the selected driver has no credential;
// the dispatcher then reports the missing configuration on every run.
func initSink(ctx context.Context, cfg config.NotifyConfig) (notify.Sink, error) {
	if !cfg.HasCredential() {
		slog.Warn("notification credential not set, reminder delivery disabled",
			"driver", cfg.Driver,
		)

		return nil, nil //nolint:nilnil
	}

	if cfg.Driver == config.NotifyDriverFCM {
		sink, err := notify.NewFCMSink(ctx, notify.FCMSinkConfig{
			ServiceAccountKey: cfg.FirebaseServiceAccountKey,
		})
		if err != nil {
			return nil, err
		}

		slog.Info("FCM notification sink initialized")

		return sink, nil
	}

	return initPublisherSink(ctx, cfg)
}
