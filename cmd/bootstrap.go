package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"golang.org/x/time/rate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-medication-remind/internal/app"
	"github.com/KasumiMercury/primind-medication-remind/internal/config"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/notify"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-medication-remind/internal/observability"
	"github.com/KasumiMercury/primind-medication-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-medication-remind/internal/observability/metrics"
)

// services holds everything a command needs and releases it on close.
type services struct {
	cfg    *config.Config
	db     *gorm.DB
	obs    *observability.Resources
	sink   notify.Sink
	closed bool
}

func bootstrap(ctx context.Context) (*services, error) {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)

		return nil, err
	}

	setupLogging(cfg)

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", "error", err)

		return nil, err
	}

	db, err := initDatabase(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)

		return nil, errors.Join(err, obs.Shutdown(ctx))
	}

	return &services{cfg: cfg, db: db, obs: obs}, nil
}

func (r *services) openSink(ctx context.Context) error {
	sink, err := initSink(ctx, r.cfg.Notify)
	if err != nil {
		slog.Error("failed to initialize notification sink",
			"driver", r.cfg.Notify.Driver,
			"error", err,
		)

		return err
	}

	r.sink = sink

	return nil
}

func (r *services) dispatcher() (*app.ReminderDispatcher, error) {
	opts := []app.DispatcherOption{
		app.WithClock(app.SystemClock{Location: r.cfg.Reminder.Location}),
	}

	if r.cfg.Notify.RatePerSecond > 0 {
		opts = append(opts, app.WithRateLimiter(rate.NewLimiter(rate.Limit(r.cfg.Notify.RatePerSecond), 1)))
	}

	dispatchMetrics, err := metrics.NewDispatchMetrics(r.obs.Metrics.Meter())
	if err != nil {
		return nil, err
	}

	opts = append(opts, app.WithRecorder(dispatchMetrics))

	return app.NewReminderDispatcher(
		repository.NewProfileRepository(r.db),
		repository.NewMedicationRepository(r.db),
		r.sink,
		opts...,
	), nil
}

func (r *services) close(ctx context.Context) {
	if r.closed {
		return
	}

	r.closed = true

	if r.sink != nil {
		if err := r.sink.Close(); err != nil {
			slog.Warn("failed to close notification sink", "error", err)
		}
	}

	if sqlDB, err := r.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Warn("failed to close database", "error", err)
		}
	}

	if err := r.obs.Shutdown(ctx); err != nil {
		slog.Warn("failed to shutdown observability", "error", err)
	}
}

func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(cfg.Database.SlowThreshold, cfg.Log.Level),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}
