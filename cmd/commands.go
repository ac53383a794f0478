package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/primind-medication-remind/internal/app"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/handler"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-medication-remind/internal/scheduler"
)

const shutdownTimeout = 30 * time.Second

var errDispatchFailed = errors.New("reminder dispatch failed")

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (and the reminder schedule when configured)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func sendRemindersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send-reminders",
		Short: "Run one reminder dispatch pass and print the summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSendReminders(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd.Context())
		},
	}
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}

	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

func runServe(parent context.Context) error {
	ctx, stop := signalContext(parent)
	defer stop()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.close(context.Background())

	if err := rt.openSink(ctx); err != nil {
		return err
	}

	dispatcher, err := rt.dispatcher()
	if err != nil {
		return err
	}

	router, err := setupRouter(rt, dispatcher)
	if err != nil {
		return err
	}

	var sched *scheduler.Scheduler
	if rt.cfg.Reminder.Schedule != "" {
		sched, err = scheduler.New(scheduler.Config{
			Schedule:   rt.cfg.Reminder.Schedule,
			Location:   rt.cfg.Reminder.Location,
			RunTimeout: rt.cfg.Reminder.RunTimeout,
		}, dispatcher)
		if err != nil {
			slog.Error("failed to configure reminder schedule", "error", err)

			return err
		}

		sched.Start()
	}

	srv := &http.Server{
		Addr:         rt.cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  rt.cfg.Server.ReadTimeout,
		WriteTimeout: rt.cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)

	go func() {
		slog.Info("starting server", "address", rt.cfg.Server.Address())

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}

		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			slog.Error("failed to start server", "error", err)

			return err
		}
	case <-ctx.Done():
	}

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if sched != nil {
		if err := sched.Stop(shutdownCtx); err != nil {
			slog.Warn("reminder schedule did not stop in time", "error", err)
		}
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)

		return err
	}

	slog.Info("server exited properly")

	return nil
}

func runSendReminders(parent context.Context) error {
	ctx, stop := signalContext(parent)
	defer stop()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.close(context.Background())

	if err := rt.openSink(ctx); err != nil {
		return err
	}

	dispatcher, err := rt.dispatcher()
	if err != nil {
		return err
	}

	if timeout := rt.cfg.Reminder.RunTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)

		defer cancel()
	}

	summary, err := dispatcher.Dispatch(ctx)
	if err != nil {
		slog.Warn("reminder dispatch returned an error",
			"error", err,
			"outcome", string(summary.Outcome()),
		)
	}

	out, err := json.MarshalIndent(handler.FromDispatchSummary(summary), "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, string(out))

	if summary.Outcome() == app.DispatchFailed {
		return errDispatchFailed
	}

	return nil
}

func runMigrate(parent context.Context) error {
	ctx, stop := signalContext(parent)
	defer stop()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.close(context.Background())

	if err := repository.Migrate(rt.db.WithContext(ctx)); err != nil {
		slog.Error("migration failed", "error", err)

		return err
	}

	slog.Info("migration completed")

	return nil
}
