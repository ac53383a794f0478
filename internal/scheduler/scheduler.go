// Package scheduler runs the reminder dispatcher on a cron cadence inside the
// server process.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/KasumiMercury/primind-medication-remind/internal/app"
	"github.com/KasumiMercury/primind-medication-remind/internal/observability/logging"
)

type Dispatcher interface {
	Dispatch(ctx context.Context) (app.DispatchSummary, error)
}

type Config struct {
	// Schedule is a standard 5-field cron expression or a descriptor such as @daily.
	Schedule string
	Location *time.Location
	// RunTimeout bounds a single dispatch run; zero means no bound.
	RunTimeout time.Duration
}

type Scheduler struct {
	cron       *cron.Cron
	dispatcher Dispatcher
	timeout    time.Duration
	baseCtx    context.Context
	cancel     context.CancelFunc
}

func New(cfg Config, dispatcher Dispatcher) (*Scheduler, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	logger := cronLogger{}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	baseCtx, cancel := context.WithCancel(logging.WithModule(context.Background(), logging.ModuleReminder))

	s := &Scheduler{
		cron:       c,
		dispatcher: dispatcher,
		timeout:    cfg.RunTimeout,
		baseCtx:    baseCtx,
		cancel:     cancel,
	}

	if _, err := c.AddFunc(cfg.Schedule, s.run); err != nil {
		cancel()

		return nil, fmt.Errorf("invalid reminder schedule %q: %w", cfg.Schedule, err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()

	for _, entry := range s.cron.Entries() {
		slog.Info("reminder schedule started",
			slog.String("event", "scheduler.start"),
			slog.Time("next_run", entry.Next),
		)
	}
}

// Stop cancels any in-flight run and waits for it to return or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) run() {
	jobID := uuid.Must(uuid.NewV7()).String()
	ctx := logging.WithRequestID(s.baseCtx, jobID)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)

		defer cancel()
	}

	start := time.Now()

	slog.InfoContext(ctx, "job started",
		slog.String("event", "job.start"),
		slog.String("job.name", "send-reminders"),
		slog.String("job.id", jobID),
	)

	summary, err := s.dispatcher.Dispatch(ctx)

	attrs := []slog.Attr{
		slog.String("event", "job.finish"),
		slog.String("job.name", "send-reminders"),
		slog.String("job.id", jobID),
		slog.String("outcome", string(summary.Outcome())),
		slog.Int("messages_sent", summary.MessagesSent),
		slog.Duration("duration", time.Since(start)),
	}

	level := slog.LevelInfo
	if err != nil {
		level = slog.LevelError

		attrs = append(attrs, slog.String("error", err.Error()))
	}

	slog.LogAttrs(ctx, level, "job finished", attrs...)
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug(msg, append([]any{"component", "cron"}, keysAndValues...)...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error(msg, append([]any{"component", "cron", "error", err}, keysAndValues...)...)
}
