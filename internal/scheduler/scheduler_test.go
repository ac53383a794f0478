package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-remind/internal/app"
	"github.com/KasumiMercury/primind-medication-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-medication-remind/internal/scheduler"
)

type countingDispatcher struct {
	calls  atomic.Int32
	module atomic.Value
}

func (d *countingDispatcher) Dispatch(ctx context.Context) (app.DispatchSummary, error) {
	d.calls.Add(1)
	d.module.Store(logging.ModuleFromContext(ctx))

	return app.DispatchSummary{Success: true}, nil
}

// blockingDispatcher waits for its context and reports why it ended.
type blockingDispatcher struct {
	done chan error
}

func (d *blockingDispatcher) Dispatch(ctx context.Context) (app.DispatchSummary, error) {
	<-ctx.Done()
	d.done <- ctx.Err()

	return app.DispatchSummary{Success: true, Errors: []string{"dispatch stopped: " + ctx.Err().Error()}}, ctx.Err()
}

func TestNewRejectsInvalidSchedule(t *testing.T) {
	tests := []string{"", "not a schedule", "61 * * * *", "* * * * * *"}

	for _, spec := range tests {
		t.Run(spec, func(t *testing.T) {
			_, err := scheduler.New(scheduler.Config{Schedule: spec}, &countingDispatcher{})

			assert.Error(t, err)
		})
	}
}

func TestNewAcceptsStandardSchedules(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	for _, spec := range []string{"0 8 * * *", "30 7,19 * * 1-5", "@daily"} {
		t.Run(spec, func(t *testing.T) {
			s, err := scheduler.New(scheduler.Config{Schedule: spec, Location: tokyo}, &countingDispatcher{})
			require.NoError(t, err)

			assert.NoError(t, s.Stop(context.Background()))
		})
	}
}

func TestSchedulerRunsDispatcher(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timing-dependent test in short mode")
	}

	dispatcher := &countingDispatcher{}

	s, err := scheduler.New(scheduler.Config{Schedule: "@every 1s", RunTimeout: time.Second}, dispatcher)
	require.NoError(t, err)

	s.Start()

	assert.Eventually(t, func() bool {
		return dispatcher.calls.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, s.Stop(ctx))
	assert.Equal(t, logging.ModuleReminder, dispatcher.module.Load())
}

func TestSchedulerBoundsRunWithTimeout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timing-dependent test in short mode")
	}

	dispatcher := &blockingDispatcher{done: make(chan error, 4)}

	s, err := scheduler.New(scheduler.Config{Schedule: "@every 1s", RunTimeout: 100 * time.Millisecond}, dispatcher)
	require.NoError(t, err)

	s.Start()

	select {
	case runErr := <-dispatcher.done:
		assert.ErrorIs(t, runErr, context.DeadlineExceeded)
	case <-time.After(3 * time.Second):
		t.Fatal("dispatch run was not bounded by the run timeout")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, s.Stop(ctx))
}
