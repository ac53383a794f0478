package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/notify"
)

type DispatchRecorder interface {
	RecordRun(ctx context.Context, outcome string, sent, failed int)
}

type ReminderDispatcher struct {
	profiles    domain.ProfileRepository
	medications domain.MedicationRepository
	sink        notify.Sink
	evaluator   *domain.WindowEvaluator
	clock       Clock
	limiter     *rate.Limiter
	recorder    DispatchRecorder
}

type DispatcherOption func(*ReminderDispatcher)

func WithClock(clock Clock) DispatcherOption {
	return func(d *ReminderDispatcher) {
		d.clock = clock
	}
}

// WithRateLimiter paces sink calls. A nil limiter sends without pacing.
func WithRateLimiter(limiter *rate.Limiter) DispatcherOption {
	return func(d *ReminderDispatcher) {
		d.limiter = limiter
	}
}

func WithRecorder(recorder DispatchRecorder) DispatcherOption {
	return func(d *ReminderDispatcher) {
		d.recorder = recorder
	}
}

func WithEvaluator(evaluator *domain.WindowEvaluator) DispatcherOption {
	return func(d *ReminderDispatcher) {
		d.evaluator = evaluator
	}
}

// NewReminderDispatcher accepts a nil sink; Dispatch then reports the
// missing delivery configuration instead of sending.
func NewReminderDispatcher(
	profiles domain.ProfileRepository,
	medications domain.MedicationRepository,
	sink notify.Sink,
	opts ...DispatcherOption,
) *ReminderDispatcher {
	d := &ReminderDispatcher{
		profiles:    profiles,
		medications: medications,
		sink:        sink,
		evaluator:   domain.NewWindowEvaluator(domain.MissingStartFromReference),
		clock:       SystemClock{},
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch sends one reminder for every reminder-enabled medication that is
// active today, owned by a user with a registered push token. Users and
// medications are processed one at a time; a failure for one user or one
// message is recorded and the run moves on.
func (d *ReminderDispatcher) Dispatch(ctx context.Context) (DispatchSummary, error) {
	summary, err := d.dispatch(ctx)

	if d.recorder != nil {
		d.recorder.RecordRun(ctx, string(summary.Outcome()), summary.MessagesSent, len(summary.Errors))
	}

	slog.InfoContext(ctx, "reminder dispatch finished",
		slog.String("event", "reminder.dispatch.finish"),
		slog.String("outcome", string(summary.Outcome())),
		slog.Int("messages_sent", summary.MessagesSent),
		slog.Int("error_count", len(summary.Errors)),
	)

	return summary, err
}

func (d *ReminderDispatcher) dispatch(ctx context.Context) (DispatchSummary, error) {
	if d.sink == nil {
		slog.ErrorContext(ctx, "reminder dispatch aborted",
			slog.String("event", "reminder.dispatch.fail"),
			slog.String("error", ErrDeliveryNotConfigured.Error()),
		)

		return DispatchSummary{
			Success: false,
			Errors:  []string{ErrDeliveryNotConfigured.Error()},
		}, ErrDeliveryNotConfigured
	}

	now := d.clock.Now()

	profiles, err := d.profiles.FindWithPushToken(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list profiles with push tokens",
			slog.String("event", "reminder.dispatch.fail"),
			slog.String("error", err.Error()),
		)

		return DispatchSummary{
			Success: false,
			Errors:  []string{fmt.Sprintf("failed to list users with push tokens: %v", err)},
		}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "dispatching reminders",
		slog.Int("recipient_count", len(profiles)),
		slog.String("reference_date", domain.DateOf(now).String()),
	)

	summary := DispatchSummary{Success: true, Errors: []string{}}

	for _, profile := range profiles {
		if err := ctx.Err(); err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("dispatch stopped: %v", err))

			return summary, err
		}

		if err := d.dispatchToUser(ctx, profile, now, &summary); err != nil {
			return summary, err
		}
	}

	return summary, nil
}

// dispatchToUser only returns an error when the run must stop; everything
// else is recorded on the summary.
func (d *ReminderDispatcher) dispatchToUser(ctx context.Context, profile *domain.Profile, now time.Time, summary *DispatchSummary) error {
	userID := profile.UserID().String()

	medications, err := d.medications.FindByOwnerID(ctx, profile.UserID())
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch medications for user",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)

		summary.Errors = append(summary.Errors, fmt.Sprintf("failed to fetch medications for user %s: %v", userID, err))

		return nil
	}

	for _, medication := range medications {
		if !medication.RemindersEnabled() || !d.evaluator.IsActiveOn(medication, now) {
			continue
		}

		if err := d.wait(ctx); err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("dispatch stopped: %v", err))

			return err
		}

		if err := d.sink.Send(ctx, reminderNotification(profile, medication)); err != nil {
			slog.WarnContext(ctx, "failed to send reminder",
				slog.String("user_id", userID),
				slog.String("medication_id", medication.ID().String()),
				slog.String("error", err.Error()),
			)

			summary.Errors = append(summary.Errors, fmt.Sprintf("failed to send notification to user %s: %v", userID, err))

			continue
		}

		summary.MessagesSent++
	}

	return nil
}

func (d *ReminderDispatcher) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if d.limiter == nil {
		return nil
	}

	return d.limiter.Wait(ctx)
}

func reminderNotification(profile *domain.Profile, medication *domain.Medication) notify.Notification {
	return notify.Notification{
		Title:        "Medication Reminder: " + medication.Name(),
		Body:         fmt.Sprintf("It's time to take your medication: %s - %s.", medication.Dosage(), medication.Frequency()),
		Token:        profile.PushToken().String(),
		UserID:       profile.UserID().String(),
		MedicationID: medication.ID().String(),
	}
}
