package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
)

// PublisherSink hands notifications to a message broker as reminder.requested events.
type PublisherSink struct {
	publisher message.Publisher
	topic     string
	now       func() time.Time
}

func NewPublisherSink(publisher message.Publisher, topic string) *PublisherSink {
	if topic == "" {
		topic = TopicReminderRequested
	}

	return &PublisherSink{
		publisher: publisher,
		topic:     topic,
		now:       time.Now,
	}
}

func (s *PublisherSink) Send(ctx context.Context, n Notification) error {
	msg, err := newReminderRequestedMessage(ctx, n, s.now())
	if err != nil {
		return err
	}

	if err := s.publisher.Publish(s.topic, msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish reminder requested event",
			slog.String("user_id", n.UserID),
			slog.String("medication_id", n.MedicationID),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.DebugContext(ctx, "published reminder requested event",
		slog.String("user_id", n.UserID),
		slog.String("medication_id", n.MedicationID),
		slog.String("message_id", msg.UUID),
	)

	return nil
}

func (s *PublisherSink) Close() error {
	return s.publisher.Close()
}
