package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/primind-medication-remind/internal/observability/tracing"
)

const (
	TopicReminderRequested = "reminder.requested"

	eventTypeReminderRequested = "reminder.requested"
)

// ReminderRequestedEvent is the payload handed to the downstream push worker.
type ReminderRequestedEvent struct {
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Token        string    `json:"token"`
	UserID       string    `json:"user_id"`
	MedicationID string    `json:"medication_id"`
	RequestedAt  time.Time `json:"requested_at"`
}

func newReminderRequestedMessage(ctx context.Context, n Notification, now time.Time) (*message.Message, error) {
	payload, err := json.Marshal(ReminderRequestedEvent{
		Title:        n.Title,
		Body:         n.Body,
		Token:        n.Token,
		UserID:       n.UserID,
		MedicationID: n.MedicationID,
		RequestedAt:  now.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", eventTypeReminderRequested)
	msg.Metadata.Set("user_id", n.UserID)
	msg.Metadata.Set("medication_id", n.MedicationID)

	carrier := make(map[string]string)
	tracing.InjectToMap(ctx, carrier)
	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}

	msg.SetContext(ctx)

	return msg, nil
}
