package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var ErrEmptyServiceAccountKey = errors.New("firebase service account key is required")

type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMSink delivers notifications directly through Firebase Cloud Messaging.
type FCMSink struct {
	client messagingClient
}

type FCMSinkConfig struct {
	// ServiceAccountKey is the JSON service account credential.
	ServiceAccountKey string
}

func NewFCMSink(ctx context.Context, cfg FCMSinkConfig) (*FCMSink, error) {
	if cfg.ServiceAccountKey == "" {
		return nil, ErrEmptyServiceAccountKey
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON([]byte(cfg.ServiceAccountKey)))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging client: %w", err)
	}

	return &FCMSink{client: client}, nil
}

func (s *FCMSink) Send(ctx context.Context, n Notification) error {
	msg := &messaging.Message{
		Token: n.Token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: map[string]string{
			"medication_id": n.MedicationID,
		},
	}

	messageID, err := s.client.Send(ctx, msg)
	if err != nil {
		if messaging.IsUnregistered(err) {
			slog.WarnContext(ctx, "push token is no longer registered",
				slog.String("user_id", n.UserID),
			)
		}

		return fmt.Errorf("fcm send: %w", err)
	}

	slog.DebugContext(ctx, "sent fcm message",
		slog.String("user_id", n.UserID),
		slog.String("medication_id", n.MedicationID),
		slog.String("message_id", messageID),
	)

	return nil
}

func (s *FCMSink) Close() error {
	return nil
}
