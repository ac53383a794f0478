//go:build gcloud

package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-googlecloud/pkg/googlecloud"
)

type GCloudSinkConfig struct {
	ProjectID string
}

func NewGCloudSink(_ context.Context, cfg GCloudSinkConfig) (*PublisherSink, error) {
	publisher, err := googlecloud.NewPublisher(
		googlecloud.PublisherConfig{
			ProjectID: cfg.ProjectID,
		},
		watermill.NewSlogLogger(slog.Default()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Cloud publisher: %w", err)
	}

	return NewPublisherSink(publisher, TopicReminderRequested), nil
}
