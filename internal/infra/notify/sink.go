package notify

import (
	"context"
	"io"
)

//go:generate mockgen -source=sink.go -destination=sink_mock.go -package=notify

// Notification is a single push message addressed to one device token.
type Notification struct {
	Title        string
	Body         string
	Token        string
	UserID       string
	MedicationID string
}

type Sink interface {
	Send(ctx context.Context, n Notification) error
	io.Closer
}
