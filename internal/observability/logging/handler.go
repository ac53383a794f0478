package logging

import (
	"context"
	"log/slog"
)

// ContextHandler adds request, module and trace attributes carried by the context.
type ContextHandler struct {
	next      slog.Handler
	projectID string
}

func NewContextHandler(next slog.Handler, projectID string) *ContextHandler {
	return &ContextHandler{next: next, projectID: projectID}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if ctx != nil {
		if id := RequestIDFromContext(ctx); id != "" {
			record.AddAttrs(slog.String("request_id", id))
		}

		if m := ModuleFromContext(ctx); m != "" {
			record.AddAttrs(slog.String("module", string(m)))
		}

		record.AddAttrs(traceAttrs(ctx, h.projectID)...)
	}

	return h.next.Handle(ctx, record)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{next: h.next.WithAttrs(attrs), projectID: h.projectID}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{next: h.next.WithGroup(name), projectID: h.projectID}
}
