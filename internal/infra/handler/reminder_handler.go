package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-remind/internal/app"
)

type ReminderDispatcher interface {
	Dispatch(ctx context.Context) (app.DispatchSummary, error)
}

type DispatchSummaryResponse struct {
	Success      bool     `json:"success"`
	MessagesSent int      `json:"messages_sent"`
	Errors       []string `json:"errors"`
}

type SendRemindersResponse struct {
	Message string                  `json:"message"`
	Details DispatchSummaryResponse `json:"details"`
}

func FromDispatchSummary(summary app.DispatchSummary) DispatchSummaryResponse {
	errs := summary.Errors
	if errs == nil {
		errs = []string{}
	}

	return DispatchSummaryResponse{
		Success:      summary.Success,
		MessagesSent: summary.MessagesSent,
		Errors:       errs,
	}
}

type ReminderHandler struct {
	dispatcher ReminderDispatcher
}

func NewReminderHandler(dispatcher ReminderDispatcher) *ReminderHandler {
	return &ReminderHandler{dispatcher: dispatcher}
}

// SendReminders runs one dispatch pass. Partial success still answers 200;
// only a run that could not start or list recipients answers 500.
func (h *ReminderHandler) SendReminders(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.dispatcher.Dispatch(ctx)
	if err != nil {
		slog.WarnContext(ctx, "reminder dispatch returned an error",
			"error", err,
			"outcome", string(summary.Outcome()),
			"messages_sent", summary.MessagesSent,
		)
	}

	if !summary.Success {
		c.JSON(http.StatusInternalServerError, SendRemindersResponse{
			Message: "Cron job executed with errors.",
			Details: FromDispatchSummary(summary),
		})

		return
	}

	c.JSON(http.StatusOK, SendRemindersResponse{
		Message: fmt.Sprintf("Successfully sent %d reminders.", summary.MessagesSent),
		Details: FromDispatchSummary(summary),
	})
}

// RegisterRoutes mounts the trigger under router; guard should reject
// callers without the scheduler secret.
func (h *ReminderHandler) RegisterRoutes(router *gin.RouterGroup, guard gin.HandlerFunc) {
	router.GET("/cron/send-reminders", guard, h.SendReminders)
}
