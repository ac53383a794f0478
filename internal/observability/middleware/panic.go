package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// PanicRecoveryGin logs the panic and answers 500 instead of dropping the connection.
func PanicRecoveryGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			slog.ErrorContext(c.Request.Context(), "panic recovered",
				slog.String("event", "app.panic"),
				slog.Any("error", rec),
				slog.String("stack", string(debug.Stack())),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "internal_error",
				"message": "an internal error occurred",
			})
		}()

		c.Next()
	}
}
