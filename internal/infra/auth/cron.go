package auth

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

// CronSecretMiddleware guards scheduler-triggered endpoints with a shared
// bearer secret. An empty secret rejects every request.
func CronSecretMiddleware(secret string) gin.HandlerFunc {
	expected := []byte(secret)

	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok || len(expected) == 0 || subtle.ConstantTimeCompare([]byte(token), expected) != 1 {
			abortUnauthorized(c, "invalid cron secret")

			return
		}

		c.Next()
	}
}
