package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-remind/internal/observability/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGin(t *testing.T) {
	t.Run("propagates a valid request id", func(t *testing.T) {
		router := gin.New()
		router.Use(Gin(GinConfig{Module: logging.ModuleMedication}))

		var seenID string
		var seenModule logging.Module

		router.GET("/ping", func(c *gin.Context) {
			seenID = logging.RequestIDFromContext(c.Request.Context())
			seenModule = logging.ModuleFromContext(c.Request.Context())
			c.Status(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "0192b6a0-7c3e-7d4f-8a1b-2c3d4e5f6a7b")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "0192b6a0-7c3e-7d4f-8a1b-2c3d4e5f6a7b", seenID)
		assert.Equal(t, "0192b6a0-7c3e-7d4f-8a1b-2c3d4e5f6a7b", w.Header().Get(RequestIDHeader))
		assert.Equal(t, logging.ModuleMedication, seenModule)
	})

	t.Run("replaces an invalid request id", func(t *testing.T) {
		router := gin.New()
		router.Use(Gin(GinConfig{}))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "bad id\n")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		got := w.Header().Get(RequestIDHeader)
		require.NotEmpty(t, got)
		assert.NotEqual(t, "bad id\n", got)
	})

	t.Run("skip paths bypass the middleware", func(t *testing.T) {
		router := gin.New()
		router.Use(Gin(GinConfig{SkipPaths: []string{"/health"}}))
		router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get(RequestIDHeader))
	})

	t.Run("module resolver overrides the default module", func(t *testing.T) {
		router := gin.New()
		router.Use(Gin(GinConfig{
			Module: logging.ModuleMedication,
			ModuleResolver: func(c *gin.Context) logging.Module {
				if c.FullPath() == "/api/cron/send-reminders" {
					return logging.ModuleReminder
				}

				return ""
			},
			JobPaths: map[string]string{"/api/cron/send-reminders": "send-reminders"},
		}))

		var seen logging.Module
		router.GET("/api/cron/send-reminders", func(c *gin.Context) {
			seen = logging.ModuleFromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cron/send-reminders", nil))

		assert.Equal(t, logging.ModuleReminder, seen)
	})
}

func TestPanicRecoveryGin(t *testing.T) {
	router := gin.New()
	router.Use(PanicRecoveryGin())
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}
