package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/KasumiMercury/primind-medication-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-medication-remind/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-remind/internal/observability/tracing"
)

const RequestIDHeader = "x-request-id"

type GinConfig struct {
	// SkipPaths bypass logging, tracing and metrics entirely
	SkipPaths      []string
	Module         logging.Module
	ModuleResolver func(*gin.Context) logging.Module
	// JobPaths are logged as job runs (job.start / job.finish) instead of requests
	JobPaths    map[string]string
	TracerName  string
	HTTPMetrics *metrics.HTTPMetrics
}

func Gin(cfg GinConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	tracer := otel.Tracer(cfg.TracerName)

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()

			return
		}

		start := time.Now()

		requestID := logging.ValidateAndExtractRequestID(c.GetHeader(RequestIDHeader))
		ctx := logging.WithRequestID(c.Request.Context(), requestID)

		module := cfg.Module
		if cfg.ModuleResolver != nil {
			if resolved := cfg.ModuleResolver(c); resolved != "" {
				module = resolved
			}
		}

		if module != "" {
			ctx = logging.WithModule(ctx, module)
		}

		ctx = tracing.ExtractFromHTTPRequest(ctx, c.Request)

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx, span := tracer.Start(ctx, c.Request.Method+" "+route)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, requestID)

		jobName, isJob := cfg.JobPaths[route]

		baseAttrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("remote_addr", c.ClientIP()),
		}

		if isJob {
			attrs := append([]slog.Attr{slog.String("event", "job.start")}, baseAttrs...)
			attrs = append(attrs, slog.String("job.name", jobName), slog.String("job.id", requestID))
			slog.LogAttrs(ctx, slog.LevelInfo, "job started", attrs...)
		}

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, "server error")
		}

		if cfg.HTTPMetrics != nil {
			cfg.HTTPMetrics.Record(ctx, c.Request.Method, route, status, duration)
		}

		event, message := "http.request.finish", "request completed"
		if isJob {
			event, message = "job.finish", "job finished"
		}

		attrs := append([]slog.Attr{slog.String("event", event)}, baseAttrs...)
		attrs = append(attrs,
			slog.Int("status", status),
			slog.Duration("duration", duration),
		)

		if isJob {
			attrs = append(attrs, slog.String("job.name", jobName), slog.String("job.id", requestID))
		}

		slog.LogAttrs(ctx, slog.LevelInfo, message, attrs...)
	}
}
