package logging

import (
	"io"
	"log/slog"
	"strings"
)

type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module names the functional area that emitted a log record.
type Module string

const (
	ModuleMedication    Module = "medication"
	ModuleProfile       Module = "profile"
	ModuleReminder      Module = "reminder"
	ModuleHealthRecords Module = "health_records"
)

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Config struct {
	Level       string
	Service     ServiceInfo
	Environment Environment
	// GCPProjectID enables Cloud Logging trace correlation keys in gcloud builds.
	GCPProjectID string
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the JSON logger used across the service.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	base := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)})

	handler := NewContextHandler(base, cfg.GCPProjectID)

	logger := slog.New(handler)
	if cfg.Service.Name != "" {
		logger = logger.With(
			slog.Group("service",
				slog.String("name", cfg.Service.Name),
				slog.String("version", cfg.Service.Version),
				slog.String("revision", cfg.Service.Revision),
			),
			slog.String("env", string(cfg.Environment)),
		)
	}

	return logger
}

func Setup(w io.Writer, cfg Config) {
	slog.SetDefault(NewLogger(w, cfg))
}
