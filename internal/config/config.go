package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Auth     AuthConfig
	Notify   NotifyConfig
	Reminder ReminderConfig
}

type LogConfig struct {
	Level string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
	Audience  string
	// CronSecret guards the reminder trigger endpoint.
	CronSecret string
}

type NotifyConfig struct {
	Driver                    string
	FirebaseServiceAccountKey string
	NatsURL                   string
	GCloudProjectID           string
	// RatePerSecond paces deliveries within a run; 0 disables pacing.
	RatePerSecond float64
}

type ReminderConfig struct {
	// Schedule is a standard 5-field cron spec; empty disables the in-process scheduler.
	Schedule string
	Location *time.Location
	// RunTimeout bounds one dispatch run started by the scheduler or the CLI; 0 disables the bound.
	RunTimeout time.Duration
}

const (
	NotifyDriverFCM    = "fcm"
	NotifyDriverNATS   = "nats"
	NotifyDriverPubSub = "pubsub"
)

func Load() (*Config, error) {
	serverPort, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("SERVER_READ_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("SERVER_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	maxOpenConns, err := strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}

	maxIdleConns, err := strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	slowThreshold, err := time.ParseDuration(getEnv("DB_SLOW_THRESHOLD", "200ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_SLOW_THRESHOLD: %w", err)
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("POSTGRES_DSN environment variable is required")
	}

	notifyRate, err := strconv.ParseFloat(getEnv("NOTIFY_RATE_PER_SECOND", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid NOTIFY_RATE_PER_SECOND: %w", err)
	}

	if notifyRate < 0 {
		return nil, fmt.Errorf("invalid NOTIFY_RATE_PER_SECOND: must not be negative")
	}

	driver := getEnv("NOTIFY_DRIVER", NotifyDriverFCM)
	switch driver {
	case NotifyDriverFCM, NotifyDriverNATS, NotifyDriverPubSub:
	default:
		return nil, fmt.Errorf("invalid NOTIFY_DRIVER: %s", driver)
	}

	location, err := time.LoadLocation(getEnv("REMINDER_TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_TIMEZONE: %w", err)
	}

	runTimeout, err := time.ParseDuration(getEnv("REMINDER_RUN_TIMEOUT", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_RUN_TIMEOUT: %w", err)
	}

	if runTimeout < 0 {
		return nil, fmt.Errorf("invalid REMINDER_RUN_TIMEOUT: must not be negative")
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         serverPort,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Database: DatabaseConfig{
			DSN:             dsn,
			MaxOpenConns:    maxOpenConns,
			MaxIdleConns:    maxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
			SlowThreshold:   slowThreshold,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:  os.Getenv("AUTH_JWT_SECRET"),
			Issuer:     os.Getenv("AUTH_ISSUER"),
			Audience:   os.Getenv("AUTH_AUDIENCE"),
			CronSecret: os.Getenv("CRON_SECRET"),
		},
		Notify: NotifyConfig{
			Driver:                    driver,
			FirebaseServiceAccountKey: os.Getenv("FIREBASE_SERVICE_ACCOUNT_KEY"),
			NatsURL:                   os.Getenv("NATS_URL"),
			GCloudProjectID:           os.Getenv("GCLOUD_PROJECT_ID"),
			RatePerSecond:             notifyRate,
		},
		Reminder: ReminderConfig{
			Schedule:   os.Getenv("REMINDER_SCHEDULE"),
			Location:   location,
			RunTimeout: runTimeout,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// HasCredential reports whether the selected driver has what it needs to deliver.
func (c *NotifyConfig) HasCredential() bool {
	switch c.Driver {
	case NotifyDriverFCM:
		return c.FirebaseServiceAccountKey != ""
	case NotifyDriverNATS:
		return c.NatsURL != ""
	case NotifyDriverPubSub:
		return c.GCloudProjectID != ""
	default:
		return false
	}
}
