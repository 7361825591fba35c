package config

import (
	"os"
	"time"

	"github.com/fjod/go_storefront/internal/badge"
	"github.com/fjod/go_storefront/internal/session"
)

const (
	CatalogSQLite = "sqlite"
	CatalogStatic = "static"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	CatalogSource string
	CatalogDBPath string

	BadgePulse time.Duration
	SessionTTL time.Duration
}

func Load() *Config {
	return &Config{
		AppEnv:          getEnv("APP_ENV", "dev"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		CatalogSource:   getEnv("CATALOG_SOURCE", CatalogSQLite),
		CatalogDBPath:   getEnv("CATALOG_DB_PATH", ":memory:"),
		BadgePulse:      getEnvDuration("BADGE_PULSE", badge.DefaultPulse),
		SessionTTL:      getEnvDuration("SESSION_TTL", session.DefaultTTL),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
