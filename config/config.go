// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Export    ExportConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Driver          string // sqlite or postgres
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SeedOnStart     bool
}

// RedisConfig holds Redis configuration for the summary cache.
type RedisConfig struct {
	Enabled    bool
	URL        string
	Password   string
	DB         int
	SummaryTTL time.Duration
}

// ExportConfig holds export configuration.
type ExportConfig struct {
	Locale string // el or en
}

// RateLimitConfig throttles transaction recording per client.
type RateLimitConfig struct {
	RecordLimit  int
	RecordWindow time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DATABASE_DRIVER", DriverSQLite),
			URL:             getEnv("DATABASE_URL", "file:club_ledger.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 1),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			SeedOnStart:     getEnvAsBool("DB_SEED_ON_START", true),
		},
		Redis: RedisConfig{
			Enabled:    getEnvAsBool("REDIS_ENABLED", false),
			URL:        getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvAsInt("REDIS_DB", 0),
			SummaryTTL: getEnvAsDuration("REDIS_SUMMARY_TTL", 10*time.Minute),
		},
		Export: ExportConfig{
			Locale: getEnv("EXPORT_LOCALE", "el"),
		},
		RateLimit: RateLimitConfig{
			RecordLimit:  getEnvAsInt("RATE_LIMIT_RECORD", 60),
			RecordWindow: getEnvAsDuration("RATE_LIMIT_RECORD_WINDOW", time.Minute),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port))
	}
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, c.Database.Driver))
	}
	if strings.TrimSpace(c.Database.URL) == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.Database.MaxOpenConns < 1 {
		errs = append(errs, errors.New("DB_MAX_OPEN_CONNS must be positive"))
	}
	if c.Redis.Enabled && c.Redis.SummaryTTL <= 0 {
		errs = append(errs, errors.New("REDIS_SUMMARY_TTL must be positive when Redis is enabled"))
	}
	switch strings.ToLower(c.Export.Locale) {
	case "el", "en":
	default:
		errs = append(errs, fmt.Errorf("EXPORT_LOCALE must be \"el\" or \"en\", got %q", c.Export.Locale))
	}
	if c.RateLimit.RecordLimit < 1 || c.RateLimit.RecordWindow <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RECORD and RATE_LIMIT_RECORD_WINDOW must be positive"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// SlogLevel parses the configured level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q is invalid: %w", l.Level, err)
	}
	return level, nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
