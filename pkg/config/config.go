package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Port          string
	StorageDriver string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPass     string
	PostgresDatabase string
	PostgresSSLMode  string

	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			slog.Warn("env file not found", "files", envFiles)
		}
	} else {
		if err := godotenv.Load(); err != nil {
			slog.Warn("env file not found, using system environment variables")
		}
	}

	cfg := &Config{
		Port:              getEnvWithDefault("PORT", "8080"),
		StorageDriver:     getEnvWithDefault("STORAGE_DRIVER", StorageDriverPostgres),
		MaxConnLifetime:   getEnvAsDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		MaxConnIdleTime:   getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		HealthCheckPeriod: getEnvAsDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
	}

	maxConns, _ := strconv.Atoi(getEnvWithDefault("DB_MAX_CONNS", "25"))
	minConns, _ := strconv.Atoi(getEnvWithDefault("DB_MIN_CONNS", "5"))
	cfg.MaxConns = int32(maxConns)
	cfg.MinConns = int32(minConns)

	switch cfg.StorageDriver {
	case StorageDriverMemory:
		// No database settings required; reports live in process memory.
	case StorageDriverPostgres:
		var err error
		if cfg.PostgresHost, err = getEnvRequired("POSTGRES_HOST"); err != nil {
			return nil, err
		}
		if cfg.PostgresPort, err = getEnvRequired("POSTGRES_PORT"); err != nil {
			return nil, err
		}
		if cfg.PostgresUser, err = getEnvRequired("POSTGRES_USER"); err != nil {
			return nil, err
		}
		if cfg.PostgresPass, err = getEnvRequired("POSTGRES_PASSWORD"); err != nil {
			return nil, err
		}
		if cfg.PostgresDatabase, err = getEnvRequired("POSTGRES_DB"); err != nil {
			return nil, err
		}
		cfg.PostgresSSLMode = getEnvWithDefault("POSTGRES_SSL_MODE", "disable")
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	slog.Info("configuration loaded", "port", cfg.Port, "storage_driver", cfg.StorageDriver)

	return cfg, nil
}

// PostgresDSN builds the connection string shared by the pool and the
// migrator.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPass, c.PostgresDatabase, c.PostgresSSLMode,
	)
}

// for variables with default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// for required variables
func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}

	return duration
}
