// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is built once at
// startup and passed explicitly to constructors; there is no ambient
// mutable configuration.
type Config struct {
	Backend BackendConfig
	Stub    StubServerConfig
	Cache   CacheConfig
	Store   StoreConfig
	Log     LogConfig
}

// BackendConfig holds the research backend connection configuration.
type BackendConfig struct {
	// BaseURL is the root URL of the research API server.
	BaseURL string
	// InteractiveTimeout bounds short operations (health, chat in
	// standard/search mode, search, stats, clear, quotes).
	InteractiveTimeout time.Duration
	// HeavyTimeout bounds long-running operations (uploads, agentic chat).
	HeavyTimeout time.Duration
}

// StubServerConfig holds configuration for the development stub server.
type StubServerConfig struct {
	Host    string
	Port    int
	GinMode string
}

// Address returns the stub server address in host:port format.
func (c StubServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CacheConfig holds quote cache configuration.
type CacheConfig struct {
	Type     string
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// StoreConfig holds transcript store configuration.
type StoreConfig struct {
	// Type selects the store implementation; empty disables archival.
	Type     string
	URI      string
	Database string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Backend: BackendConfig{
			BaseURL:            getEnv("BACKEND_URL", "http://localhost:8000"),
			InteractiveTimeout: time.Duration(getEnvAsInt("BACKEND_TIMEOUT_SECONDS", 30)) * time.Second,
			HeavyTimeout:       time.Duration(getEnvAsInt("BACKEND_HEAVY_TIMEOUT_SECONDS", 120)) * time.Second,
		},
		Stub: StubServerConfig{
			Host:    getEnv("STUB_HOST", "0.0.0.0"),
			Port:    getEnvAsInt("STUB_PORT", 8000),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Cache: CacheConfig{
			Type:     getEnv("CACHE_TYPE", "memory"),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvAsInt("QUOTE_CACHE_TTL_SECONDS", 60)) * time.Second,
		},
		Store: StoreConfig{
			Type:     getEnv("STORE_TYPE", ""),
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "equity_assistant"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("BACKEND_URL must not be empty")
	}

	return cfg, nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
