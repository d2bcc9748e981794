// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, source, store, and cache

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Source contains ranked-listing source configuration
	Source SourceConfig

	// Store contains post store configuration
	Store StoreConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the per-IP request cap per window; 0 disables limiting
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration
}

// SourceConfig holds ranked-listing source configuration
type SourceConfig struct {
	// BaseURL is the root of the listing API
	BaseURL string

	// UserAgent identifies this service to the source
	UserAgent string

	// Limit is the per-category listing page size
	Limit int

	// FetchTimeout bounds each category fetch
	FetchTimeout time.Duration

	// IngestTimeout bounds a full ingestion pass
	IngestTimeout time.Duration

	// RequestsPerSecond paces outbound requests; 0 disables pacing
	RequestsPerSecond float64

	// AllowedHosts is the direct-content host allow-list
	AllowedHosts []string
}

// StoreConfig holds post store configuration
type StoreConfig struct {
	// Path is the SQLite database file path
	Path string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// ExistsTTL is how long a positive existence memo lives
	ExistsTTL time.Duration

	// NegativeExistsTTL is how long a negative existence memo lives
	NegativeExistsTTL time.Duration
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level (debug/info/warn/error)
	Level string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow: getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute),
		},
		Source: SourceConfig{
			BaseURL:           getEnvOrDefault("SOURCE_BASE_URL", "https://www.reddit.com"),
			UserAgent:         getEnvOrDefault("SOURCE_USER_AGENT", "topicpics-api/1.0"),
			Limit:             getEnvAsIntOrDefault("SOURCE_LIMIT", 100),
			FetchTimeout:      getEnvAsDurationOrDefault("SOURCE_FETCH_TIMEOUT", 15*time.Second),
			IngestTimeout:     getEnvAsDurationOrDefault("SOURCE_INGEST_TIMEOUT", 60*time.Second),
			RequestsPerSecond: getEnvAsFloatOrDefault("SOURCE_REQUESTS_PER_SECOND", 5),
			AllowedHosts:      getEnvAsListOrDefault("SOURCE_ALLOWED_HOSTS", []string{"i.redd.it", "i.imgur.com"}),
		},
		Store: StoreConfig{
			Path: getEnvOrDefault("STORE_PATH", "posts.db"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			ExistsTTL:         getEnvAsDurationOrDefault("EXISTS_TTL", 12*time.Hour),
			NegativeExistsTTL: getEnvAsDurationOrDefault("NEGATIVE_EXISTS_TTL", 5*time.Minute),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Validate checks the configuration for required values
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server port cannot be empty")
	}
	if c.Source.BaseURL == "" {
		return errors.New("source base URL cannot be empty")
	}
	if c.Source.Limit <= 0 {
		return errors.New("source limit must be positive")
	}
	if len(c.Source.AllowedHosts) == 0 {
		return errors.New("allowed hosts cannot be empty")
	}
	if c.Store.Path == "" {
		return errors.New("store path cannot be empty")
	}
	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault returns the environment variable as a duration or a default
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault returns the environment variable as a comma-separated list or a default
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				list = append(list, trimmed)
			}
		}
		if len(list) > 0 {
			return list
		}
	}
	return defaultValue
}
