// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, storage and model runtime

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Storage contains persistent storage configuration
	Storage StorageConfig

	// Models contains model runtime configuration
	Models ModelsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// LogLevel is the logging verbosity (debug/info/warn/error)
	LogLevel string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
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

// StorageConfig holds persistent storage configuration
type StorageConfig struct {
	// SQLitePath is the path to the SQLite store database
	SQLitePath string

	// HistoryLimit caps the answer history at the most recent N entries
	HistoryLimit int
}

// ModelsConfig holds model runtime configuration
type ModelsConfig struct {
	// RuntimeURL is the base URL of the local model runtime
	RuntimeURL string

	// TargetLanguage is the language articles are translated into
	TargetLanguage string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:     getEnvOrDefault("PORT", "8000"),
			LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Storage: StorageConfig{
			SQLitePath:   getEnvOrDefault("SQLITE_PATH", "quizzer.db"),
			HistoryLimit: getEnvAsIntOrDefault("HISTORY_LIMIT", 200),
		},
		Models: ModelsConfig{
			RuntimeURL:     getEnvOrDefault("MODEL_RUNTIME_URL", "http://localhost:11434"),
			TargetLanguage: getEnvOrDefault("TARGET_LANGUAGE", "en"),
		},
	}

	return cfg, nil
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Storage.HistoryLimit < 1 {
		return errors.New("history limit must be at least 1")
	}

	if c.Models.RuntimeURL == "" {
		return errors.New("model runtime URL cannot be empty")
	}

	if c.Models.TargetLanguage == "" {
		return errors.New("target language cannot be empty")
	}

	return nil
}
