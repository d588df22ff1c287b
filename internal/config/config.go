package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Frontend  FrontendConfig
	Tempo     TempoConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration.
// When URL is set the server connects to Postgres; otherwise it falls
// back to a local SQLite file at Path.
type DatabaseConfig struct {
	URL  string
	Path string
}

// RedisConfig holds Redis configuration. URL is optional; when empty the
// idempotency cache is disabled.
type RedisConfig struct {
	URL      string
	Password string
}

// FrontendConfig holds the frontend base URL used to build payment links
type FrontendConfig struct {
	BaseURL string
}

// TempoConfig holds the chain parameters snapshotted into invoices at
// creation time. The RPC endpoint is never called by this service.
type TempoConfig struct {
	ChainID string
	RPCURL  string
}

// RateLimitConfig holds the sliding-window rate limiter thresholds
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			URL:  getEnv("DATABASE_URL", ""),
			Path: getEnv("DB_PATH", "payme.db"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Frontend: FrontendConfig{
			BaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:5173"),
		},
		Tempo: TempoConfig{
			ChainID: getEnv("TEMPO_CHAIN_ID", "42431"),
			RPCURL:  getEnv("TEMPO_RPC_URL", "https://rpc.moderato.tempo.xyz"),
		},
		RateLimit: RateLimitConfig{
			MaxRequests: getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 60),
			Window:      getEnvAsDuration("RATE_LIMIT_WINDOW", 60*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
