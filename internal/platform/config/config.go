// Package config builds runtime configuration from the environment so main
// stays lean.
package config

import (
	"os"
	"strconv"
	"time"
)

// StoreBackend selects the persistence implementation wired at startup.
type StoreBackend string

const (
	BackendMemory   StoreBackend = "memory"
	BackendPostgres StoreBackend = "postgres"
	BackendMongo    StoreBackend = "mongo"
)

// Config captures server, store, and rate limit configuration.
type Config struct {
	Addr string

	StoreBackend StoreBackend
	PostgresDSN  string
	MongoURI     string
	MongoDB      string
	RedisURL     string

	BcryptCost int

	// RequestTimeout bounds each HTTP exchange, store calls included.
	RequestTimeout time.Duration

	// Rate limit window applied to auth and registration endpoints.
	RateLimitWindow time.Duration
	RateLimitMax    int
}

// FromEnv builds a Config from environment variables, with development
// defaults for everything but external store addresses.
func FromEnv() Config {
	cfg := Config{
		Addr:            envOr("HEMOBANK_ADDR", ":8080"),
		StoreBackend:    StoreBackend(envOr("STORE_BACKEND", string(BackendMemory))),
		PostgresDSN:     os.Getenv("POSTGRES_DSN"),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDB:         envOr("MONGO_DATABASE", "hemobank"),
		RedisURL:        os.Getenv("REDIS_URL"),
		BcryptCost:      envIntOr("BCRYPT_COST", 10),
		RequestTimeout:  envDurationOr("REQUEST_TIMEOUT", 15*time.Second),
		RateLimitWindow: envDurationOr("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitMax:    envIntOr("RATE_LIMIT_MAX", 30),
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
