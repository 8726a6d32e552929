package app

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/marketloft/emporium/pkg/jwtx"
)

// ErrMissingSecretKey is returned when SHOP_SECRET_KEY is unset. The token
// codec cannot run without it and there is no safe default to invent.
var ErrMissingSecretKey = errors.New("SHOP_SECRET_KEY is required")

type Config struct {
	SecretKey string        // Required: HMAC key for signing access tokens
	Algorithm string        // Optional: HMAC algorithm (HS256, HS384, HS512) (default: HS256)
	Issuer    string        // Optional: issuer claim for tokens (default: emporium)
	TokenTTL  time.Duration // Optional: access token lifetime (default: 400m)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./shop.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment, loading a local .env
// file first when one exists.
func LoadConfig() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		SecretKey:           os.Getenv("SHOP_SECRET_KEY"),
		Algorithm:           getEnvOrDefault("SHOP_ALGORITHM", "HS256"),
		Issuer:              getEnvOrDefault("SHOP_ISSUER", "emporium"),
		TokenTTL:            getEnvDurationOrDefault("SHOP_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		DatabaseFile:        getEnvOrDefault("SHOP_DATABASE_FILE", "shop.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.SecretKey == "" {
		return Config{}, ErrMissingSecretKey
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
