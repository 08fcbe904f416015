package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const devVaultKey = "dev-vault-key-change-in-production"

var ErrVaultKeyRequired = errors.New("VAULT_KEY must be set in production environment")

// Config holds settings for the vault API server.
type Config struct {
	Port        string
	Env         string
	DatabaseDSN string

	// AuthSecret signs bearer tokens; empty disables authentication.
	AuthSecret  string
	TokenExpiry time.Duration

	VaultKey  string
	VaultSalt string

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the server configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseDSN:    getEnv("DATABASE_DSN", ""),
		AuthSecret:     getEnv("AUTH_SECRET", ""),
		TokenExpiry:    getDuration("TOKEN_EXPIRY", 24*time.Hour),
		VaultKey:       getEnv("VAULT_KEY", devVaultKey),
		VaultSalt:      getEnv("VAULT_SALT", "genvault"),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.Env == "production" && cfg.VaultKey == devVaultKey {
		return cfg, ErrVaultKeyRequired
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
