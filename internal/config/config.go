package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	Port           string
	DatabaseURL    string
	RedisURL       string // empty disables the schedule cache
	MigrationsPath string

	StripeKey           string
	StripeWebhookSecret string

	CacheTTL time.Duration
}

// Load reads .env if present, then the environment. Only DATABASE_URL is
// mandatory; everything else has a default or degrades a feature.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisURL:            os.Getenv("REDIS_URL"),
		MigrationsPath:      getEnv("MIGRATIONS_PATH", "migrations"),
		StripeKey:           os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		CacheTTL:            12 * time.Hour,
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL not set")
	}
	if raw := os.Getenv("SCHEDULE_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.New("SCHEDULE_CACHE_TTL is not a valid duration")
		}
		cfg.CacheTTL = ttl
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
