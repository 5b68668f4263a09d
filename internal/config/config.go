package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"medconnect/internal/auth"
)

type Config struct {
	Environment string
	RedisAddr   string
	Instance    string
	JWTSecret   string
	AdminEmail  string
	// AdminCredHash is the bcrypt hash of the reserved admin credential.
	// The plaintext never leaves Load.
	AdminCredHash string
	// AuthDelay simulates the credential backend's round trip. Applied
	// by the mock verifier, never by the identity store itself.
	AuthDelay time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: env("ENV", "development"),
		RedisAddr:   env("MEDCONNECT_REDIS_ADDR", "localhost:6379"),
		Instance:    env("MEDCONNECT_INSTANCE", "default"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		AdminEmail:  env("ADMIN_EMAIL", "admin@medconnect.com"),
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}
	if h := os.Getenv("ADMIN_PASSWORD_HASH"); h != "" {
		cfg.AdminCredHash = h
	} else {
		h, err := auth.HashPassword(env("ADMIN_PASSWORD", "admin123"))
		if err != nil {
			return nil, fmt.Errorf("hashing admin credential: %w", err)
		}
		cfg.AdminCredHash = h
	}
	if raw := os.Getenv("MOCK_AUTH_DELAY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("MOCK_AUTH_DELAY: %w", err)
		}
		cfg.AuthDelay = d
	}
	return cfg, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
