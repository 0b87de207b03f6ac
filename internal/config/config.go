package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr         = ":8080"
	defaultWebAddr      = ":3000"
	defaultDatabaseURL  = "creatortrust.db"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultJWTAccessTTL = "24h"
	defaultAPIBaseURL   = "http://localhost:8080"
)

type Config struct {
	AppEnv       string
	Addr         string
	WebAddr      string
	DatabaseURL  string
	JWTSecret    string
	JWTAccessTTL time.Duration

	// APIBaseURL is where the web frontend reaches the API server.
	APIBaseURL string

	// MidtransServerKey enables real checkout links when set.
	MidtransServerKey string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := &Config{
		AppEnv:            envOrDefault("APP_ENV", "development"),
		Addr:              envOrDefault("ADDR", defaultAddr),
		WebAddr:           envOrDefault("WEB_ADDR", defaultWebAddr),
		DatabaseURL:       envOrDefault("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:         envOrDefault("JWT_SECRET", defaultJWTSecret),
		APIBaseURL:        envOrDefault("API_BASE_URL", defaultAPIBaseURL),
		MidtransServerKey: os.Getenv("MIDTRANS_SERVER_KEY"),
	}

	ttlRaw := envOrDefault("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		log.Printf("Invalid JWT_ACCESS_TTL %q, falling back to %s", ttlRaw, defaultJWTAccessTTL)
		ttl, _ = time.ParseDuration(defaultJWTAccessTTL)
	}
	cfg.JWTAccessTTL = ttl

	if cfg.AppEnv == "production" && cfg.JWTSecret == defaultJWTSecret {
		log.Println("WARNING: JWT_SECRET is the default value in production")
	}

	return cfg
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
