// Package config loads the process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Session store drivers.
const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
	SessionStoreRedis    = "redis"
)

// Config is the full process configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	Session     SessionConfig
	OIDC        OIDCConfig
}

// SessionConfig selects and tunes the session backing store.
type SessionConfig struct {
	Store         string
	TTL           time.Duration
	SweepInterval time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// OIDCConfig configures the optional SSO login. SSO stays disabled
// unless both issuer and client ID are set.
type OIDCConfig struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether the SSO login flow should be wired up.
func (o OIDCConfig) Enabled() bool {
	return o.Issuer != "" && o.ClientID != ""
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	cfg := Config{
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Session: SessionConfig{
			Store:         getEnv("SESSION_STORE", SessionStoreMemory),
			TTL:           time.Duration(getEnvInt("SESSION_TTL_SEC", 86400)) * time.Second,
			SweepInterval: time.Duration(getEnvInt("SESSION_SWEEP_INTERVAL_SEC", 600)) * time.Second,
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
		},
		OIDC: OIDCConfig{
			Issuer:       getEnv("OIDC_ISSUER", ""),
			ClientID:     getEnv("OIDC_CLIENT_ID", ""),
			ClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("OIDC_REDIRECT_URL", ""),
		},
	}

	if cfg.Addr == "" {
		return Config{}, fmt.Errorf("ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	switch cfg.Session.Store {
	case SessionStoreMemory, SessionStorePostgres:
	case SessionStoreRedis:
		if cfg.Session.RedisAddr == "" {
			return Config{}, fmt.Errorf("REDIS_ADDR is required when SESSION_STORE=redis")
		}
	default:
		return Config{}, fmt.Errorf("SESSION_STORE must be one of memory, postgres, redis; got %q", cfg.Session.Store)
	}
	if cfg.Session.TTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL_SEC must be > 0")
	}
	if cfg.Session.SweepInterval <= 0 {
		return Config{}, fmt.Errorf("SESSION_SWEEP_INTERVAL_SEC must be > 0")
	}
	if cfg.OIDC.Enabled() && cfg.OIDC.RedirectURL == "" {
		return Config{}, fmt.Errorf("OIDC_REDIRECT_URL is required when SSO is configured")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
