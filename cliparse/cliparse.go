// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults
const (
	DefaultPort       = 5000
	DefaultDatabase   = "coinchanger.db"
	DefaultAdminEmail = "admin@coinchanger.com"
	DefaultMaxAmount  = 1_000_000
	DefaultMaxCoins   = 100
	DefaultMaxSeries  = 1000
	DefaultCacheTTL   = 10 * time.Minute
	DefaultTokenTTL   = 7 * 24 * time.Hour
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	JWTSecret string
	TokenTTL  time.Duration

	// Admin account seeded at startup when AdminPassword is set
	AdminEmail    string
	AdminPassword string

	// Redis is used for the solve cache when set; otherwise memory
	RedisAddr string
	CacheTTL  time.Duration

	// Ceilings on untrusted solver input
	MaxAmount int
	MaxCoins  int
	MaxSeries int

	AllowedOrigins []string
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var origins string

	fs := flag.NewFlagSet("coinchanger", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite file path or postgres URL)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.RedisAddr, "redis", "", "Redis address for the solve cache")
	fs.StringVar(&origins, "origins", "", "Comma-separated CORS origins")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "JWT signing secret (prefer env)")
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Seed admin password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	var err error
	if cfg.Port == 0 {
		if cfg.Port, err = envInt("PORT", DefaultPort); err != nil {
			return Config{}, err
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = envString("DATABASE_URL", DefaultDatabase)
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envString("DATABASE_TYPE", "sqlite")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}
	if origins == "" {
		origins = os.Getenv("ALLOWED_ORIGINS")
	}
	cfg.AllowedOrigins = splitList(origins)

	// Secrets - JWT secret MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required (use --jwt-secret or JWT_SECRET env)")
	}

	cfg.AdminEmail = envString("ADMIN_EMAIL", DefaultAdminEmail)
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}

	if cfg.TokenTTL, err = envDuration("TOKEN_TTL", DefaultTokenTTL); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = envDuration("CACHE_TTL", DefaultCacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.MaxAmount, err = envInt("MAX_AMOUNT", DefaultMaxAmount); err != nil {
		return Config{}, err
	}
	if cfg.MaxCoins, err = envInt("MAX_COINS", DefaultMaxCoins); err != nil {
		return Config{}, err
	}
	if cfg.MaxSeries, err = envInt("MAX_SERIES", DefaultMaxSeries); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
