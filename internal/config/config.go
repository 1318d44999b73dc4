// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/jwulff/diabeyes-go/internal/advice"
)

// Storage backends.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds runtime settings.
type Config struct {
	Store          string
	DBPath         string
	RedisAddr      string
	RedisNamespace string
	ProfileKey     string
	AdviceURL      string
	AdviceTimeout  time.Duration
	Port           string
	LogMode        string
}

// Load reads configuration from the environment with defaults.
// Precedence: explicit env var > .env file > default. ProfileKey stays empty
// unless set, leaving the profile store on its own default key.
func Load() Config {
	// A missing .env file is normal.
	_ = godotenv.Load()

	return Config{
		Store:          strings.ToLower(getEnv("DIABEYES_STORE", StoreSQLite)),
		DBPath:         getEnv("DIABEYES_DB_PATH", "diabeyes.db"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisNamespace: getEnv("REDIS_NAMESPACE", "diabeyes"),
		ProfileKey:     getEnv("DIABEYES_PROFILE_KEY", ""),
		AdviceURL:      getEnv("DIABEYES_ADVICE_URL", advice.DefaultBaseURL),
		AdviceTimeout:  Duration("DIABEYES_ADVICE_TIMEOUT", advice.DefaultTimeout),
		Port:           getEnv("PORT", "8080"),
		LogMode:        getEnv("LOG_MODE", "development"),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Bool reads an env var as bool with default.
func Bool(name string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Duration reads an env var as a Go duration ("15s") with default.
func Duration(name string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
