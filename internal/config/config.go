package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth. Empty disables authentication.
	APIKey string

	// Request limits
	MaxInputBytes int64

	// Outline defaults
	DefaultMaxDepth    int
	IncludeLineNumbers bool

	// Latency stats
	StatsWindow time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("OUTLINE_API_KEY"),

		MaxInputBytes: envInt64("MAX_INPUT_BYTES", 10485760), // 10MB

		DefaultMaxDepth:    envInt("DEFAULT_MAX_DEPTH", 0),
		IncludeLineNumbers: envBool("INCLUDE_LINE_NUMBERS", true),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),
	}

	if cfg.MaxInputBytes <= 0 {
		cfg.MaxInputBytes = 10485760
	}
	if cfg.DefaultMaxDepth < 0 {
		cfg.DefaultMaxDepth = 0
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
