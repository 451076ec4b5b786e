package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/passforge/passforge-go/internal/password"
)

// Config holds process-level settings read from the environment. Values seed
// CLI flag defaults; the generator itself only takes explicit parameters.
type Config struct {
	DefaultLength int
	LogLevel      slog.Level
	NoColor       bool
}

// Load reads configuration from PASSFORGE_* environment variables, falling
// back to defaults for anything unset or malformed.
func Load() Config {
	cfg := Config{
		DefaultLength: getEnvInt("PASSFORGE_DEFAULT_LENGTH", 16),
		LogLevel:      getEnvLevel("PASSFORGE_LOG_LEVEL", slog.LevelInfo),
		NoColor:       getEnvBool("PASSFORGE_NO_COLOR", false),
	}

	if cfg.DefaultLength < password.MinLength || cfg.DefaultLength > password.MaxLength {
		slog.Warn("PASSFORGE_DEFAULT_LENGTH outside allowed range, using 16",
			"value", cfg.DefaultLength, "min", password.MinLength, "max", password.MaxLength)
		cfg.DefaultLength = 16
	}

	return cfg
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
		slog.Warn("invalid integer in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return b
}

func getEnvLevel(key string, fallback slog.Level) slog.Level {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		slog.Warn("unknown log level, using fallback", "key", key, "value", v)
		return fallback
	}
	return level
}
