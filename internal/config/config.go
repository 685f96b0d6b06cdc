// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"fitweeks/internal/weekid"
)

// Config is the full runtime configuration.
type Config struct {
	DBPath       string
	RosterPath   string
	StartWeek    string
	TotalWeeks   int
	IncludeStart bool
	Parallelism  int
	APIPort      int

	ProviderKey   string
	ProviderURL   string
	ProviderModel string
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// Load reads configuration from a .env file (if present) and the
// environment. Environment variables win over file values.
func Load() (Config, error) {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg := Config{
		DBPath:       envStr("FITWEEKS_DB", "data/fitweeks.db"),
		RosterPath:   envStr("FITWEEKS_ROSTER", "personas.json"),
		StartWeek:    envStr("FITWEEKS_START_WEEK", "2025-W46"),
		TotalWeeks:   envInt("FITWEEKS_TOTAL_WEEKS", 54),
		IncludeStart: envBool("FITWEEKS_INCLUDE_START", true),
		Parallelism:  envInt("FITWEEKS_PARALLELISM", 4),
		APIPort:      envInt("FITWEEKS_API_PORT", 8080),

		ProviderKey:   envStr("ANTHROPIC_API_KEY", ""),
		ProviderURL:   envStr("ANTHROPIC_URL", ""),
		ProviderModel: envStr("ANTHROPIC_MODEL", ""),
	}

	if _, _, err := weekid.Parse(cfg.StartWeek); err != nil {
		return Config{}, fmt.Errorf("FITWEEKS_START_WEEK: %w", err)
	}
	if cfg.TotalWeeks < 1 {
		return Config{}, fmt.Errorf("FITWEEKS_TOTAL_WEEKS must be positive, got %d", cfg.TotalWeeks)
	}
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}
	return cfg, nil
}
