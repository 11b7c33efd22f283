package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrNegativeDays rejects a negative look-ahead window.
var ErrNegativeDays = errors.New("must not be negative")

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Config holds runtime settings for the friendex CLI.
type Config struct {
	DBPath       string
	LogCalls     bool
	UpcomingDays int
}

// DefaultConfig returns the settings used when nothing is configured.
// DBPath is left empty and resolved against the home directory by Load.
func DefaultConfig() Config {
	return Config{
		UpcomingDays: 30,
	}
}

// Load reads the optional env files (DefaultEnvFile when none are given),
// then the FRIENDEX_* environment variables. Variables already set in the
// process environment win over env file entries.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := DefaultConfig()
	cfg.DBPath = os.Getenv("FRIENDEX_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".friendex", "friendex.db")
	}
	if v := os.Getenv("FRIENDEX_LOG_CALLS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("FRIENDEX_LOG_CALLS %q: %w", v, err)
		}
		cfg.LogCalls = b
	}
	if v := os.Getenv("FRIENDEX_UPCOMING_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("FRIENDEX_UPCOMING_DAYS %q: %w", v, err)
		}
		if n < 0 {
			return Config{}, fmt.Errorf("FRIENDEX_UPCOMING_DAYS %q: %w", v, ErrNegativeDays)
		}
		cfg.UpcomingDays = n
	}
	return cfg, nil
}
