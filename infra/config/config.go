package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultViewBudget = 10
	defaultWrapWidth  = 72
	minWrapWidth      = 20
	maxWrapWidth      = 200
)

// Config holds application-level configuration.
type Config struct {
	LogPath    string // Debug log file; empty disables logging
	SeedPath   string // Optional JSON fixture loaded at start-up
	ViewBudget int    // Default view budget offered for advanced posts
	WrapWidth  int    // Column width used to render post text
}

// Load reads configuration from environment variables, after applying an
// optional dotenv file. Variables already set in the environment win.
//
//	SOCIALFEED_ENV_FILE     dotenv file (default: ".env", ignored if missing)
//	SOCIALFEED_LOG          debug log path (default: disabled)
//	SOCIALFEED_SEED         JSON seed fixture (default: none)
//	SOCIALFEED_VIEW_BUDGET  default advanced post view budget (default: 10)
//	SOCIALFEED_WRAP         render width, 20..200 (default: 72)
func Load() (Config, error) {
	envFile := os.Getenv("SOCIALFEED_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	budget, err := intEnv("SOCIALFEED_VIEW_BUDGET", defaultViewBudget)
	if err != nil {
		return Config{}, err
	}
	if budget < 0 {
		return Config{}, fmt.Errorf("invalid SOCIALFEED_VIEW_BUDGET: must not be negative")
	}

	wrap, err := intEnv("SOCIALFEED_WRAP", defaultWrapWidth)
	if err != nil {
		return Config{}, err
	}
	if wrap < minWrapWidth || wrap > maxWrapWidth {
		return Config{}, fmt.Errorf("invalid SOCIALFEED_WRAP: must be between %d and %d", minWrapWidth, maxWrapWidth)
	}

	return Config{
		LogPath:    strings.TrimSpace(os.Getenv("SOCIALFEED_LOG")),
		SeedPath:   strings.TrimSpace(os.Getenv("SOCIALFEED_SEED")),
		ViewBudget: budget,
		WrapWidth:  wrap,
	}, nil
}

func intEnv(name string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not an integer", name, raw)
	}
	return v, nil
}
