package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds runtime settings. Flags override these after loading.
type Config struct {
	// DBPath is the attempt-log database. Empty means the XDG default.
	DBPath string

	// BankPath is a YAML or JSON question bank. Empty means the built-in bank.
	BankPath string

	// Delay is the pause between an accepted answer and the next question.
	// Default: 500ms.
	Delay time.Duration

	LogLevel  string // Default: "info"
	LogFile   string // Empty means no log file
	PrettyLog bool
}

// DefaultDelay matches the pause the quiz has always used between questions.
const DefaultDelay = 500 * time.Millisecond

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Delay:    DefaultDelay,
		LogLevel: zerolog.LevelInfoValue,
	}
}

// LoadDotEnv reads .env files into the process environment. Variables that
// are already set win. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

// FromEnv builds a Config from QUIZLINE_* environment variables, falling
// back to defaults for unset values. Every malformed value is reported.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	var errs []string

	cfg.DBPath = os.Getenv("QUIZLINE_DB")
	cfg.BankPath = os.Getenv("QUIZLINE_BANK")
	cfg.LogFile = os.Getenv("QUIZLINE_LOG_FILE")

	if v := os.Getenv("QUIZLINE_DELAY"); v != "" {
		d, err := ParseDelay(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("QUIZLINE_DELAY: %v", err))
		} else {
			cfg.Delay = d
		}
	}

	if v := os.Getenv("QUIZLINE_LOG_LEVEL"); v != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(v)); err != nil {
			errs = append(errs, fmt.Sprintf("QUIZLINE_LOG_LEVEL: unknown level %q", v))
		} else {
			cfg.LogLevel = strings.ToLower(v)
		}
	}

	if v := os.Getenv("QUIZLINE_PRETTY_LOG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("QUIZLINE_PRETTY_LOG: %q is not a boolean", v))
		} else {
			cfg.PrettyLog = b
		}
	}

	if len(errs) > 0 {
		return cfg, errors.New("invalid configuration:\n  " + strings.Join(errs, "\n  "))
	}
	return cfg, nil
}

// ParseDelay accepts a Go duration ("750ms", "1s") or a bare number of
// milliseconds. Negative delays are rejected.
func ParseDelay(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	d, err := time.ParseDuration(s)
	if err != nil {
		ms, convErr := strconv.Atoi(s)
		if convErr != nil {
			return 0, fmt.Errorf("invalid delay %q", s)
		}
		d = time.Duration(ms) * time.Millisecond
	}
	if d < 0 {
		return 0, fmt.Errorf("delay %s must not be negative", d)
	}
	return d, nil
}
