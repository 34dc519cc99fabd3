// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options selects where and how log lines are written.
type Options struct {
	Level  string
	File   string // append here when set
	Pretty bool   // human-readable console output instead of JSON

	// Fallback receives logs when File is empty. The TUI passes
	// io.Discard since it owns the terminal.
	Fallback io.Writer
}

// Setup builds a logger from opts, installs it as the global zerolog
// logger, and returns it with a close function for the log file.
func Setup(opts Options) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }

	level := zerolog.InfoLevel
	if opts.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("parse log level: %w", err)
		}
		level = l
	}

	var (
		out     io.Writer = opts.Fallback
		closeFn           = noop
	)
	if out == nil {
		out = os.Stderr
	}
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, NoColor: opts.File != ""}
	} else {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = logger
	return logger, closeFn, nil
}
