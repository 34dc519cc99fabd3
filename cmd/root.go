package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizline/internal/bank"
	"github.com/abhisek/quizline/internal/config"
	"github.com/abhisek/quizline/internal/logging"
	"github.com/abhisek/quizline/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "quizline",
	Short:        "Terminal quiz runner",
	Long:         "Quizline runs multiple-choice and matching quizzes in the terminal and keeps a log of every attempt.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZLINE_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Question bank file, YAML or JSON (overrides QUIZLINE_BANK env var)")
	rootCmd.PersistentFlags().String("delay", "", "Pause after each answer, e.g. 500ms (overrides QUIZLINE_DELAY env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Append logs to this file")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads .env and QUIZLINE_* variables, then applies any flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath, _ = flags.GetString("db")
	}
	if flags.Changed("bank") {
		cfg.BankPath, _ = flags.GetString("bank")
	}
	if flags.Changed("delay") {
		v, _ := flags.GetString("delay")
		d, err := config.ParseDelay(v)
		if err != nil {
			return cfg, fmt.Errorf("--delay: %w", err)
		}
		cfg.Delay = d
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	return cfg, nil
}

// setupLogger installs the process logger. Subcommands log to stderr unless
// a log file is configured; the TUI passes io.Discard.
func setupLogger(cfg config.Config, fallback io.Writer) (zerolog.Logger, func() error, error) {
	return logging.Setup(logging.Options{
		Level:    cfg.LogLevel,
		File:     cfg.LogFile,
		Pretty:   cfg.PrettyLog,
		Fallback: fallback,
	})
}

// resolveDBPath returns the database path from the --db flag or QUIZLINE_DB
// (already folded into cfg), then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// loadBank returns the configured bank, or the built-in one.
func loadBank(cfg config.Config) (*bank.Bank, error) {
	if cfg.BankPath == "" {
		return bank.Default(), nil
	}
	b, err := bank.Load(cfg.BankPath)
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	return b, nil
}
