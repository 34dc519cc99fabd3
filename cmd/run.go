package cmd

import (
	"fmt"
	"io"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizline/internal/app"
	"github.com/abhisek/quizline/internal/store"
)

// runApp opens the store, loads the bank, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	b, err := loadBank(cfg)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logger.Info().Str("bank", b.Title()).Int("questions", b.Len()).Str("db", dbPath).
		Dur("delay", cfg.Delay).Msg("starting quiz")

	return app.Run(app.Options{
		Bank:      b,
		EventRepo: st.EventRepo(),
		Delay:     cfg.Delay,
		Player:    currentUser(),
		Logger:    logger,
	})
}

// currentUser pre-fills the player name; the player can change it on the
// home screen.
func currentUser() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}
