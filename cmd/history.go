package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizline/internal/screens/history"
	"github.com/abhisek/quizline/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past attempts from the attempt log",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, closeLog, err := setupLogger(cfg, os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		recs, err := st.EventRepo().QuerySessionSummaries(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}
		logger.Debug().Str("db", dbPath).Int("count", len(recs)).Msg("loaded history")

		printHistory(cmd.OutOrStdout(), recs)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of attempts to show (0 for all)")
}

func printHistory(w io.Writer, recs []store.SessionSummaryRecord) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No attempts found.")
		return
	}

	// Header.
	fmt.Fprintf(w, "%-19s  %-16s  %-24s  %s\n", "Started", "Player", "Bank", "Result")
	fmt.Fprintln(w, strings.Repeat("─", 90))

	for _, r := range recs {
		bankTitle := r.BankTitle
		if len(bankTitle) > 24 {
			bankTitle = bankTitle[:21] + "..."
		}
		fmt.Fprintf(w, "%-19s  %-16s  %-24s  %s\n",
			r.StartedAt.Format("2006-01-02 15:04:05"), r.Player, bankTitle, history.Outcome(r))
	}

	fmt.Fprintf(w, "\n%d attempts\n", len(recs))
}
