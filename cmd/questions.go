package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizline/internal/bank"
	"github.com/abhisek/quizline/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Inspect question banks",
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions in the configured bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank(cfg)
		if err != nil {
			return err
		}
		printQuestions(cmd.OutOrStdout(), b)
		return nil
	},
}

var questionsCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a bank file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(args[0])
		if err != nil {
			if errors.Is(err, quiz.ErrInvalidQuestion) {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%q, %d questions, %d points)\n",
			args[0], b.Title(), b.Len(), b.TotalPoints())
		return nil
	},
}

func init() {
	questionsCmd.AddCommand(questionsListCmd)
	questionsCmd.AddCommand(questionsCheckCmd)
}

func printQuestions(w io.Writer, b *bank.Bank) {
	fmt.Fprintf(w, "%s\n\n", b.Title())

	// Header.
	fmt.Fprintf(w, "%4s  %-16s  %6s  %s\n", "ID", "Kind", "Points", "Prompt")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, q := range b.Questions() {
		prompt := q.Prompt
		if len(prompt) > 48 {
			prompt = prompt[:45] + "..."
		}
		fmt.Fprintf(w, "%4d  %-16s  %6d  %s\n", q.ID, q.Kind, q.Points, prompt)
	}

	fmt.Fprintf(w, "\n%d questions, %d points\n", b.Len(), b.TotalPoints())
}
