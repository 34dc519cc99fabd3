package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizline/internal/bank"
	"github.com/abhisek/quizline/internal/quiz"
	"github.com/abhisek/quizline/internal/store"
)

const testBank = "../internal/bank/testdata/valid.yaml"

// execute runs the root command with a clean environment and returns its
// stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"QUIZLINE_DB", "QUIZLINE_BANK", "QUIZLINE_DELAY", "QUIZLINE_LOG_LEVEL", "QUIZLINE_LOG_FILE", "QUIZLINE_PRETTY_LOG"} {
		t.Setenv(k, "")
	}
	return run(t, args...)
}

// run executes the root command and resets every flag afterwards, since
// cobra keeps parsed values on the package-level commands.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestQuestionsList(t *testing.T) {
	out, err := execute(t, "questions", "list", "--bank", testBank)
	require.NoError(t, err)

	assert.Contains(t, out, "Science & Algebra")
	assert.Contains(t, out, "multiple_choice")
	assert.Contains(t, out, "Match each planet with its description")
	assert.Contains(t, out, "3 questions, 45 points")
}

func TestQuestionsListBadBank(t *testing.T) {
	_, err := execute(t, "questions", "list", "--bank", "../internal/bank/testdata/zero_items.yaml")
	assert.ErrorIs(t, err, quiz.ErrInvalidQuestion)
}

func TestQuestionsCheck(t *testing.T) {
	out, err := execute(t, "questions", "check", testBank)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "3 questions, 45 points")
}

func TestQuestionsCheckInvalid(t *testing.T) {
	_, err := execute(t, "questions", "check", "../internal/bank/testdata/zero_items.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, quiz.ErrInvalidQuestion)
}

func TestQuestionsCheckMissingFile(t *testing.T) {
	_, err := execute(t, "questions", "check", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, quiz.ErrInvalidQuestion))
}

func TestHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	repo := st.EventRepo()
	require.NoError(t, repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: "s1", Action: store.ActionStart, Player: "ada", BankTitle: "Science", QuestionCount: 2,
	}))
	require.NoError(t, repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: "s1", Action: store.ActionFinish, Player: "ada", BankTitle: "Science", QuestionCount: 2,
		Answered: 2, Score: "20/3", TotalPossible: 30, Percentage: 22,
	}))
	require.NoError(t, repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: "s2", Action: store.ActionStart, Player: "bob", BankTitle: "Science", QuestionCount: 2,
	}))
	require.NoError(t, st.Close())

	out, err := execute(t, "history", "--db", dbPath, "--limit", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "ada")
	assert.Contains(t, out, "6.67/30 pts  22%")
	assert.Contains(t, out, "unfinished")
	assert.Contains(t, out, "2 attempts")

	// Newest first.
	assert.Less(t, strings.Index(out, "bob"), strings.Index(out, "ada"))

	out, err = execute(t, "history", "--db", dbPath, "--limit", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "ada")
	assert.Contains(t, out, "1 attempts")
}

func TestPrintHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil)
	assert.Equal(t, "No attempts found.\n", buf.String())
}

func TestPrintQuestionsTruncatesPrompt(t *testing.T) {
	b := bank.MustNew("Long", []quiz.Question{{
		ID:            1,
		Kind:          quiz.KindMultipleChoice,
		Prompt:        strings.Repeat("x", 60),
		Points:        5,
		Options:       []string{"a", "b"},
		CorrectOption: "a",
	}})

	var buf bytes.Buffer
	printQuestions(&buf, b)
	assert.Contains(t, buf.String(), strings.Repeat("x", 45)+"...")
	assert.NotContains(t, buf.String(), strings.Repeat("x", 46))
}

func TestDelayFlagOverridesEnv(t *testing.T) {
	t.Setenv("QUIZLINE_DELAY", "2s")

	var got time.Duration
	showDelay := &cobra.Command{
		Use: "show-delay",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			got = cfg.Delay
			return err
		},
	}
	rootCmd.AddCommand(showDelay)
	t.Cleanup(func() { rootCmd.RemoveCommand(showDelay) })

	_, err := run(t, "show-delay")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, got)

	_, err = run(t, "show-delay", "--delay", "250ms")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, got)

	_, err = run(t, "show-delay", "--delay=-1s")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "quizline "))
}
