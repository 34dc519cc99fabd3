package summary

import (
	"math/big"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizline/internal/quiz"
	"github.com/abhisek/quizline/internal/session"
)

func testSummary() *session.SessionSummary {
	return &session.SessionSummary{
		SessionID:     "test-session",
		BankTitle:     "Science & Algebra",
		Duration:      95 * time.Second,
		Completed:     true,
		Score:         big.NewRat(25, 1),
		TotalPossible: 30,
		Percentage:    83,
		FullCredit:    1,
		Results: []session.QuestionResult{
			{
				QuestionID: 1,
				Kind:       quiz.KindMultipleChoice,
				Prompt:     "What role does sunlight play in photosynthesis?",
				Points:     10,
				Answered:   true,
				Awarded:    big.NewRat(10, 1),
				FullCredit: true,
			},
			{
				QuestionID: 2,
				Kind:       quiz.KindMatching,
				Prompt:     "Match the algebraic terms with their definitions",
				Points:     20,
				Answered:   true,
				Awarded:    big.NewRat(15, 1),
			},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestHeadline(t *testing.T) {
	if got, want := Headline(testSummary()), "25 / 30 points (83%)"; got != want {
		t.Errorf("Headline = %q, want %q", got, want)
	}

	sum := testSummary()
	sum.Score = big.NewRat(20, 3)
	sum.Percentage = 22
	if got, want := Headline(sum), "6.67 / 30 points (22%)"; got != want {
		t.Errorf("Headline = %q, want %q", got, want)
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(100, 30)
	if !strings.Contains(view, "Quiz complete!") {
		t.Error("expected completion title in view")
	}
	if !strings.Contains(view, "15/20") {
		t.Error("expected partial matching points in view")
	}
}

func TestSummaryScreen_Status(t *testing.T) {
	if got := New(testSummary()).Status(); got != "83%" {
		t.Errorf("Status = %q, want %q", got, "83%")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
