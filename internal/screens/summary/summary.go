package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizline/internal/quiz"
	"github.com/abhisek/quizline/internal/router"
	"github.com/abhisek/quizline/internal/screen"
	"github.com/abhisek/quizline/internal/scoring"
	"github.com/abhisek/quizline/internal/session"
	"github.com/abhisek/quizline/internal/ui/components"
	"github.com/abhisek/quizline/internal/ui/layout"
	"github.com/abhisek/quizline/internal/ui/theme"
)

// SummaryScreen displays the result of a finished quiz.
type SummaryScreen struct {
	summary *session.SessionSummary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) Status() string {
	if s.summary == nil {
		return ""
	}
	return fmt.Sprintf("%d%%", s.summary.Percentage)
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// Headline returns the score line, e.g. "25 / 30 points (83%)".
func Headline(sum *session.SessionSummary) string {
	return fmt.Sprintf("%s / %d points (%d%%)",
		scoring.Format(sum.Score), sum.TotalPossible, sum.Percentage)
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(Headline(sum)))
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time: %d:%02d    Full marks on %d of %d",
			mins, secs, sum.FullCredit, len(sum.Results))))
	b.WriteString("\n\n")

	cw := components.ContentWidth(width)
	bar := components.NewProgressBar("", float64(sum.Percentage)/100, "", cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	var rows strings.Builder
	for i, r := range sum.Results {
		if i > 0 {
			rows.WriteString("\n")
		}
		rows.WriteString(renderResult(r, cw-6))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(rows.String(), cw)))

	return b.String()
}

// renderResult renders one question row: mark, prompt and points.
func renderResult(r session.QuestionResult, width int) string {
	mark, style := "✗", theme.Incorrect
	switch {
	case !r.Answered:
		mark, style = "–", lipgloss.NewStyle().Foreground(theme.TextDim)
	case r.FullCredit:
		mark, style = "✓", theme.Correct
	case r.Awarded.Sign() > 0:
		mark, style = "◐", theme.Partial
	}

	points := fmt.Sprintf("%s/%d", scoring.Format(r.Awarded), r.Points)
	kind := "choice"
	if r.Kind == quiz.KindMatching {
		kind = "matching"
	}

	prompt := r.Prompt
	room := width - lipgloss.Width(points) - len(kind) - 8
	if room < 10 {
		room = 10
	}
	if runes := []rune(prompt); len(runes) > room {
		prompt = string(runes[:room-1]) + "…"
	}

	left := style.Render(mark) + " " +
		lipgloss.NewStyle().Foreground(theme.Text).Render(prompt) + " " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("("+kind+")")
	pad := width - lipgloss.Width(left) - lipgloss.Width(points)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + style.Render(points)
}
