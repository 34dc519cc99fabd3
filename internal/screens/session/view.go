package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizline/internal/quiz"
	"github.com/abhisek/quizline/internal/scoring"
	"github.com/abhisek/quizline/internal/ui/components"
	"github.com/abhisek/quizline/internal/ui/theme"
)

func centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}

// renderQuestionView renders the current question, its input and the
// points progress bar.
func (s *SessionScreen) renderQuestionView(width int) string {
	q := s.question
	var b strings.Builder

	index := s.session.State().CurrentIndex
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", index+1, s.session.QuestionCount()))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d pts  ", q.Points))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight); pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(centered(width).Foreground(theme.Text).Bold(true).Render(q.Prompt))
	b.WriteString("\n\n")

	switch q.Kind {
	case quiz.KindMultipleChoice:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	case quiz.KindMatching:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.board.View(min(width-4, 90))))
	}
	b.WriteString("\n")

	if s.showingFeedback {
		b.WriteString(s.renderFeedback(width))
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString(centered(width).Foreground(theme.Error).Render(s.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderProgress(width)))
	return b.String()
}

func (s *SessionScreen) renderProgress(width int) string {
	p := s.session.Progress()
	bar := components.NewProgressBar("Points", p.Fraction(),
		fmt.Sprintf("%s / %d", scoring.Format(p.Score), p.TotalPossible),
		min(width-8, 60))
	return bar.View()
}

// renderFeedback shows the points awarded for the last answer.
func (s *SessionScreen) renderFeedback(width int) string {
	res := s.last
	if res == nil {
		return ""
	}
	q := s.question

	var line string
	var style lipgloss.Style
	switch {
	case res.FullCredit:
		line = fmt.Sprintf("Correct! +%s", scoring.Format(res.Delta))
		style = theme.Correct.Width(width).Align(lipgloss.Center)
	case res.Delta.Sign() > 0:
		line = fmt.Sprintf("Partly right: +%s of %d", scoring.Format(res.Delta), q.Points)
		style = theme.Partial.Width(width).Align(lipgloss.Center)
	default:
		line = "Not quite"
		style = theme.Incorrect.Width(width).Align(lipgloss.Center)
	}

	var b strings.Builder
	b.WriteString(style.Render(line))
	if !res.FullCredit && q.Kind == quiz.KindMultipleChoice {
		b.WriteString("\n")
		b.WriteString(centered(width).Foreground(theme.TextDim).
			Render("Correct answer: " + q.CorrectOption))
	}
	if q.Explanation != "" {
		b.WriteString("\n\n")
		exp := lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.Text).Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	}
	return b.String()
}

// renderFinishPrompt asks for the final submission once every question
// has an answer.
func (s *SessionScreen) renderFinishPrompt(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centered(width).Foreground(theme.Text).Bold(true).
		Render("All questions answered"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.TextDim).
		Render("Submit the quiz to see your results."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.finishButton.View()))
	b.WriteString("\n\n")
	if s.errMsg != "" {
		b.WriteString(centered(width).Foreground(theme.Error).Render(s.errMsg))
		b.WriteString("\n\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderProgress(width)))
	return b.String()
}

// renderQuitConfirm renders the leave confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(centered(width).Foreground(theme.Text).Bold(true).
		Render("Leave this quiz?"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.TextDim).
		Render("Your answers so far will not be scored as a finished attempt."))
	b.WriteString("\n\n")

	b.WriteString(centered(width).Foreground(theme.Error).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}
