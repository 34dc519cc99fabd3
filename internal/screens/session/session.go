package session

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizline/internal/quiz"
	"github.com/abhisek/quizline/internal/router"
	"github.com/abhisek/quizline/internal/screen"
	"github.com/abhisek/quizline/internal/scoring"
	"github.com/abhisek/quizline/internal/screens/summary"
	sess "github.com/abhisek/quizline/internal/session"
	"github.com/abhisek/quizline/internal/store"
	"github.com/abhisek/quizline/internal/ui/components"
	"github.com/abhisek/quizline/internal/ui/layout"
)

// SessionScreen implements screen.Screen for a quiz attempt.
type SessionScreen struct {
	session  *sess.Session
	recorder *store.Recorder
	delay    time.Duration

	question quiz.Question
	mc       components.MultiChoice
	board    components.MatchBoard

	showingFeedback    bool
	feedbackSeq        int
	last               *sess.SubmitResult
	awaitingFinish     bool
	finishButton       components.Button
	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)
var _ screen.EscHandler = (*SessionScreen)(nil)

// New creates a SessionScreen for s. delay is the pause between an
// accepted answer and the next question.
func New(s *sess.Session, recorder *store.Recorder, delay time.Duration) *SessionScreen {
	scr := &SessionScreen{
		session:  s,
		recorder: recorder,
		delay:    delay,
	}
	scr.finishButton = components.NewButton("Submit quiz", func() tea.Cmd {
		return func() tea.Msg { return finishMsg{} }
	}, "enter", "s")
	return scr
}

func (s *SessionScreen) Init() tea.Cmd {
	s.recorder.Start(context.Background(), s.session)
	s.loadQuestion()
	return nil
}

func (s *SessionScreen) Title() string {
	return s.session.BankTitle()
}

func (s *SessionScreen) HandlesEsc() bool {
	return true
}

func (s *SessionScreen) Status() string {
	p := s.session.Progress()
	return fmt.Sprintf("Score %s / %d", scoring.Format(p.Score), p.TotalPossible)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case s.awaitingFinish:
		return []layout.KeyHint{
			{Key: "Enter/S", Description: "Submit quiz"},
			{Key: "Esc", Description: "Leave"},
		}
	case s.question.Kind == quiz.KindMatching:
		return []layout.KeyHint{
			{Key: "↑↓←→", Description: "Move"},
			{Key: "Enter", Description: "Pick/Drop"},
			{Key: "X", Description: "Clear"},
			{Key: "S", Description: "Submit"},
			{Key: "Esc", Description: "Leave"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "1-9", Description: "Pick"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Leave"},
		}
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if s.awaitingFinish {
		return s.renderFinishPrompt(width)
	}
	return s.renderQuestionView(width)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if s.showingFeedback && msg.seq == s.feedbackSeq {
			return s.advance()
		}
		return s, nil

	case finishMsg:
		return s.finish()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// loadQuestion prepares the input component for the current question.
func (s *SessionScreen) loadQuestion() {
	q, err := s.session.CurrentQuestion()
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.question = q
	s.errMsg = ""
	switch q.Kind {
	case quiz.KindMultipleChoice:
		s.mc = components.NewMultiChoice(q.Options)
	case quiz.KindMatching:
		s.board = components.NewMatchBoard(q.Items, q.Targets)
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.recorder.Abandon(context.Background(), s.session)
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	// Any key skips the rest of the feedback pause.
	if s.showingFeedback {
		return s.advance()
	}

	if key == "esc" {
		s.showingQuitConfirm = true
		return s, nil
	}

	if s.awaitingFinish {
		var cmd tea.Cmd
		s.finishButton, cmd = s.finishButton.Update(msg)
		return s, cmd
	}

	switch s.question.Kind {
	case quiz.KindMultipleChoice:
		s.mc, _ = s.mc.Update(msg)
		if s.mc.Submitted() {
			return s.submit(quiz.MultipleChoiceAnswer{Option: s.mc.Choice()})
		}
	case quiz.KindMatching:
		s.board, _ = s.board.Update(msg)
		if s.board.Submitted() {
			return s.submit(s.board.Answer())
		}
	}
	return s, nil
}

// submit hands the answer to the session and starts the feedback pause.
func (s *SessionScreen) submit(ans quiz.Answer) (screen.Screen, tea.Cmd) {
	res, err := s.session.Submit(s.question.ID, ans)
	if err != nil {
		s.errMsg = err.Error()
		s.mc.Reopen()
		s.board.Reopen()
		return s, nil
	}
	s.recorder.Answer(context.Background(), s.session, res.QuestionID)

	s.last = &res
	s.showingFeedback = true
	s.feedbackSeq++
	switch s.question.Kind {
	case quiz.KindMultipleChoice:
		s.mc.Reveal(s.question.CorrectOption)
	case quiz.KindMatching:
		s.board.Reveal(s.question.Pairing)
	}

	seq := s.feedbackSeq
	if s.delay <= 0 {
		return s, func() tea.Msg { return feedbackDoneMsg{seq: seq} }
	}
	return s, tea.Tick(s.delay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{seq: seq}
	})
}

// advance leaves the feedback pause for the next question, or for the
// final submission prompt after the last one.
func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	if s.last != nil && s.last.State.AwaitingFinish {
		s.awaitingFinish = true
		return s, nil
	}
	s.loadQuestion()
	return s, nil
}

func (s *SessionScreen) finish() (screen.Screen, tea.Cmd) {
	if _, err := s.session.Finish(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.recorder.Finish(context.Background(), s.session)

	results := summary.New(sess.BuildSummary(s.session))
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results}
	}
}
