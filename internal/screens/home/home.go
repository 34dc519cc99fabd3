package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/quizline/internal/bank"
	"github.com/abhisek/quizline/internal/router"
	"github.com/abhisek/quizline/internal/screen"
	"github.com/abhisek/quizline/internal/screens/history"
	sessionscreen "github.com/abhisek/quizline/internal/screens/session"
	"github.com/abhisek/quizline/internal/session"
	"github.com/abhisek/quizline/internal/store"
	"github.com/abhisek/quizline/internal/ui/components"
	"github.com/abhisek/quizline/internal/ui/theme"
)

// DefaultPlayer is recorded when the name field is left empty.
const DefaultPlayer = "anonymous"

// Deps are the collaborators the home screen hands to the screens it opens.
type Deps struct {
	Bank      *bank.Bank
	EventRepo store.EventRepo // nil disables recording and history
	Delay     time.Duration
	Logger    zerolog.Logger
}

// HomeScreen shows the loaded bank, a player name field and the main menu.
type HomeScreen struct {
	deps      Deps
	input     components.TextInput
	menu      components.Menu
	menuFocus bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps, player string) *HomeScreen {
	h := &HomeScreen{
		deps:  deps,
		input: components.NewTextInput("Your name", 24),
	}
	h.input.Model.SetValue(player)

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "START QUIZ", Action: h.startQuiz},
		{Label: "HISTORY", Action: h.openHistory, Disabled: deps.EventRepo == nil},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

// Player returns the name to record for the next attempt.
func (h *HomeScreen) Player() string {
	if v := h.input.Value(); v != "" {
		return v
	}
	return DefaultPlayer
}

func (h *HomeScreen) startQuiz() tea.Cmd {
	s := session.New(h.deps.Bank)
	rec := store.NewRecorder(h.deps.EventRepo, h.Player(),
		h.deps.Logger.With().Str("session_id", s.ID()).Logger())
	h.deps.Logger.Info().Str("session_id", s.ID()).Str("player", h.Player()).Msg("quiz started")

	scr := sessionscreen.New(s, rec, h.deps.Delay)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: scr}
	}
}

func (h *HomeScreen) openHistory() tea.Cmd {
	scr := history.New(h.deps.EventRepo)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: scr}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.input.Init()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			return h, h.setMenuFocus(!h.menuFocus)
		case "enter", "down":
			if !h.menuFocus {
				return h, h.setMenuFocus(true)
			}
		case "up":
			if h.menuFocus && h.menu.Selected == 0 {
				return h, h.setMenuFocus(false)
			}
		}
	}

	var cmd tea.Cmd
	if h.menuFocus {
		h.menu, cmd = h.menu.Update(msg)
	} else {
		h.input, cmd = h.input.Update(msg)
	}
	return h, cmd
}

func (h *HomeScreen) setMenuFocus(menu bool) tea.Cmd {
	h.menuFocus = menu
	if menu {
		h.input.Blur()
		return nil
	}
	return h.input.Focus()
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	b := h.deps.Bank

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(b.Title())
	stats := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d questions · %d points", b.Len(), b.TotalPoints()))

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Player ")
	if !h.menuFocus {
		label = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Player ")
	}

	sections := []string{
		title + "\n" + stats,
		components.Card(label+h.input.View(), cw),
		h.menu.View(),
	}
	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
