package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/quizline/internal/bank"
	"github.com/abhisek/quizline/internal/router"
	sessionscreen "github.com/abhisek/quizline/internal/screens/session"
)

func testHome(player string) *HomeScreen {
	return New(Deps{Bank: bank.Default(), Logger: zerolog.Nop()}, player)
}

func TestHome_PlayerDefaults(t *testing.T) {
	if got := testHome("").Player(); got != DefaultPlayer {
		t.Errorf("Player = %q, want %q", got, DefaultPlayer)
	}
	if got := testHome("  ada ").Player(); got != "ada" {
		t.Errorf("Player = %q, want %q", got, "ada")
	}
}

func TestHome_EnterMovesToMenuThenStarts(t *testing.T) {
	h := testHome("ada")
	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !h.menuFocus {
		t.Fatal("expected Enter in the name field to focus the menu")
	}

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected START QUIZ to produce a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*sessionscreen.SessionScreen); !ok {
		t.Errorf("pushed %T, want *session.SessionScreen", push.Screen)
	}
}

func TestHome_HistoryDisabledWithoutRepo(t *testing.T) {
	h := testHome("")
	if !h.menu.Items[1].Disabled {
		t.Error("expected HISTORY to be disabled without an event repo")
	}
}

func TestHome_UpFromTopReturnsToInput(t *testing.T) {
	h := testHome("")
	h.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	h.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if h.menuFocus {
		t.Error("expected focus back on the name field")
	}
}

func TestHome_View(t *testing.T) {
	if testHome("").View(80, 20) == "" {
		t.Error("expected non-empty view")
	}
}
