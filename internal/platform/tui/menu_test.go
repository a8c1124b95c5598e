package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadhunter/internal/core"
	"github.com/vovakirdan/roadhunter/internal/games/hunter"
	"github.com/vovakirdan/roadhunter/internal/replay"
	"github.com/vovakirdan/roadhunter/internal/storage"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "", false, false)
	if len(m.items) < 2 {
		t.Fatalf("menu has %d items, want both variants", len(m.items))
	}
	if m.Difficulty() != "normal" {
		t.Errorf("default difficulty = %q, want normal", m.Difficulty())
	}
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "hard", false, false)
	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, "fixed"},
		{tea.KeyMsg{Type: tea.KeyRight}, "easy"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "fixed"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "hard"},
	}
	for _, tt := range tests {
		m = menuKey(t, m, tt.msg)
		if m.Difficulty() != tt.want {
			t.Errorf("after %s difficulty = %q, want %q", tt.msg.String(), m.Difficulty(), tt.want)
		}
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "easy", false, false)
	m = menuKey(t, m, keyRunes("m"))
	if !m.Music() {
		t.Error("m should switch music on")
	}
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.WantsReplays() {
		t.Error("tab should do nothing without replay storage")
	}

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != hunter.IDClassic {
		t.Errorf("selected = %+v, want the classic variant", m.Selected())
	}
}

func TestMenuReplaysAndQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "", false, true)
	if got := menuKey(t, m, tea.KeyMsg{Type: tea.KeyTab}); !got.WantsReplays() {
		t.Error("tab should open the replay browser")
	}
	if got := menuKey(t, m, keyRunes("q")); !got.IsQuitting() {
		t.Error("q should quit")
	}
}

func seedReplays(t *testing.T, store *storage.Store) {
	t.Helper()
	for _, id := range []string{hunter.IDHunter, hunter.IDClassic, hunter.IDHunter} {
		_, err := store.SaveReplay(storage.Replay{
			GameID:   id,
			Seed:     1,
			TickRate: 60,
			Ticks:    3,
			Inputs:   replay.Encode([]uint32{0, 0, 0}),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
}

func replaysKey(t *testing.T, m ReplaysModel, msg tea.KeyMsg) ReplaysModel {
	t.Helper()
	next, _ := m.Update(msg)
	rm, ok := next.(ReplaysModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return rm
}

func TestReplaysBrowserFilters(t *testing.T) {
	store := openTestStore(t)
	seedReplays(t, store)

	m := NewReplaysModel(store, 100, 30)
	if len(m.replays) != 3 {
		t.Fatalf("all filter shows %d replays, want 3", len(m.replays))
	}

	m = replaysKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.replays) != 2 {
		t.Errorf("hunter filter shows %d replays, want 2", len(m.replays))
	}
	m = replaysKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.replays) != 1 {
		t.Errorf("classic filter shows %d replays, want 1", len(m.replays))
	}
	m = replaysKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.replays) != 3 {
		t.Errorf("filter should wrap back to all, got %d", len(m.replays))
	}
}

func TestReplaysBrowserDeleteAndWatch(t *testing.T) {
	store := openTestStore(t)
	seedReplays(t, store)

	m := NewReplaysModel(store, 100, 30)
	m = replaysKey(t, m, keyRunes("x"))
	if len(m.replays) != 2 {
		t.Fatalf("after delete %d replays remain, want 2", len(m.replays))
	}

	m = replaysKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	w := m.Watch()
	if w == nil {
		t.Fatal("enter should pick a replay")
	}
	if len(w.Inputs) == 0 {
		t.Error("watched replay should be fully loaded")
	}
}

func TestReplaysBrowserWithoutStore(t *testing.T) {
	m := NewReplaysModel(nil, 80, 24)
	if m.View() == "" {
		t.Error("browser should render a placeholder without storage")
	}
	m = replaysKey(t, m, keyRunes("b"))
	if !m.IsGoingBack() {
		t.Error("b should go back")
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks, rate int
		want        string
	}{
		{0, 60, "0:00"},
		{90 * 60, 60, "1:30"},
		{30, 30, "0:01"},
		{120, 0, "0:02"},
	}
	for _, tt := range tests {
		if got := formatTicks(tt.ticks, tt.rate); got != tt.want {
			t.Errorf("formatTicks(%d, %d) = %q, want %q", tt.ticks, tt.rate, got, tt.want)
		}
	}
}

func TestSessionFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	store := openTestStore(t)

	s := NewSessionModel(SessionOptions{Store: store}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		var ok bool
		if s, ok = next.(SessionModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}

	step(tea.KeyMsg{Type: tea.KeyRight}) // hard
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.view != viewGame {
		t.Fatal("enter should start a game")
	}
	g, ok := s.game.game.(*hunter.Game)
	if !ok {
		t.Fatalf("session game is %T", s.game.game)
	}
	if g.Config().Player.Health != 80 {
		t.Errorf("session difficulty not applied: health = %d", g.Config().Player.Health)
	}

	step(keyRunes("b"))
	if s.view != viewMenu {
		t.Fatal("b on the start screen should return to the menu")
	}
	if s.menu.Difficulty() != "hard" {
		t.Errorf("menu should remember the difficulty, got %q", s.menu.Difficulty())
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.view != viewReplays {
		t.Fatal("tab should open the replay browser")
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.view != viewMenu {
		t.Error("esc should return to the menu")
	}

	step(keyRunes("q"))
	if !s.quitting {
		t.Error("q should end the session")
	}
}
