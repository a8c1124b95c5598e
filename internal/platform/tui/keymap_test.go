package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadhunter/internal/config"
	"github.com/vovakirdan/roadhunter/internal/core"
	"github.com/vovakirdan/roadhunter/internal/games/hunter"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", keyRunes("a"), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", keyRunes("d"), core.ActionRight, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"w", keyRunes("w"), core.ActionAscend, false},
		{"s", keyRunes("s"), core.ActionDescend, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p", keyRunes("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", keyRunes("r"), core.ActionRestart, false},
		{"m", keyRunes("m"), core.ActionToggleMusic, false},
		{"b", keyRunes("b"), core.ActionBack, false},
		{"q", keyRunes("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", keyRunes("z"), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tt.msg)
			if got != tt.want || isQuit != tt.isQuit {
				t.Errorf("MapKey = %v, %v; want %v, %v", got, isQuit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestPressHoldsForWindow(t *testing.T) {
	km := NewKeyMapperWithHold(3)
	km.Press(tea.KeyMsg{Type: tea.KeyLeft})

	first := km.Frame()
	if !first.Has(core.ActionLeft) || !first.Holding(core.ActionLeft) {
		t.Fatal("first frame should trigger and hold the action")
	}
	for i := 1; i < 3; i++ {
		f := km.Frame()
		if f.Has(core.ActionLeft) {
			t.Errorf("frame %d: press should only trigger once", i)
		}
		if !f.Holding(core.ActionLeft) {
			t.Errorf("frame %d: action should still be held", i)
		}
	}
	if km.Frame().Holding(core.ActionLeft) {
		t.Error("hold window should have expired")
	}
}

func TestRepeatRefreshesHold(t *testing.T) {
	km := NewKeyMapperWithHold(3)
	km.Press(keyRunes("d"))
	km.Frame()
	km.Frame()
	km.Press(keyRunes("d"))

	for i := 0; i < 3; i++ {
		if !km.Frame().Holding(core.ActionRight) {
			t.Fatalf("frame %d after repeat: action should be held", i)
		}
	}
	if km.Frame().Holding(core.ActionRight) {
		t.Error("hold should expire after the refreshed window")
	}
}

func TestRepeatDoesNotRetrigger(t *testing.T) {
	km := NewKeyMapperWithHold(3)
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			km.Press(tea.KeyMsg{Type: tea.KeySpace})
		}
		f := km.Frame()
		if f.Has(core.ActionFire) != (i == 0) {
			t.Errorf("frame %d: Has(fire) = %v", i, f.Has(core.ActionFire))
		}
		if !f.Holding(core.ActionFire) {
			t.Errorf("frame %d: fire should stay held between repeats", i)
		}
	}
}

func TestPressAfterHoldExpiresTriggers(t *testing.T) {
	km := NewKeyMapperWithHold(2)
	km.Press(tea.KeyMsg{Type: tea.KeySpace})
	km.Frame()
	km.Frame()
	km.Frame()

	km.Press(tea.KeyMsg{Type: tea.KeySpace})
	if !km.Frame().Has(core.ActionFire) {
		t.Error("a press after the hold expired should trigger again")
	}
}

func TestHeldSpaceShootsOnce(t *testing.T) {
	cfg := config.DefaultHunterConfig()
	cfg.Player.Health = 1000
	cfg.PowerUps.Enabled = false
	cfg.Enemies.SpawnIntervalMin = 10000
	cfg.Enemies.SpawnIntervalMax = 10000
	g := hunter.New()
	g.UseConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3})

	km := NewKeyMapper()
	km.Press(tea.KeyMsg{Type: tea.KeyEnter})
	g.Step(km.Frame())
	if g.Phase() != hunter.StatePlaying {
		t.Fatalf("phase = %s, want playing", g.Phase())
	}

	// Terminals repeat a held key roughly every 30ms, or every other tick.
	shots := 0
	for i := 0; i < 60; i++ {
		if i%2 == 0 {
			km.Press(tea.KeyMsg{Type: tea.KeySpace})
		}
		for _, ev := range g.Step(km.Frame()).Events {
			if ev.Kind == core.EventShot {
				shots++
			}
		}
	}
	if shots != 1 {
		t.Errorf("holding space fired %d shots, want 1", shots)
	}
}

func TestOppositeKeyReleasesHold(t *testing.T) {
	km := NewKeyMapperWithHold(10)
	km.Press(tea.KeyMsg{Type: tea.KeyLeft})
	km.Frame()
	km.Press(tea.KeyMsg{Type: tea.KeyRight})

	f := km.Frame()
	if f.Holding(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Holding(core.ActionRight) {
		t.Error("right should be held")
	}
}

func TestEdgeActionsAreNotHeld(t *testing.T) {
	km := NewKeyMapperWithHold(5)
	km.Press(keyRunes("p"))

	f := km.Frame()
	if !f.Has(core.ActionPause) {
		t.Fatal("pause should trigger")
	}
	if f.Held[core.ActionPause] {
		t.Error("pause should not be held")
	}
	if km.Frame().Has(core.ActionPause) {
		t.Error("pause should trigger only once")
	}
}

func TestQuitIsNotRecorded(t *testing.T) {
	km := NewKeyMapper()
	if _, isQuit := km.Press(keyRunes("q")); !isQuit {
		t.Fatal("q should be a quit request")
	}
	if km.Frame().Has(core.ActionQuit) {
		t.Error("quit should not reach the game")
	}
}

func TestRelease(t *testing.T) {
	km := NewKeyMapperWithHold(10)
	km.Press(tea.KeyMsg{Type: tea.KeySpace})
	km.Release()
	f := km.Frame()
	if f.Has(core.ActionFire) || f.Holding(core.ActionFire) {
		t.Error("Release should drop pending input")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{keyRunes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{keyRunes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{keyRunes("m"), MenuActionMusic},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionReplays},
		{keyRunes("q"), MenuActionQuit},
		{keyRunes("z"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
