package gfx

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/roadhunter/internal/config"
	"github.com/vovakirdan/roadhunter/internal/core"
	"github.com/vovakirdan/roadhunter/internal/games/hunter"
	"github.com/vovakirdan/roadhunter/internal/storage"
)

// fakeKeys drives a Window without an Ebiten loop.
type fakeKeys struct {
	down map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{down: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeKeys) tap(k ebiten.Key) {
	f.down[k] = true
	f.just[k] = true
}

func (f *fakeKeys) state() keyState {
	return keyState{
		pressed: func(k ebiten.Key) bool { return f.down[k] },
		justPressed: func(k ebiten.Key) bool {
			v := f.just[k]
			delete(f.just, k)
			return v
		},
	}
}

// release lifts every key.
func (f *fakeKeys) release() {
	clear(f.down)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r     rune
		shape shape
		text  rune
	}{
		{' ', shapeBlank, 0},
		{'█', shapeFill, 0},
		{'░', shapeFill, 0},
		{'│', shapeVLine, 0},
		{'╎', shapeVDash, 0},
		{'─', shapeHLine, 0},
		{'·', shapeDot, 0},
		{'◆', shapeDiamond, 0},
		{'A', shapeText, 'A'},
		{'←', shapeText, '<'},
		{'✶', shapeText, '*'},
		{'☃', shapeText, '?'},
	}
	for _, tt := range tests {
		g := classify(tt.r)
		if g.shape != tt.shape || g.text != tt.text {
			t.Errorf("classify(%q) = %+v, want shape %d text %q", tt.r, g, tt.shape, tt.text)
		}
	}
	if classify('▓').shade <= classify('▒').shade {
		t.Error("denser shade runes should be more opaque")
	}
}

func TestKeyStateFrame(t *testing.T) {
	keys := newFakeKeys()
	keys.tap(ebiten.KeyA)
	keys.down[ebiten.KeyW] = true

	f := keys.state().frame()
	if !f.Has(core.ActionLeft) || !f.Holding(core.ActionLeft) {
		t.Error("a tapped key should trigger and hold")
	}
	if f.Has(core.ActionAscend) || !f.Holding(core.ActionAscend) {
		t.Error("a key already down should only hold")
	}

	f = keys.state().frame()
	if f.Has(core.ActionLeft) {
		t.Error("a press should trigger only once")
	}
	keys.release()
	if keys.state().frame().Holding(core.ActionLeft) {
		t.Error("released keys should not hold")
	}
}

func newTestWindow(t *testing.T, store *storage.Store) (*Window, *fakeKeys, *hunter.Game) {
	t.Helper()
	g := hunter.New()
	g.UseConfig(config.DefaultHunterConfig())
	w := NewWindow(g, core.RuntimeConfig{TickRate: 60, Seed: 3}, Options{Store: store, Record: store != nil})
	keys := newFakeKeys()
	w.keys = keys.state()
	return w, keys, g
}

func TestWindowPlaysAndQuits(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	w, keys, g := newTestWindow(t, store)
	if w.screen.Width() != Cols || w.screen.Height() != Rows {
		t.Errorf("grid = %dx%d", w.screen.Width(), w.screen.Height())
	}

	keys.tap(ebiten.KeySpace)
	for i := 0; i < 60; i++ {
		if err := w.Update(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		keys.release()
	}
	if g.Phase() != hunter.StatePlaying {
		t.Fatalf("phase = %s, want playing", g.Phase())
	}

	keys.tap(ebiten.KeyQ)
	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("q should terminate, got %v", err)
	}
	rep, err := store.LoadReplay(w.savedID)
	if err != nil {
		t.Fatalf("replay not saved: %v", err)
	}
	if rep.Ticks != 60 {
		t.Errorf("saved %d ticks, want 60", rep.Ticks)
	}
}

func TestWindowBackOnlyWhenIdle(t *testing.T) {
	w, keys, _ := newTestWindow(t, nil)
	keys.tap(ebiten.KeySpace)
	w.Update()
	keys.release()

	keys.tap(ebiten.KeyB)
	if err := w.Update(); err != nil {
		t.Fatalf("back while playing should be ignored, got %v", err)
	}
	keys.release()

	keys.tap(ebiten.KeyP)
	w.Update()
	keys.release()
	keys.tap(ebiten.KeyB)
	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("back while paused should leave, got %v", err)
	}
}

func TestLayoutIsFixed(t *testing.T) {
	w, _, _ := newTestWindow(t, nil)
	gw, gh := w.Layout(1920, 1080)
	if gw != Cols*cellW || gh != Rows*cellH {
		t.Errorf("Layout = %dx%d", gw, gh)
	}
}

func TestFaceFitsCell(t *testing.T) {
	w, _, _ := newTestWindow(t, nil)
	if got := text.Advance("ROAD", w.face); got != 4*cellW {
		t.Errorf("advance = %v, want %d", got, 4*cellW)
	}
	m := w.face.Metrics()
	if m.HAscent+m.HDescent > cellH {
		t.Errorf("line height %v exceeds the cell height %d", m.HAscent+m.HDescent, cellH)
	}
}
