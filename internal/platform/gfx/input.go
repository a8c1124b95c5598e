package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/roadhunter/internal/core"
)

// binding maps physical keys to one action.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// bindings mirror the terminal key map. Unlike a terminal the window
// sees real key releases, so held actions need no emulation.
var bindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown}},
	{core.ActionAscend, []ebiten.Key{ebiten.KeyW}},
	{core.ActionDescend, []ebiten.Key{ebiten.KeyS}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionToggleMusic, []ebiten.Key{ebiten.KeyM}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyB}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// keyState reports the keyboard. The window passes ebiten's functions;
// tests pass fakes.
type keyState struct {
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

// frame builds the input for one tick: a just-pressed key triggers its
// action, a key that is down holds it.
func (k keyState) frame() core.InputFrame {
	f := core.NewInputFrame()
	for _, b := range bindings {
		for _, key := range b.keys {
			if k.justPressed(key) {
				f.Set(b.action)
			}
			if k.pressed(key) {
				f.Hold(b.action)
			}
		}
	}
	return f
}
