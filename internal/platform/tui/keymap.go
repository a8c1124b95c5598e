package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadhunter/internal/core"
)

// DefaultHoldTicks is how long a terminal key press keeps its action held.
// Terminals report presses and repeats but never releases, so a held key
// is emulated by refreshing this window on every repeat.
const DefaultHoldTicks = 9

// holdable actions are continuous controls; everything else is an edge.
var holdable = map[core.Action]bool{
	core.ActionLeft:    true,
	core.ActionRight:   true,
	core.ActionUp:      true,
	core.ActionDown:    true,
	core.ActionAscend:  true,
	core.ActionDescend: true,
	core.ActionFire:    true,
}

// opposite releases the reverse control when a key is pressed.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:    core.ActionRight,
	core.ActionRight:   core.ActionLeft,
	core.ActionUp:      core.ActionDown,
	core.ActionDown:    core.ActionUp,
	core.ActionAscend:  core.ActionDescend,
	core.ActionDescend: core.ActionAscend,
}

// KeyMapper translates Bubble Tea key messages to game actions and
// accumulates them into one input frame per tick.
type KeyMapper struct {
	holdTicks int
	tick      int
	pressed   map[core.Action]bool
	heldUntil map[core.Action]int
}

// NewKeyMapper creates a key mapper with the default hold window.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWithHold(DefaultHoldTicks)
}

// NewKeyMapperWithHold creates a key mapper that holds actions for holdTicks ticks.
func NewKeyMapperWithHold(holdTicks int) *KeyMapper {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyMapper{
		holdTicks: holdTicks,
		pressed:   make(map[core.Action]bool),
		heldUntil: make(map[core.Action]int),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case "up":
		return core.ActionUp, false
	case "down":
		return core.ActionDown, false
	case "w":
		return core.ActionAscend, false
	case "s":
		return core.ActionDescend, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "m":
		return core.ActionToggleMusic, false
	case "b":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// Press records a key for the next frame.
// Returns the mapped action and whether it's a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg) (core.Action, bool) {
	action, isQuit := km.MapKey(msg)
	if action == core.ActionNone || isQuit {
		return action, isQuit
	}
	km.PressAction(action)
	return action, false
}

// PressAction records an action as if its key had been pressed.
// A key repeat that arrives while the action is still held only extends
// the hold; it is not a fresh press.
func (km *KeyMapper) PressAction(a core.Action) {
	if !holdable[a] {
		km.pressed[a] = true
		return
	}
	if until, ok := km.heldUntil[a]; !ok || km.tick >= until {
		km.pressed[a] = true
	}
	km.heldUntil[a] = km.tick + km.holdTicks
	if o, ok := opposite[a]; ok {
		delete(km.heldUntil, o)
	}
}

// Frame builds the input for the current tick and advances the clock.
// Presses since the last frame become triggered actions; actions whose
// hold window is still open are held.
func (km *KeyMapper) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a := range km.pressed {
		f.Set(a)
	}
	for a, until := range km.heldUntil {
		if km.tick < until {
			f.Hold(a)
		} else {
			delete(km.heldUntil, a)
		}
	}
	clear(km.pressed)
	km.tick++
	return f
}

// Release drops every pending press and hold, e.g. after a restart.
func (km *KeyMapper) Release() {
	clear(km.pressed)
	clear(km.heldUntil)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionMusic
	MenuActionReplays
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "m":
		return MenuActionMusic
	case "tab":
		return MenuActionReplays
	}
	return MenuActionNone
}
