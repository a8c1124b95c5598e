package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow, A - steer left
	ActionRight              // Right arrow, D - steer right
	ActionUp                 // Up arrow - accelerate (move forward on the road)
	ActionDown               // Down arrow - brake (fall back on the road)
	ActionAscend             // W - climb
	ActionDescend            // S - descend
	ActionFire               // Space - shoot, also starts the game
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B - go back to menu
	ActionRestart            // R key - restart game after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P, Escape - pause/unpause game
	ActionToggleMusic        // M - toggle background music
	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionAscend:
		return "Ascend"
	case ActionDescend:
		return "Descend"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionToggleMusic:
		return "ToggleMusic"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
//
// Actions holds edges: actions triggered this tick (a key press).
// Held holds levels: actions whose key is still considered down.
// A freshly pressed action is usually in both sets.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as held down for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Holding returns true if the action is held or was triggered this frame.
func (f InputFrame) Holding(a Action) bool {
	if f.Held != nil && f.Held[a] {
		return true
	}
	return f.Has(a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

// Mask packs the frame into a bitmask: triggered actions in the low
// 16 bits, held actions in the high 16 bits.
func (f InputFrame) Mask() uint32 {
	var m uint32
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			m |= 1 << uint(a)
		}
		if f.Held != nil && f.Held[a] {
			m |= 1 << (uint(a) + 16)
		}
	}
	return m
}

// FrameFromMask is the inverse of InputFrame.Mask.
// Bits for unknown actions are ignored.
func FrameFromMask(m uint32) InputFrame {
	f := NewInputFrame()
	for a := ActionNone + 1; a < actionCount; a++ {
		if m&(1<<uint(a)) != 0 {
			f.Set(a)
		}
		if m&(1<<(uint(a)+16)) != 0 {
			f.Hold(a)
		}
	}
	return f
}
