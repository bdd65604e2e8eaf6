package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move left
	ActionRight          // Right arrow, D - move right
	ActionFire           // Space - fire a bullet
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit the program
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
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation frame.
// Down holds actions whose key is currently held; Pressed holds actions whose
// key went down since the previous frame (edge-triggered).
type InputFrame struct {
	Down    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Down:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// SetDown marks an action's key as held.
func (f *InputFrame) SetDown(a Action) {
	if f.Down == nil {
		f.Down = make(map[Action]bool)
	}
	f.Down[a] = true
}

// Press records that an action's key went down this frame.
// A pressed key also counts as held for the frame.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.SetDown(a)
}

// IsDown returns true if the action's key is held this frame.
func (f InputFrame) IsDown(a Action) bool {
	return f.Down[a]
}

// JustPressed returns true if the action's key went down this frame.
func (f InputFrame) JustPressed(a Action) bool {
	return f.Pressed[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Down)
	clear(f.Pressed)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Down {
		clone.Down[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	return clone
}
