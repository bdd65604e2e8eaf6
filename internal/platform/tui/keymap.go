package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/circle-dodger/internal/core"
)

// KeyMap defines the key bindings for playing.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Restart key.Binding
	History key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Restart, k.History, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		History: key.NewBinding(
			key.WithKeys("H", "tab"),
			key.WithHelp("H", "rounds"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
//
// Terminals report key presses and auto-repeats but never releases, so a
// movement key counts as held for a short window after its last event.
// Pressing the opposite direction releases the other one at once.
type KeyMapper struct {
	keys KeyMap
	hold time.Duration
	held map[core.Action]time.Time // Last event per movement action
}

// NewKeyMapper creates a key mapper with the given bindings and hold window.
func NewKeyMapper(keys KeyMap, hold time.Duration) *KeyMapper {
	return &KeyMapper{
		keys: keys,
		hold: hold,
		held: make(map[core.Action]time.Time),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Fire):
		return core.ActionFire, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// Latch records a movement key event at time now.
func (km *KeyMapper) Latch(action core.Action, now time.Time) {
	switch action {
	case core.ActionLeft:
		delete(km.held, core.ActionRight)
	case core.ActionRight:
		delete(km.held, core.ActionLeft)
	default:
		return
	}
	km.held[action] = now
}

// Apply marks every still-latched movement action as down in frame and
// forgets the expired ones.
func (km *KeyMapper) Apply(frame *core.InputFrame, now time.Time) {
	for action, at := range km.held {
		if now.Sub(at) > km.hold {
			delete(km.held, action)
			continue
		}
		frame.SetDown(action)
	}
}

// Release forgets all latched keys.
func (km *KeyMapper) Release() {
	clear(km.held)
}
