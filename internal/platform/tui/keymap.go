package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Terminals report presses and auto-repeats but never releases, so a
// direction counts as held until a window after its last press expires.
const (
	DefaultHoldInitial = 300 * time.Millisecond // Bridges the OS delay before auto-repeat starts
	DefaultHoldRepeat  = 120 * time.Millisecond // Extension per repeat event
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Stop       key.Binding
	Dash       key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Dash, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop, k.Dash},
		{k.Confirm, k.Back, k.Pause, k.Restart},
		{k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Stop: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "stop"),
		),
		Dash: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space", "dash"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions and tracks
// which directions count as held.
type KeyMapper struct {
	keys      GameKeyMap
	initial   time.Duration
	repeat    time.Duration
	heldUntil map[core.Action]time.Time
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		keys:      DefaultGameKeyMap(),
		initial:   DefaultHoldInitial,
		repeat:    DefaultHoldRepeat,
		heldUntil: make(map[core.Action]time.Time),
	}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// SetHoldWindow overrides the hold timing.
func (km *KeyMapper) SetHoldWindow(initial, repeat time.Duration) {
	km.initial = initial
	km.repeat = repeat
}

// MapKey translates a key message to an action.
// Returns ActionNone for keys the game does not use.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	case key.Matches(msg, km.keys.Dash):
		return core.ActionDash
	case key.Matches(msg, km.keys.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// Press records a key press at now into frame.
// Directions start or extend a hold; everything else is a one-shot action.
// Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time, frame *core.InputFrame) bool {
	if key.Matches(msg, km.keys.Stop) {
		km.ReleaseAll()
		return false
	}

	action := km.MapKey(msg)
	switch action {
	case core.ActionNone:
		return false
	case core.ActionLeft:
		km.hold(core.ActionLeft, now)
		delete(km.heldUntil, core.ActionRight)
	case core.ActionRight:
		km.hold(core.ActionRight, now)
		delete(km.heldUntil, core.ActionLeft)
	default:
		frame.Set(action)
	}
	return action == core.ActionQuit
}

func (km *KeyMapper) hold(a core.Action, now time.Time) {
	until, ok := km.heldUntil[a]
	if ok && !now.After(until) {
		// Auto-repeat of a key already held
		if next := now.Add(km.repeat); next.After(until) {
			km.heldUntil[a] = next
		}
		return
	}
	km.heldUntil[a] = now.Add(km.initial)
}

// IsHeld reports whether a is held at now.
func (km *KeyMapper) IsHeld(a core.Action, now time.Time) bool {
	until, ok := km.heldUntil[a]
	return ok && !now.After(until)
}

// ApplyHeld writes the held state at now into frame and forgets expired holds.
func (km *KeyMapper) ApplyHeld(now time.Time, frame *core.InputFrame) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		held := km.IsHeld(a, now)
		if !held {
			delete(km.heldUntil, a)
		}
		frame.Hold(a, held)
	}
}

// ReleaseAll drops every held direction.
func (km *KeyMapper) ReleaseAll() {
	for a := range km.heldUntil {
		delete(km.heldUntil, a)
	}
}
