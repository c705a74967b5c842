package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/flow"
	"github.com/vovakirdan/dodge/internal/game"
)

// keyNames maps Bubble Tea key strings to game keys.
var keyNames = map[string]core.Key{
	"left":  core.KeyLeft,
	"right": core.KeyRight,
	"up":    core.KeyUp,
	"down":  core.KeyDown,
	"a":     core.KeyA,
	"A":     core.KeyA,
	"d":     core.KeyD,
	"D":     core.KeyD,
	"w":     core.KeyW,
	"W":     core.KeyW,
	"s":     core.KeyS,
	"S":     core.KeyS,
	"esc":   core.KeyEscape,
	"enter": core.KeyEnter,
	" ":     core.KeySpace,
	"space": core.KeySpace,
}

// MapKey translates a key message to a game key.
func MapKey(msg tea.KeyMsg) (core.Key, bool) {
	k, ok := keyNames[msg.String()]
	return k, ok
}

// keyMap holds the bindings shown in the help bar.
// Matching for gameplay goes through MapKey; only Quit and Screenshot
// are matched here.
type keyMap struct {
	Quit       key.Binding
	Screenshot key.Binding

	Move  key.Binding
	Jump  key.Binding
	Drop  key.Binding
	Pause key.Binding

	Focus  key.Binding
	Select key.Binding
	Back   key.Binding
	Save   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Focus:      key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "focus")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Save:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Pause:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "pause")),
	}
}

// withControls sets the gameplay bindings for the chosen control scheme.
func (k keyMap) withControls(c game.Controls) keyMap {
	if c.Left == core.KeyLeft {
		k.Move = key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "move"))
		k.Jump = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "jump"))
		k.Drop = key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "drop"))
		return k
	}
	k.Move = key.NewBinding(key.WithKeys("a", "d"), key.WithHelp("a/d", "move"))
	k.Jump = key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "jump"))
	k.Drop = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "drop"))
	return k
}

// bindings returns the help entries for a screen.
func (k keyMap) bindings(s flow.Screen) []key.Binding {
	switch s {
	case flow.ScreenPlay:
		return []key.Binding{k.Move, k.Jump, k.Drop, k.Pause, k.Quit}
	case flow.ScreenPause:
		return []key.Binding{k.Pause, k.Quit}
	case flow.ScreenGameOver:
		return []key.Binding{k.Save, k.Back, k.Quit}
	}
	return []key.Binding{k.Focus, k.Select, k.Back, k.Quit}
}

// heldKeys turns terminal key presses into press/release pairs.
// Terminals report no key-up, so a key counts as released once no
// repeat has arrived for hold ticks.
type heldKeys struct {
	hold int
	left map[core.Key]int
}

func newHeldKeys(hold int) *heldKeys {
	if hold < 1 {
		hold = 1
	}
	return &heldKeys{hold: hold, left: make(map[core.Key]int)}
}

// Press records a press and reports whether it starts a new hold.
// Auto-repeat of a held key only extends the hold.
func (h *heldKeys) Press(k core.Key) bool {
	_, held := h.left[k]
	h.left[k] = h.hold
	return !held
}

// Tick counts down every held key and returns releases for the
// ones that expired.
func (h *heldKeys) Tick() []core.InputEvent {
	var out []core.InputEvent
	for k, n := range h.left {
		n--
		if n > 0 {
			h.left[k] = n
			continue
		}
		delete(h.left, k)
		out = append(out, core.Release(k))
	}
	return out
}

// Held reports whether k is currently held.
func (h *heldKeys) Held(k core.Key) bool {
	_, ok := h.left[k]
	return ok
}

// Reset forgets all held keys without emitting releases.
func (h *heldKeys) Reset() {
	clear(h.left)
}
