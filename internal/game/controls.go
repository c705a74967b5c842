package game

import "github.com/vovakirdan/dodge/internal/core"

// Controls binds the four movement intents and pause to keys.
type Controls struct {
	Left  core.Key
	Right core.Key
	Jump  core.Key
	Down  core.Key
	Pause core.Key
}

// ControlsFor returns the arrow-key scheme or the WASD scheme.
func ControlsFor(arrows bool) Controls {
	if arrows {
		return Controls{
			Left:  core.KeyLeft,
			Right: core.KeyRight,
			Jump:  core.KeyUp,
			Down:  core.KeyDown,
			Pause: core.KeyEscape,
		}
	}
	return Controls{
		Left:  core.KeyA,
		Right: core.KeyD,
		Jump:  core.KeyW,
		Down:  core.KeyS,
		Pause: core.KeyEscape,
	}
}

// Label is the options screen name of the scheme.
func (c Controls) Label() string {
	if c.Left == core.KeyLeft {
		return "ARROW keys"
	}
	return "WASD keys"
}
