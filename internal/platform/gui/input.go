package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dodge/internal/core"
)

// keys maps window keys to game keys, in the order events are emitted.
var keys = []struct {
	from ebiten.Key
	to   core.Key
}{
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyArrowDown, core.KeyDown},
	{ebiten.KeyA, core.KeyA},
	{ebiten.KeyD, core.KeyD},
	{ebiten.KeyW, core.KeyW},
	{ebiten.KeyS, core.KeyS},
	{ebiten.KeyEscape, core.KeyEscape},
	{ebiten.KeyEnter, core.KeyEnter},
	{ebiten.KeyNumpadEnter, core.KeyEnter},
	{ebiten.KeySpace, core.KeySpace},
}

// collectEvents returns the presses and releases since the last frame.
// Windows report real key-ups, so no hold window is needed.
func collectEvents(pressed, released func(ebiten.Key) bool) []core.InputEvent {
	var out []core.InputEvent
	for _, k := range keys {
		if pressed(k.from) {
			out = append(out, core.Press(k.to))
		}
		if released(k.from) {
			out = append(out, core.Release(k.to))
		}
	}
	return out
}

const nameLimit = 20

// editName applies typed characters and backspaces to a name.
func editName(name, typed []rune, backspace bool) []rune {
	if backspace && len(name) > 0 {
		name = name[:len(name)-1]
	}
	for _, r := range typed {
		if len(name) >= nameLimit {
			break
		}
		if r < ' ' || r == 0x7f {
			continue
		}
		name = append(name, r)
	}
	return name
}
