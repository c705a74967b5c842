package flow

import (
	"github.com/vovakirdan/dodge/internal/core"
)

// Logical UI space. Frontends scale it to cells or pixels.
const (
	UIWidth  = 750
	UIHeight = 500
)

// glyphAspect is the advance width of a monospace glyph relative to its size.
const glyphAspect = 0.6

// Button is a clickable text label that requests a State.
type Button struct {
	Label    string
	Action   State
	Center   core.Point
	FontSize float64
}

// Bounds is the rendered text box in UI space.
func (b Button) Bounds() core.Box {
	w := float64(len([]rune(b.Label))) * b.FontSize * glyphAspect
	h := b.FontSize * 1.2
	return core.BoxAt(b.Center, w, h)
}

// ButtonState is how a button is drawn.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHighlighted
)

// StateOf returns Highlighted when the cursor is over the button or it
// holds keyboard focus.
func StateOf(b Button, cursor core.Point, hasCursor, focused bool) ButtonState {
	if focused || (hasCursor && b.Bounds().Contains(cursor)) {
		return ButtonHighlighted
	}
	return ButtonNormal
}

// Label is static text in UI space.
type Label struct {
	Text     string
	Center   core.Point
	FontSize float64
	Color    core.Color
}

func pt(x, y float64) core.Point {
	return core.Point{X: x, Y: y}
}

func returnButton() Button {
	return Button{Label: "Return to main menu", Action: StateTitle, Center: pt(150, 450), FontSize: 20}
}
