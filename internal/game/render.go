package game

import (
	"fmt"

	"github.com/vovakirdan/dodge/internal/core"
)

// Viewport maps world units onto a cell grid.
type Viewport struct {
	SX, SY float64 // cells per world unit
}

// NewViewport fits the world into a w x h cell screen.
func NewViewport(worldW, worldH float64, w, h int) Viewport {
	return Viewport{SX: float64(w) / worldW, SY: float64(h) / worldH}
}

// Col converts a world x to a column.
func (v Viewport) Col(x float64) int { return int(x * v.SX) }

// Row converts a world y to a row.
func (v Viewport) Row(y float64) int { return int(y * v.SY) }

// Render draws the run onto a cell screen scaled from world space.
func (r *Run) Render(dst *core.Screen) {
	dst.Clear()
	w := r.tuning.World
	vp := NewViewport(w.Width, w.Height, dst.Width(), dst.Height())
	bg := r.cat.Background(r.progress.Background)

	floorRow := core.Clamp(vp.Row(w.Floor), 0, dst.Height()-1)
	r.drawSky(dst, bg, floorRow)
	r.drawFloor(dst, vp, bg, floorRow)

	for _, m := range r.mobs {
		drawEntity(dst, vp, m.Bounds(), m.Glyph(r.cat), false, m.Glyph(r.cat).Tint())
	}

	tint := r.player.Glyph(r.cat).Tint()
	if r.status == StatusHit || r.status == StatusGameOver {
		tint = core.ColorBrightRed
	}
	drawEntity(dst, vp, r.player.Bounds(), r.player.Glyph(r.cat), r.player.Facing < 0, tint)

	r.drawHUD(dst, vp)
}

func (r *Run) drawSky(dst *core.Screen, bg Backdrop, floorRow int) {
	pattern := []rune(bg.Pattern)
	for y := 0; y < floorRow; y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x*7+y*13)%23 == 0 {
				dst.SetColored(x, y, pattern[(x+y)%len(pattern)], bg.SkyColor())
			}
		}
	}
}

func (r *Run) drawFloor(dst *core.Screen, vp Viewport, bg Backdrop, floorRow int) {
	pattern := []rune(r.cat.Floor.Pattern)
	step := r.tuning.World.TileWidth / float64(len(pattern))

	for x := 0; x < dst.Width(); x++ {
		worldX := float64(x)/vp.SX - r.progress.FloorOffset
		i := int(worldX/step) % len(pattern)
		dst.SetColored(x, floorRow, pattern[i], r.cat.Floor.Tint())
	}
	for y := floorRow + 1; y < dst.Height(); y++ {
		dst.DrawHLineColored(0, y, dst.Width(), '░', bg.FloorColor())
	}
}

func (r *Run) drawHUD(dst *core.Screen, vp Viewport) {
	row := core.Max(vp.Row(40), 0)
	level := fmt.Sprintf("Level: %d", r.progress.Level)
	points := fmt.Sprintf("Points: %d", r.progress.Score)
	dst.DrawTextColored(vp.Col(450)-len(level)/2, row, level, core.ColorBrightWhite)
	dst.DrawTextColored(vp.Col(600)-len(points)/2, row, points, core.ColorBrightWhite)
}

// drawEntity draws a sprite glyph with its bottom row on the box's base.
func drawEntity(dst *core.Screen, vp Viewport, b core.Box, s Sprite, mirror bool, tint core.Color) {
	col := vp.Col(b.X)
	base := vp.Row(b.Bottom()) - 1
	n := len(s.Glyph)
	for i, line := range s.Glyph {
		if mirror {
			line = mirrorLine(line)
		}
		y := base - (n - 1 - i)
		x := col
		for _, ch := range line {
			if ch != ' ' {
				dst.SetColored(x, y, ch, tint)
			}
			x++
		}
	}
}

var mirrored = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'[': ']', ']': '[',
	'd': 'b', 'b': 'd',
}

// mirrorLine flips a glyph row horizontally.
func mirrorLine(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	for i, ch := range rs {
		if m, ok := mirrored[ch]; ok {
			rs[i] = m
		}
	}
	return string(rs)
}
