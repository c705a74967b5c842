package gui

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/flow"
	"github.com/vovakirdan/dodge/internal/game"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// textCache keeps one rendered image per string.
type textCache map[string]*ebiten.Image

func (tc textCache) image(s string) *ebiten.Image {
	if img, ok := tc[s]; ok {
		return img
	}
	img := ebiten.NewImage(max(utf8.RuneCountInString(s)*glyphW, 1), glyphH)
	ebitenutil.DebugPrint(img, s)
	tc[s] = img
	return img
}

// text draws s centered on c, scaled so size matches the button layout.
func (tc textCache) text(dst *ebiten.Image, s string, c core.Point, size float64, clr core.Color) {
	img := tc.image(s)
	k := size / 10
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(c.X-float64(w)*k/2, c.Y-float64(h)*k/2)
	op.ColorScale.ScaleWithColor(clr.RGBA())
	dst.DrawImage(img, op)
}

func fillBox(dst *ebiten.Image, b core.Box, clr color.Color) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
}

func strokeBox(dst *ebiten.Image, b core.Box, clr color.Color) {
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, clr, false)
}

// drawRun paints the world at 1:1.
func (w *Window) drawRun(dst *ebiten.Image, r *game.Run) {
	world := r.World()
	cat := r.Catalog()
	prog := r.Progress()
	bg := cat.Background(prog.Background)

	dst.Fill(core.ColorNavy.RGBA())
	fillBox(dst, core.NewBox(0, 0, world.Width, world.Floor), dimmed(bg.SkyColor().RGBA()))
	fillBox(dst, core.NewBox(0, world.Floor, world.Width, world.Height-world.Floor), bg.FloorColor().RGBA())

	// Two floor tiles side by side, shifted by the scroll offset.
	stripe := world.TileWidth / float64(len(cat.Floor.Pattern))
	for tile := 0; tile < 2; tile++ {
		x0 := prog.FloorOffset + float64(tile)*world.TileWidth
		for i, ch := range cat.Floor.Pattern {
			if ch == '-' {
				continue
			}
			fillBox(dst, core.NewBox(x0+float64(i)*stripe, world.Floor, stripe, 6), cat.Floor.Tint().RGBA())
		}
	}

	for _, m := range r.Mobs() {
		w.drawSprite(dst, m.Bounds(), m.Glyph(cat), m.Glyph(cat).Tint())
	}

	p := r.Player()
	tint := p.Glyph(cat).Tint()
	if s := r.Status(); s == game.StatusHit || s == game.StatusGameOver {
		tint = core.ColorBrightRed
	}
	w.drawSprite(dst, p.Bounds(), p.Glyph(cat), tint)

	white := core.ColorBrightWhite
	w.text.text(dst, fmt.Sprintf("Level: %d", prog.Level), core.Point{X: 450, Y: 40}, 15, white)
	w.text.text(dst, fmt.Sprintf("Points: %d", prog.Score), core.Point{X: 600, Y: 40}, 15, white)
}

func (w *Window) drawSprite(dst *ebiten.Image, b core.Box, s game.Sprite, tint core.Color) {
	fillBox(dst, b, tint.RGBA())
	strokeBox(dst, b, color.Black)

	const size = 6
	lineH := glyphH * size / 10.0
	top := b.Y + b.H/2 - lineH*float64(len(s.Glyph))/2
	for i, line := range s.Glyph {
		c := core.Point{X: b.X + b.W/2, Y: top + lineH*(float64(i)+0.5)}
		w.text.text(dst, line, c, size, core.ColorNavy)
	}
}

func dimmed(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 3, G: c.G / 3, B: c.B / 3, A: 0xff}
}

// drawMenu paints the labels and buttons of a menu screen.
func (w *Window) drawMenu(dst *ebiten.Image) {
	c := w.ctrl

	switch c.Screen() {
	case flow.ScreenPause:
		vector.DrawFilledRect(dst, 0, 0, flow.UIWidth, flow.UIHeight, color.RGBA{A: 0xa0}, false)
	case flow.ScreenTitle:
		s := c.Catalog().Skin(c.Settings().Skin)
		w.drawSprite(dst, core.BoxAt(flow.SkinPreviewCenter, s.W, s.H), s, s.Tint())
	case flow.ScreenGameOver:
		box := core.BoxAt(flow.NameBoxCenter, 300, 36)
		strokeBox(dst, box, core.ColorGray.RGBA())
		name, clr := string(w.name)+"_", core.ColorBrightWhite
		if len(w.name) == 0 {
			name, clr = flow.AnonymousName, core.ColorGray
		}
		w.text.text(dst, name, flow.NameBoxCenter, 15, clr)
	}

	for _, l := range c.Labels() {
		if l.Text == "♛" {
			drawCrown(dst, l.Center, l.Color.RGBA())
			continue
		}
		w.text.text(dst, l.Text, l.Center, l.FontSize, l.Color)
	}

	states := c.ButtonStates()
	for i, b := range c.Buttons() {
		clr := core.ColorWhite
		if states[i] == flow.ButtonHighlighted {
			clr = core.ColorBrightYellow
			strokeBox(dst, b.Bounds(), clr.RGBA())
		}
		w.text.text(dst, b.Label, b.Center, b.FontSize, clr)
	}
}

// drawCrown draws a rank marker; the debug font has no crown glyph.
func drawCrown(dst *ebiten.Image, c core.Point, clr color.Color) {
	x, y := float32(c.X-8), float32(c.Y-6)
	vector.DrawFilledRect(dst, x, y+6, 16, 6, clr, false)
	for i := 0; i < 3; i++ {
		vector.DrawFilledRect(dst, x+float32(i)*6, y, 4, 6, clr, false)
	}
}
