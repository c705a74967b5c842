package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/flow"
)

// ansiCodes maps core.Color to terminal color codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorNavy:          "17",
}

// palette holds one lipgloss style per color, bound to a renderer so
// SSH sessions get their own color profile.
type palette map[core.Color]lipgloss.Style

func newPalette(r *lipgloss.Renderer) palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := palette{core.ColorDefault: r.NewStyle()}
	for c, code := range ansiCodes {
		p[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

var defaultPalette = newPalette(nil)

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.render(s)
}

// render groups adjacent cells with the same color to minimize ANSI
// escape sequences.
func (p palette) render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// cellMap converts between UI points and terminal cells.
type cellMap struct {
	w, h int
}

// Cell returns the cell containing p.
func (m cellMap) Cell(p core.Point) (col, row int) {
	return int(p.X * float64(m.w) / flow.UIWidth), int(p.Y * float64(m.h) / flow.UIHeight)
}

// Point returns the UI point at the center of a cell.
func (m cellMap) Point(col, row int) core.Point {
	return core.Point{
		X: (float64(col) + 0.5) * flow.UIWidth / float64(m.w),
		Y: (float64(row) + 0.5) * flow.UIHeight / float64(m.h),
	}
}

// text draws s centered on the cell containing p.
func (m cellMap) text(dst *core.Screen, p core.Point, s string, c core.Color) (col, row int) {
	col, row = m.Cell(p)
	col -= utf8.RuneCountInString(s) / 2
	dst.DrawTextColored(col, row, s, c)
	return col, row
}

func (m cellMap) drawLabels(dst *core.Screen, labels []flow.Label, erase bool) {
	for _, l := range labels {
		if erase {
			col, row := m.Cell(l.Center)
			n := utf8.RuneCountInString(l.Text)
			dst.FillRect(core.NewRect(col-n/2-1, row, n+2, 1), ' ', core.ColorDefault)
		}
		m.text(dst, l.Center, l.Text, l.Color)
	}
}

func (m cellMap) drawButtons(dst *core.Screen, buttons []flow.Button, states []flow.ButtonState) {
	for i, b := range buttons {
		color := core.ColorWhite
		if states[i] == flow.ButtonHighlighted {
			color = core.ColorBrightYellow
		}
		col, row := m.text(dst, b.Center, b.Label, color)
		if states[i] == flow.ButtonHighlighted {
			dst.SetColored(col-2, row, '▸', color)
			dst.SetColored(col+utf8.RuneCountInString(b.Label)+1, row, '◂', color)
		}
	}
}

// drawSkin draws the selected skin glyph centered on the title preview.
func (m cellMap) drawSkin(dst *core.Screen, c *flow.Controller) {
	sprite := c.Catalog().Skin(c.Settings().Skin)
	col, row := m.Cell(flow.SkinPreviewCenter)
	row -= len(sprite.Glyph) / 2
	for i, line := range sprite.Glyph {
		dst.DrawTextColored(col-utf8.RuneCountInString(line)/2, row+i, line, sprite.Tint())
	}
}

const nameBoxWidth = 24

// drawNameBox draws the name entry on the game over screen.
func (m cellMap) drawNameBox(dst *core.Screen, value, placeholder string, cursor int, focused bool) {
	col, row := m.Cell(flow.NameBoxCenter)
	box := core.NewRect(col-nameBoxWidth/2, row-1, nameBoxWidth, 3)
	dst.DrawBoxColored(box, core.ColorGray)

	text, color := value, core.ColorBrightWhite
	if value == "" {
		text, color = placeholder, core.ColorGray
	}
	dst.DrawTextColored(box.X+1, row, text, color)
	if focused {
		dst.SetColored(box.X+1+cursor, row, '_', core.ColorBrightYellow)
	}
}
