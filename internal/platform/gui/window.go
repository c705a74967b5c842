// Package gui runs the game in a desktop window with Ebitengine.
package gui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dodge/internal/audio"
	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/flow"
	"github.com/vovakirdan/dodge/internal/game"
)

// Options configures the window frontend.
type Options struct {
	Tuning   config.Tuning
	Catalog  *game.Catalog
	Settings *game.Settings
	Scores   flow.ScoreBook
	Audio    audio.Player
	Logger   *log.Logger
	Seed     int64
}

// Window is the ebiten.Game driving a flow.Controller.
type Window struct {
	ctrl  *flow.Controller
	name  []rune
	chars []rune
	text  textCache
	last  flow.Screen
}

// NewWindow creates the window game showing the title screen.
func NewWindow(opts Options) *Window {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctrl := flow.New(flow.Options{
		Tuning:   opts.Tuning,
		Catalog:  opts.Catalog,
		Settings: opts.Settings,
		Scores:   opts.Scores,
		Audio:    opts.Audio,
		Logger:   opts.Logger,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	return &Window{ctrl: ctrl, text: make(textCache), last: ctrl.Screen()}
}

// Update advances one tick.
func (w *Window) Update() error {
	c := w.ctrl

	x, y := ebiten.CursorPosition()
	p := core.Point{X: float64(x), Y: float64(y)}
	c.Hover(p)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		c.Click(p)
	}

	var events []core.InputEvent
	if c.Screen() == flow.ScreenGameOver {
		w.chars = ebiten.AppendInputChars(w.chars[:0])
		w.name = editName(w.name, w.chars, inpututil.IsKeyJustPressed(ebiten.KeyBackspace))
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			c.SubmitName(string(w.name))
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			events = append(events, core.Press(core.KeyEscape))
		}
	} else {
		events = collectEvents(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased)
	}

	c.Tick(events)

	if s := c.Screen(); s != w.last {
		w.last = s
		if s == flow.ScreenGameOver {
			w.name = w.name[:0]
		}
	}
	if c.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the current screen.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(core.ColorNavy.RGBA())
	switch w.ctrl.Screen() {
	case flow.ScreenPlay:
		w.drawRun(screen, w.ctrl.Run())
		return
	case flow.ScreenPause:
		w.drawRun(screen, w.ctrl.Run())
	}
	w.drawMenu(screen)
}

// Layout keeps the logical screen at the UI size; ebiten scales it to
// the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return flow.UIWidth, flow.UIHeight
}

// Run opens the window and blocks until the player quits or closes it.
func Run(opts Options) error {
	ebiten.SetWindowSize(flow.UIWidth, flow.UIHeight)
	ebiten.SetWindowTitle(flow.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.Tuning.Timing.TickRate)
	return ebiten.RunGame(NewWindow(opts))
}
