package flow

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge/internal/audio"
	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/game"
	"github.com/vovakirdan/dodge/internal/storage"
)

// AnonymousName is stored when the player submits an empty name.
const AnonymousName = "Anonymous"

// ScoreBook is the high-score persistence the controller needs.
type ScoreBook interface {
	Insert(name string, level, score int) (int64, error)
	Top(n int) ([]storage.Record, error)
}

// Options configures a Controller. Only Tuning and Catalog are required.
type Options struct {
	Tuning   config.Tuning
	Catalog  *game.Catalog
	Settings *game.Settings // shared with the caller; defaults when nil
	Scores   ScoreBook      // nil disables saving and the score table
	Audio    audio.Player
	Logger   *log.Logger
	Rand     *rand.Rand
}

// Controller owns the screen stack, the current run and the settings.
type Controller struct {
	tuning   config.Tuning
	cat      *game.Catalog
	settings *game.Settings
	book     ScoreBook
	sound    audio.Player
	log      *log.Logger
	rng      *rand.Rand

	stack []Screen
	run   *game.Run

	result     game.Result
	saved      bool
	saveFailed bool
	scores     []storage.Record

	cursor    core.Point
	hasCursor bool
	focus     int
}

// New creates a controller showing the title screen.
func New(opts Options) *Controller {
	c := &Controller{
		tuning:   opts.Tuning,
		cat:      opts.Catalog,
		settings: opts.Settings,
		book:     opts.Scores,
		sound:    opts.Audio,
		log:      opts.Logger,
		rng:      opts.Rand,
		focus:    -1,
	}
	if c.settings == nil {
		s := game.DefaultSettings(c.tuning.Difficulty)
		c.settings = &s
	}
	if c.sound == nil {
		c.sound = audio.Nop{}
	}
	if c.log == nil {
		c.log = log.Default()
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c.Go(StateTitle)
	return c
}

// Go resolves a transition request. Action states apply their side
// effect and land on the screen they belong to.
func (c *Controller) Go(s State) {
	c.focus = -1

	switch s {
	case StateTitle:
		if c.run != nil {
			c.run.Abandon()
			c.run = nil
		}
		c.reset(ScreenTitle)
		if c.settings.Music && !c.sound.MusicPlaying() {
			c.sound.StartMusic()
		}

	case StateNewGame:
		c.run = game.NewRun(*c.settings, c.cat, c.tuning, c.rng)
		c.result = game.Result{}
		c.saved, c.saveFailed = false, false
		c.reset(ScreenPlay)
		c.log.Debug("run started", "mode", c.settings.Mode(), "skin", c.settings.Skin, "speed", c.settings.Speed)

	case StateOptions:
		c.reset(ScreenOptions)

	case StateViewScores:
		c.loadScores()
		c.reset(ScreenScores)

	case StateAbout:
		c.reset(ScreenAbout)

	case StatePrev, StateNext:
		delta := 1
		if s == StatePrev {
			delta = -1
		}
		c.settings.CycleSkin(delta, len(c.cat.Skins))
		c.Go(StateTitle)

	case StateMusic:
		c.settings.Music = !c.settings.Music
		if c.settings.Music {
			c.sound.ResumeMusic()
		} else {
			c.sound.PauseMusic()
		}
		c.reset(ScreenOptions)

	case StateSound:
		c.settings.Sound = !c.settings.Sound
		c.reset(ScreenOptions)

	case StateDiff:
		c.settings.ToggleDifficulty(c.tuning.Difficulty)
		c.reset(ScreenOptions)

	case StateControls:
		c.settings.ArrowKeys = !c.settings.ArrowKeys
		c.reset(ScreenOptions)

	case StateConfirmQuit:
		c.reset(ScreenConfirmQuit)

	case StateQuit:
		c.sound.StopMusic()
		c.reset(ScreenQuit)
	}
}

func (c *Controller) reset(s Screen) {
	c.stack = append(c.stack[:0], s)
}

func (c *Controller) push(s Screen) {
	c.stack = append(c.stack, s)
	c.focus = -1
}

func (c *Controller) pop() {
	if len(c.stack) > 1 {
		c.stack = c.stack[:len(c.stack)-1]
	}
	c.focus = -1
}

// Screen returns the screen on top of the stack.
func (c *Controller) Screen() Screen {
	return c.stack[len(c.stack)-1]
}

// Stack returns the modal stack, bottom first.
func (c *Controller) Stack() []Screen {
	return append([]Screen(nil), c.stack...)
}

// Done reports whether the player confirmed quitting.
func (c *Controller) Done() bool {
	return c.Screen() == ScreenQuit
}

// Tick advances one frame. While playing, events go to the run; on
// menu screens key presses navigate.
func (c *Controller) Tick(events []core.InputEvent) {
	if c.Screen() != ScreenPlay {
		for _, ev := range events {
			switch {
			case ev.Kind == core.KeyPressed:
				c.Key(ev.Key)
			case c.Screen() == ScreenPause:
				c.run.Release(ev.Key)
			}
		}
		return
	}

	res := c.run.Step(events)
	for _, ev := range res.Events {
		switch ev {
		case game.EventJump:
			c.effect(audio.EffectJump)
		case game.EventHit:
			c.effect(audio.EffectHit)
		case game.EventLevelUp:
			c.log.Debug("level up", "level", c.run.Progress().Level, "speed", c.run.Progress().Speed)
		}
	}

	switch {
	case res.PauseRequested:
		c.push(ScreenPause)
	case res.Status == game.StatusGameOver:
		c.finish()
	}
}

func (c *Controller) finish() {
	c.result, _ = c.run.Result()
	c.stack[len(c.stack)-1] = ScreenGameOver
	c.focus = -1
	c.sound.StopMusic()
	c.effect(audio.EffectGameOver)
	c.log.Info("run over", "level", c.result.Level, "score", c.result.Score)
}

// Key handles a key press on a menu screen.
func (c *Controller) Key(k core.Key) {
	switch c.Screen() {
	case ScreenPause:
		if k == core.KeyEscape {
			c.Resume()
			return
		}
	case ScreenGameOver:
		// The name entry owns the keyboard.
		if k == core.KeyEscape {
			c.Go(StateTitle)
		}
		return
	case ScreenPlay, ScreenQuit:
		return
	}

	switch k {
	case core.KeyUp, core.KeyW, core.KeyLeft, core.KeyA:
		c.Focus(-1)
	case core.KeyDown, core.KeyS, core.KeyRight, core.KeyD:
		c.Focus(1)
	case core.KeyEnter, core.KeySpace:
		c.Activate()
	case core.KeyEscape:
		if c.Screen() == ScreenTitle {
			c.Go(StateConfirmQuit)
		} else {
			c.Go(StateTitle)
		}
	}
}

// Resume closes the pause screen and continues the run.
func (c *Controller) Resume() {
	if c.Screen() != ScreenPause {
		return
	}
	c.pop()
	c.run.Resume()
}

// Hover records the pointer position in UI space.
func (c *Controller) Hover(p core.Point) {
	c.cursor = p
	c.hasCursor = true
}

// Click handles a left-button release at p in UI space. It reports
// whether a button fired.
func (c *Controller) Click(p core.Point) bool {
	c.Hover(p)
	for _, b := range c.Buttons() {
		if b.Bounds().Contains(p) {
			c.fire(b)
			return true
		}
	}
	return false
}

// Focus moves keyboard focus through the buttons, wrapping around.
func (c *Controller) Focus(delta int) {
	n := len(c.Buttons())
	if n == 0 {
		return
	}
	if c.focus < 0 {
		if delta > 0 {
			c.focus = 0
		} else {
			c.focus = n - 1
		}
		return
	}
	c.focus = ((c.focus+delta)%n + n) % n
}

// Focused returns the index of the focused button, or -1.
func (c *Controller) Focused() int {
	return c.focus
}

// Activate fires the focused button.
func (c *Controller) Activate() {
	buttons := c.Buttons()
	if c.focus < 0 || c.focus >= len(buttons) {
		return
	}
	c.fire(buttons[c.focus])
}

func (c *Controller) fire(b Button) {
	c.effect(audio.EffectClick)
	c.log.Debug("button", "screen", c.Screen(), "label", b.Label, "action", b.Action)
	c.Go(b.Action)
}

func (c *Controller) effect(e audio.Effect) {
	if c.settings.Sound {
		c.sound.Play(e)
	}
}

// SubmitName stores the finished run under name. It saves at most once
// per game over and reports whether this call saved.
func (c *Controller) SubmitName(name string) bool {
	if c.Screen() != ScreenGameOver || c.saved {
		return false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = AnonymousName
	}
	if c.book == nil {
		c.saveFailed = true
		c.log.Warn("no score store, record not saved", "name", name)
		return false
	}
	if _, err := c.book.Insert(name, c.result.Level, c.result.Score); err != nil {
		c.saveFailed = true
		c.log.Error("cannot save record", "name", name, "error", err)
		return false
	}
	c.saved, c.saveFailed = true, false
	c.log.Info("record saved", "name", name, "level", c.result.Level, "score", c.result.Score)
	return true
}

func (c *Controller) loadScores() {
	c.scores = nil
	if c.book == nil {
		return
	}
	records, err := c.book.Top(storage.DefaultTop)
	if err != nil {
		c.log.Error("cannot load high scores", "error", err)
		return
	}
	c.scores = records
}

// Run returns the current run, or nil outside of play.
func (c *Controller) Run() *game.Run { return c.run }

// Result returns the summary shown on the game over screen.
func (c *Controller) Result() game.Result { return c.result }

// Saved reports whether the game over record was stored.
func (c *Controller) Saved() bool { return c.saved }

// SaveFailed reports whether the last save attempt failed.
func (c *Controller) SaveFailed() bool { return c.saveFailed }

// HighScores returns the records loaded for the scores screen.
func (c *Controller) HighScores() []storage.Record { return c.scores }

// Settings returns a copy of the current settings.
func (c *Controller) Settings() game.Settings { return *c.settings }

// Catalog returns the sprite catalog.
func (c *Controller) Catalog() *game.Catalog { return c.cat }

// Tuning returns the gameplay tuning.
func (c *Controller) Tuning() config.Tuning { return c.tuning }
