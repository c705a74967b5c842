package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge/internal/audio"
	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/flow"
	"github.com/vovakirdan/dodge/internal/game"
)

const (
	helpRows  = 1
	nameLimit = 20
)

// AppOptions configures a terminal session.
type AppOptions struct {
	Tuning   config.Tuning
	Catalog  *game.Catalog
	Settings *game.Settings
	Scores   flow.ScoreBook
	Audio    audio.Player
	Logger   *log.Logger
	Runtime  core.RuntimeConfig
	Renderer *lipgloss.Renderer // per-session renderer for SSH; nil uses stdout
}

// App is the Bubble Tea model that drives a flow.Controller from a
// terminal.
type App struct {
	ctrl    *flow.Controller
	screen  *core.Screen
	cfg     core.RuntimeConfig
	keys    keyMap
	held    *heldKeys
	pending []core.InputEvent
	name    textinput.Model
	help    help.Model
	styles  palette
	log     *log.Logger
	last    flow.Screen

	quitting bool
}

// NewApp creates the model showing the title screen.
func NewApp(opts AppOptions) App {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Tuning.Timing.TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	ctrl := flow.New(flow.Options{
		Tuning:   opts.Tuning,
		Catalog:  opts.Catalog,
		Settings: opts.Settings,
		Scores:   opts.Scores,
		Audio:    opts.Audio,
		Logger:   logger,
		Rand:     rand.New(rand.NewSource(cfg.Seed)),
	})

	name := textinput.New()
	name.Placeholder = flow.AnonymousName
	name.CharLimit = nameLimit
	name.Prompt = ""

	return App{
		ctrl:   ctrl,
		screen: core.NewScreen(max(cfg.ScreenW, 1), max(cfg.ScreenH-helpRows, 1)),
		cfg:    cfg,
		keys:   newKeyMap(),
		held:   newHeldKeys(opts.Tuning.Input.HoldTicks),
		name:   name,
		help:   help.New(),
		styles: newPalette(opts.Renderer),
		log:    logger,
		last:   ctrl.Screen(),
	}
}

// Init starts the tick loop.
func (m App) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(max(msg.Width, 1), max(msg.Height-helpRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if m.ctrl.Screen() == flow.ScreenGameOver {
		return m.handleNameKey(msg)
	}

	k, ok := MapKey(msg)
	if !ok {
		return m, nil
	}
	if m.ctrl.Screen() == flow.ScreenPlay && !m.held.Press(k) {
		return m, nil
	}
	m.pending = append(m.pending, core.Press(k))
	return m, nil
}

// handleNameKey feeds the name entry. Enter saves and Esc leaves.
func (m App) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.ctrl.SubmitName(m.name.Value())
		return m, nil
	case tea.KeyEsc:
		m.pending = append(m.pending, core.Press(core.KeyEscape))
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := m.cells().Point(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionMotion:
		m.ctrl.Hover(p)
	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			m.ctrl.Click(p)
		}
	}
	if m.ctrl.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m App) handleTick() (tea.Model, tea.Cmd) {
	events := append(m.pending, m.held.Tick()...)
	m.pending = nil
	m.ctrl.Tick(events)

	if s := m.ctrl.Screen(); s != m.last {
		m.enter(s)
	}
	if m.ctrl.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.cfg.TickRate)
}

// enter prepares per-screen widgets after a transition.
func (m *App) enter(s flow.Screen) {
	m.last = s
	switch s {
	case flow.ScreenGameOver:
		m.name.Reset()
		m.name.Focus()
	case flow.ScreenPlay, flow.ScreenPause:
		m.name.Blur()
	default:
		m.name.Blur()
		m.held.Reset()
	}
}

func (m App) cells() cellMap {
	return cellMap{w: m.screen.Width(), h: m.screen.Height()}
}

// draw renders the current screen into the cell buffer.
func (m App) draw() {
	dst := m.screen
	dst.Clear()
	cm := m.cells()
	c := m.ctrl

	switch c.Screen() {
	case flow.ScreenPlay:
		c.Run().Render(dst)
		return
	case flow.ScreenPause:
		c.Run().Render(dst)
		cm.drawLabels(dst, c.Labels(), true)
		cm.drawButtons(dst, c.Buttons(), c.ButtonStates())
		return
	case flow.ScreenTitle:
		cm.drawSkin(dst, c)
	case flow.ScreenScores:
		labels := c.Labels()
		cm.drawLabels(dst, labels[:1], false)
		_, row := cm.Cell(labels[1].Center)
		drawScores(dst, c.HighScores(), row)
		cm.drawButtons(dst, c.Buttons(), c.ButtonStates())
		return
	case flow.ScreenGameOver:
		cm.drawNameBox(dst, m.name.Value(), m.name.Placeholder, m.name.Position(), m.name.Focused())
	}

	cm.drawLabels(dst, c.Labels(), false)
	cm.drawButtons(dst, c.Buttons(), c.ButtonStates())
}

// View renders the current state to a string for display.
func (m App) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	keys := m.keys.withControls(m.ctrl.Settings().Controls())
	return m.styles.render(m.screen) + "\n" + m.help.ShortHelpView(keys.bindings(m.ctrl.Screen()))
}

// Controller exposes the session's controller.
func (m App) Controller() *flow.Controller {
	return m.ctrl
}

// saveScreenshot saves the current screen to a file.
func (m App) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".dodge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("cannot save screenshot", "error", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("dodge_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// Run starts the terminal game and blocks until the player quits.
func Run(opts AppOptions) error {
	p := tea.NewProgram(
		NewApp(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
