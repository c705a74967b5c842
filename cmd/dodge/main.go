// dodge is a side-scrolling runner: jump over obstacles, dodge the ones
// overhead, and keep going as the world speeds up.
//
// Usage:
//
//	dodge           - Play in the terminal
//	dodge window    - Play in a desktop window
//	dodge scores    - Show the top 10 high scores
//	dodge serve     - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>        - Scores database (default: ~/.dodge/game.db)
//	--config <path>    - Tuning file (YAML or TOML)
//	--fps <rate>       - Debug: override the tick rate (default: from tuning, 60)
//	--log-file <path>  - Log file for terminal play (default: ~/.dodge/dodge.log)
//	--mute             - Start with music and sound off
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge/internal/audio"
	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/flow"
	"github.com/vovakirdan/dodge/internal/game"
	"github.com/vovakirdan/dodge/internal/storage"
)

var (
	// Global flags
	flagDBPath  string
	flagConfig  string
	flagFPS     int
	flagLogFile string
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge me Not - a runner for your terminal",
	Long: `Dodge me Not is a side-scrolling runner. Obstacles come from the
right; jump over the ones on the ground and stay under the flying ones.
Every 750 points the level goes up and the world speeds up.

Controls (switchable in Options):
  A/D or Left/Right  - Move
  W or Up            - Jump
  S or Down          - Drop faster
  Esc                - Pause

Examples:
  dodge
  dodge window
  dodge scores
  dodge serve --ssh :2222
  dodge --config ./my-dodge.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodge/game.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tuning file (YAML or TOML)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Debug: override the tick rate; motion is tuned per tick at 60 (0 = from tuning)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.dodge/dodge.log", "Log file for terminal play")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with music and sound off")

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// env is what every frontend needs.
type env struct {
	tuning   config.Tuning
	catalog  *game.Catalog
	settings *game.Settings
	store    *storage.Store
	logger   *log.Logger
}

// scores returns the store as a ScoreBook, or nil when there is none.
// A nil *Store must not reach the controller wrapped in an interface.
func (e *env) scores() flow.ScoreBook {
	if e.store == nil {
		return nil
	}
	return e.store
}

func (e *env) close() {
	if e.store != nil {
		e.store.Close()
		e.store = nil
	}
}

// audio opens the sound device, falling back to silence.
func (e *env) audio() audio.Player {
	synth, err := audio.NewSynth(e.logger)
	if err != nil {
		e.logger.Warn("audio unavailable, playing muted", "error", err)
		return audio.Nop{}
	}
	return synth
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodge",
	})
}

// setup loads tuning and sprites and opens the store. Bad tuning or
// sprites are fatal; a missing store is not.
func setup(logger *log.Logger) *env {
	tuning, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load tuning", "path", flagConfig, "error", err)
	}
	if flagFPS > 0 {
		tuning.Timing.TickRate = flagFPS
	}

	cat, err := game.DefaultCatalog()
	if err != nil {
		logger.Fatal("cannot load sprites", "error", err)
	}
	if err := cat.Fits(tuning); err != nil {
		logger.Fatal("sprites do not fit the tuning", "error", err)
	}

	settings := game.DefaultSettings(tuning.Difficulty)
	if flagMute {
		settings.Music, settings.Sound = false, false
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		store = nil
	}

	return &env{
		tuning:   tuning,
		catalog:  cat,
		settings: &settings,
		store:    store,
		logger:   logger,
	}
}

// expandHome resolves a leading ~ to the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// openLogFile opens the log file for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
