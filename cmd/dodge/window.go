package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a 750x500 window. The window reports real key
releases, so movement stops the moment a key is let go.

Examples:
  dodge window
  dodge window --mute`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)
	e := setup(logger)
	defer e.close()

	err := gui.Run(gui.Options{
		Tuning:   e.tuning,
		Catalog:  e.catalog,
		Settings: e.settings,
		Scores:   e.scores(),
		Audio:    e.audio(),
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		e.close()
		os.Exit(1)
	}
}
