package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/platform/tui"
)

func runPlay(_ *cobra.Command, _ []string) {
	// The alt screen owns stdout, so logs go to a file.
	var logOut io.Writer = io.Discard
	if f, err := openLogFile(flagLogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	// Setup problems are reported before the alt screen opens.
	e := setup(newLogger(os.Stderr))
	e.logger = logger
	defer e.close()

	cfg := core.DefaultConfig()
	cfg.TickRate = e.tuning.Timing.TickRate
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	logger.Info("terminal session started", "width", cfg.ScreenW, "height", cfg.ScreenH, "tick_rate", cfg.TickRate)
	err := tui.Run(tui.AppOptions{
		Tuning:   e.tuning,
		Catalog:  e.catalog,
		Settings: e.settings,
		Scores:   e.scores(),
		Audio:    e.audio(),
		Logger:   logger,
		Runtime:  cfg,
	})
	if err != nil {
		logger.Error("terminal session failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		e.close()
		os.Exit(1)
	}
}
