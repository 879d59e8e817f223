package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bomberquest/internal/config"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/levels"
	"github.com/vovakirdan/bomberquest/internal/platform/tui"
)

// Flags shared by the commands that start a game.
var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagMap        string
	flagLevel      int
	flagTheme      string
	flagLogFile    string
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of level files to use instead of the builtin campaign")
	cmd.Flags().StringVar(&flagMap, "map", "", "Play a single map file (.properties or .yaml)")
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-indexed, 0 = pick interactively or first)")
	cmd.Flags().StringVar(&flagTheme, "theme", "default", "Terminal color theme: default, neon, mono")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
}

// applyGameFlags configures the game package from the shared flags.
// The returned cleanup closes the event log, if any.
func applyGameFlags() (cleanup func(), err error) {
	cleanup = func() {}

	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return cleanup, err
		}
	}
	th, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return cleanup, err
	}
	if flagMap != "" {
		if err := validateMap(flagMap); err != nil {
			return cleanup, err
		}
	}

	tui.SetTheme(th)
	bomberquest.SetConfigPath(flagConfig)
	bomberquest.SetDifficultyPreset(flagDifficulty)
	bomberquest.SetLevelsDir(flagLevels)
	bomberquest.SetMapFile(flagMap)
	if flagLevel > 0 {
		bomberquest.SetStartLevel(flagLevel)
	}

	if flagLogFile != "" {
		closeLog, err := openEventLog(flagLogFile)
		if err != nil {
			return cleanup, err
		}
		cleanup = closeLog
	}
	return cleanup, nil
}

// validateMap loads and builds a map once so errors are reported before
// the terminal switches to the alternate screen.
func validateMap(path string) error {
	lvl, err := levels.LoadPath(path)
	if err != nil {
		return err
	}
	_, err = lvl.Build(rand.New(rand.NewSource(1)))
	return err
}

// openEventLog routes simulation events to a log file.
func openEventLog(path string) (func(), error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "bomberquest",
	})
	bomberquest.SetEventSink(tui.NewLogSink(logger))

	return func() {
		bomberquest.SetEventSink(nil)
		f.Close()
	}, nil
}
