package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bomberquest/internal/core"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest"
	"github.com/vovakirdan/bomberquest/internal/platform/gui"
	"github.com/vovakirdan/bomberquest/internal/storage"
)

var flagRelaxed bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play BomberQuest in a desktop window",
	Long: `Open a desktop window and play the campaign with keyboard controls.

The window frontend needs a build with the ebiten tag:
  go build -tags ebiten ./cmd/bomberquest

Controls:
  Arrows/WASD  - Move (hold to repeat)
  Space/X      - Place bomb
  P/Esc        - Pause
  R            - Restart (after game over)
  Q            - Quit

Examples:
  bomberquest window
  bomberquest window --relaxed --level 2
  bomberquest window --map ./maps/arena.yaml`,
	Run: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().BoolVar(&flagRelaxed, "relaxed", false, "Play without the level countdown")
}

func runWindow(_ *cobra.Command, _ []string) {
	cleanup, err := applyGameFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mode := bomberquest.ModeTimed
	if flagRelaxed {
		mode = bomberquest.ModeRelaxed
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  gui.DefaultWidth,
		ScreenH:  gui.DefaultHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	runErr := gui.Run(bomberquest.New(mode), store, cfg)

	if store != nil {
		store.Close()
	}
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		if errors.Is(runErr, gui.ErrNoWindow) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
