package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bomberquest/internal/core"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest"
	"github.com/vovakirdan/bomberquest/internal/platform/tui"
	"github.com/vovakirdan/bomberquest/internal/registry"
	"github.com/vovakirdan/bomberquest/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play BomberQuest",
	Long: `Start playing. The mode defaults to the timed campaign.

Controls:
  Arrows/WASD  - Move
  Space/X      - Place bomb
  P/Esc        - Pause
  R            - Restart (after game over)
  B            - Back to menu (when paused or over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More time, slower enemies
  normal - Default timing, light progression
  hard   - Less time, faster enemies
  fixed  - No progression, stays at config's initial level

Examples:
  bomberquest play
  bomberquest play bomberquest_relaxed
  bomberquest play --map ./maps/arena.properties
  bomberquest play --levels ./my-campaign --level 3
  bomberquest play --difficulty hard --theme neon
  bomberquest play --log-file ./events.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := bomberquest.IDTimed
	if len(args) > 0 {
		gameID = args[0]
	}

	if _, ok := registry.Lookup(gameID); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bomberquest list' to see available modes.")
		os.Exit(1)
	}

	cleanup, err := applyGameFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early for the level selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Offer the level picker for multi-level campaigns unless a level was given
	if flagMap == "" && flagLevel == 0 && bomberquest.LevelCount() > 1 {
		selection, selErr := tui.RunLevelSelector(cfg)
		if selErr != nil {
			cleanup()
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if selection == nil {
			cleanup()
			return
		}
		bomberquest.SetStartLevel(selection.Level)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, cfg)

	// Close store and log before potential exit
	if store != nil {
		store.Close()
	}
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
