// bomberquest is a tile-based bomb maze game for the terminal, SSH and the desktop.
//
// Usage:
//
//	bomberquest list              - List available game modes
//	bomberquest play [mode]       - Play the campaign or a single map
//	bomberquest menu              - Start menu to pick modes interactively
//	bomberquest serve             - Start SSH server for remote play
//	bomberquest scores [mode]     - Show high scores and level records
//	bomberquest window            - Play in a desktop window
//	bomberquest config            - Print or install the default config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.bomberquest/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/bomberquest/internal/games/bomberquest"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomberquest",
	Short: "BomberQuest - Blast your way through tile mazes",
	Long: `BomberQuest is a bomb-placement maze game. Blow up walls, defeat
every enemy and reach the exit before the timer runs out.

Available commands:
  list     - Show the game modes
  play     - Play directly, optionally on a single map file
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and level records
  window   - Play in a desktop window
  config   - Print or install the default config

Examples:
  bomberquest play
  bomberquest play --map ./mymap.properties
  bomberquest menu
  bomberquest serve --ssh :2222
  bomberquest scores bomberquest_relaxed`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bomberquest/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
