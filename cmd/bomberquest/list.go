package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest"
	"github.com/vovakirdan/bomberquest/internal/registry"
	"github.com/vovakirdan/bomberquest/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and levels",
	Long:  `Shows the registered game modes and the levels of the campaign.`,
	Run:   runList,
}

func init() {
	listCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of level files to list instead of the builtin campaign")
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Game modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Play stats are optional; a missing database just leaves them blank.
	var summaries map[string]*storage.ModeSummary
	if store, err := storage.Open(flagDBPath); err == nil {
		summaries, _ = store.ModeSummaries()
		store.Close()
	}

	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Title", "Played")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "-----", "------")

	for _, g := range games {
		played := "-"
		if sum, ok := summaries[g.ID]; ok {
			played = fmt.Sprintf("%d runs, %d clears, best %d", sum.Runs, sum.Clears, sum.HighScore)
		}
		fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, g.ID, g.Title, played)
	}

	bomberquest.SetLevelsDir(flagLevels)
	names := bomberquest.LevelNames()
	fmt.Println()
	fmt.Println("Levels:")
	fmt.Println()
	if len(names) == 0 {
		fmt.Println("  (none found)")
	}
	for i, name := range names {
		fmt.Printf("  %2d. %s\n", i+1, name)
	}

	fmt.Println()
	fmt.Println("Run 'bomberquest play <id>' to play.")
}
