package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest"
	"github.com/vovakirdan/bomberquest/internal/registry"
	"github.com/vovakirdan/bomberquest/internal/storage"
)

var (
	flagRecentRuns int
	flagLevelName  string
	flagClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and level records",
	Long: `Display the top 10 high scores for a mode, followed by the
attempts, wins and fastest clear of every level played.

Examples:
  bomberquest scores
  bomberquest scores bomberquest_relaxed
  bomberquest scores --runs 20
  bomberquest scores --level "Crossroads"
  bomberquest scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecentRuns, "runs", 0, "Also list this many of the most recent level runs")
	scoresCmd.Flags().StringVar(&flagLevelName, "level", "", "Show the fastest clear of one level")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := bomberquest.IDTimed
	if len(args) > 0 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bomberquest list' to see available modes.")
		os.Exit(1)
	}
	title := info.Title

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores and runs for %s.\n", title)
		return
	case flagLevelName != "":
		printFastestClear(store, gameID, flagLevelName)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bomberquest play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if sum, err := store.ModeSummary(gameID); err == nil && (sum.Sessions > 0 || sum.Runs > 0) {
		fmt.Println()
		fmt.Printf("Best: %d  Average: %.0f  Sessions: %d\n", sum.HighScore, sum.AvgScore, sum.Sessions)
		fmt.Printf("Runs: %d  Clears: %d (%.0f%%)  Abandoned: %d  Play time: %s\n",
			sum.Runs, sum.Clears, sum.ClearRate()*100, sum.Abandoned, bomberquest.FormatClock(sum.PlayTime))
	}

	if levelStats, err := store.GetLevelStats(gameID); err == nil && len(levelStats) > 0 {
		fmt.Println()
		fmt.Println("Level Records")
		fmt.Println()
		fmt.Printf("  %-20s  %-8s  %-6s  %s\n", "Level", "Attempts", "Wins", "Fastest")
		fmt.Printf("  %-20s  %-8s  %-6s  %s\n", "-----", "--------", "----", "-------")
		for _, ls := range levelStats {
			best := "-"
			if ls.Victories > 0 {
				best = fmt.Sprintf("%.1fs", ls.BestTime)
			}
			fmt.Printf("  %-20s  %-8d  %-6d  %s\n", ls.LevelID, ls.Attempts, ls.Victories, best)
		}
	}

	if flagRecentRuns > 0 {
		printRecentRuns(store, gameID, flagRecentRuns)
	}
}

func printFastestClear(store *storage.Store, gameID, level string) {
	run, err := store.FastestClear(gameID, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Printf("%s has not been cleared yet.\n", level)
		return
	}
	fmt.Printf("Fastest clear of %s: %.1fs\n", level, run.Duration)
	fmt.Printf("  bombs %d, walls %d, enemies %d, score %d, on %s\n",
		run.BombsPlaced, run.WallsDestroyed, run.EnemiesKilled, run.Score,
		run.CreatedAt.Format("2006-01-02 15:04"))
}

func printRecentRuns(store *storage.Store, gameID string, limit int) {
	runs, err := store.RecentRuns(gameID, limit)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent Runs")
	fmt.Println()
	fmt.Printf("  %-20s  %-9s  %-7s  %s\n", "Level", "Outcome", "Time", "Reason")
	fmt.Printf("  %-20s  %-9s  %-7s  %s\n", "-----", "-------", "----", "------")
	for _, r := range runs {
		fmt.Printf("  %-20s  %-9s  %-7s  %s\n", r.LevelID, r.Outcome, fmt.Sprintf("%.1fs", r.Duration), r.Reason)
	}
}
