package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunResult{
		{GameID: "bomberquest", LevelID: "01", Outcome: OutcomeDefeat, Reason: "Bomb explosion", Ticks: 300, Duration: 5},
		{GameID: "bomberquest", LevelID: "01", Outcome: OutcomeVictory, Score: 1200, Ticks: 1800, Duration: 30, EnemiesKilled: 2},
		{GameID: "bomberquest_relaxed", LevelID: "01", Outcome: OutcomeVictory, Duration: 90},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("bomberquest", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(got))
	}

	// Newest first
	if got[0].Outcome != OutcomeVictory || got[0].Score != 1200 || got[0].EnemiesKilled != 2 {
		t.Errorf("Unexpected newest run: %+v", got[0])
	}
	if got[0].Reason != "" {
		t.Errorf("Victory should have no reason, got %q", got[0].Reason)
	}
	if got[1].Reason != "Bomb explosion" || got[1].Ticks != 300 {
		t.Errorf("Unexpected oldest run: %+v", got[1])
	}
}

func TestSaveRunValidation(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunResult{GameID: "bomberquest"}); err == nil {
		t.Error("Expected error for run without level and outcome")
	}
}

func TestFastestClear(t *testing.T) {
	store := openTestStore(t)

	best, err := store.FastestClear("bomberquest", "01")
	if err != nil {
		t.Fatalf("FastestClear() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no clear yet, got %+v", best)
	}

	store.SaveRun(RunResult{GameID: "bomberquest", LevelID: "01", Outcome: OutcomeVictory, Duration: 42})
	store.SaveRun(RunResult{GameID: "bomberquest", LevelID: "01", Outcome: OutcomeDefeat, Duration: 3})
	store.SaveRun(RunResult{GameID: "bomberquest", LevelID: "01", Outcome: OutcomeVictory, Duration: 27.5})

	best, err = store.FastestClear("bomberquest", "01")
	if err != nil {
		t.Fatalf("FastestClear() failed: %v", err)
	}
	if best == nil || best.Duration != 27.5 {
		t.Errorf("Expected fastest clear of 27.5s, got %+v", best)
	}
}

func TestLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunResult{GameID: "bomberquest", LevelID: "02", Outcome: OutcomeDefeat, Duration: 10})
	store.SaveRun(RunResult{GameID: "bomberquest", LevelID: "01", Outcome: OutcomeVictory, Duration: 50})
	store.SaveRun(RunResult{GameID: "bomberquest", LevelID: "01", Outcome: OutcomeVictory, Duration: 40})
	store.SaveRun(RunResult{GameID: "bomberquest", LevelID: "01", Outcome: OutcomeAbandoned, Duration: 5})

	stats, err := store.GetLevelStats("bomberquest")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(stats))
	}

	if stats[0].LevelID != "01" || stats[0].Attempts != 3 || stats[0].Victories != 2 || stats[0].BestTime != 40 {
		t.Errorf("Unexpected stats for 01: %+v", stats[0])
	}
	if stats[1].LevelID != "02" || stats[1].Victories != 0 || stats[1].BestTime != 0 {
		t.Errorf("Unexpected stats for 02: %+v", stats[1])
	}
}

func TestClearScoresRemovesRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("bomberquest", 100)
	store.SaveRun(RunResult{GameID: "bomberquest", LevelID: "01", Outcome: OutcomeDefeat})

	if err := store.ClearScores("bomberquest"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	runs, _ := store.RecentRuns("bomberquest", 10)
	if len(runs) != 0 {
		t.Errorf("Expected runs to be cleared, got %d", len(runs))
	}
}
