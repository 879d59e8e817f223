package storage

import (
	"math"
	"testing"
)

func TestModeSummaryUnplayed(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.ModeSummary("bomberquest")
	if err != nil {
		t.Fatalf("ModeSummary() failed: %v", err)
	}
	if sum.GameID != "bomberquest" || sum.Sessions != 0 || sum.Runs != 0 {
		t.Errorf("expected empty summary, got %+v", sum)
	}
	if sum.ClearRate() != 0 {
		t.Errorf("ClearRate() = %v, want 0", sum.ClearRate())
	}
	if !sum.LastPlayed.IsZero() {
		t.Error("unplayed mode should have no last played time")
	}
}

func TestModeSummaries(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 300} {
		if _, err := store.SaveScore("bomberquest", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	runs := []RunResult{
		{GameID: "bomberquest", LevelID: "First Steps", Outcome: OutcomeVictory, Duration: 20},
		{GameID: "bomberquest", LevelID: "Crossroads", Outcome: OutcomeDefeat, Reason: "Killed by enemy", Duration: 10},
		{GameID: "bomberquest", LevelID: "Crossroads", Outcome: OutcomeAbandoned, Duration: 5},
		{GameID: "bomberquest", LevelID: "Crossroads", Outcome: OutcomeVictory, Duration: 15},
		{GameID: "bomberquest_relaxed", LevelID: "First Steps", Outcome: OutcomeVictory, Duration: 40},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	all, err := store.ModeSummaries()
	if err != nil {
		t.Fatalf("ModeSummaries() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 modes, got %d", len(all))
	}

	timed := all["bomberquest"]
	if timed.Sessions != 2 || timed.HighScore != 300 || timed.AvgScore != 200 {
		t.Errorf("unexpected score aggregates: %+v", timed)
	}
	if timed.Runs != 4 || timed.Clears != 2 || timed.Abandoned != 1 {
		t.Errorf("unexpected run aggregates: %+v", timed)
	}
	if math.Abs(timed.PlayTime-50) > 1e-9 {
		t.Errorf("PlayTime = %v, want 50", timed.PlayTime)
	}
	if timed.ClearRate() != 0.5 {
		t.Errorf("ClearRate() = %v, want 0.5", timed.ClearRate())
	}
	if timed.LastPlayed.IsZero() {
		t.Error("expected last played time")
	}

	// Runs alone are enough for a mode to show up.
	relaxed := all["bomberquest_relaxed"]
	if relaxed == nil || relaxed.Sessions != 0 || relaxed.Runs != 1 {
		t.Errorf("unexpected relaxed summary: %+v", relaxed)
	}

	one, err := store.ModeSummary("bomberquest")
	if err != nil {
		t.Fatalf("ModeSummary() failed: %v", err)
	}
	if one.Runs != timed.Runs || one.HighScore != timed.HighScore {
		t.Errorf("ModeSummary() disagrees with ModeSummaries(): %+v vs %+v", one, timed)
	}
}
