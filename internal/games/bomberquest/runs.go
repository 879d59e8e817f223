package bomberquest

import (
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
	"github.com/vovakirdan/bomberquest/internal/storage"
)

// RunSummary describes one finished attempt at a level.
type RunSummary struct {
	LevelID   string
	Outcome   core.Outcome // OutcomeRunning when Abandoned
	Abandoned bool
	Reason    string
	Score     int // Session score when the run ended
	Ticks     uint64
	Elapsed   float64
	Stats     core.Stats
}

func (g *Game) recordRun(outcome core.Outcome) {
	if g.sim == nil {
		return
	}
	g.runs = append(g.runs, RunSummary{
		LevelID: g.allLevels[g.levelIndex].ID,
		Outcome: outcome,
		Reason:  g.sim.Reason(),
		Score:   g.score,
		Ticks:   g.sim.TickCount(),
		Elapsed: g.sim.Elapsed(),
		Stats:   g.sim.Stats(),
	})
}

// Abandon records the level in progress as abandoned. It is a no-op unless
// a level is being played and at least one tick has run.
func (g *Game) Abandon() {
	if g.phase != PhasePlaying || g.sim == nil || g.sim.TickCount() == 0 {
		return
	}
	g.recordRun(core.OutcomeRunning)
	g.runs[len(g.runs)-1].Abandoned = true
	g.sim = nil
	g.phase = PhaseDefeat
}

// DrainRuns returns the runs finished since the last call.
func (g *Game) DrainRuns() []RunSummary {
	runs := g.runs
	g.runs = nil
	return runs
}

// Result converts the summary into a storage record for gameID.
func (r RunSummary) Result(gameID string) storage.RunResult {
	outcome := storage.OutcomeAbandoned
	switch {
	case r.Abandoned:
	case r.Outcome == core.OutcomeVictory:
		outcome = storage.OutcomeVictory
	case r.Outcome == core.OutcomeDefeat:
		outcome = storage.OutcomeDefeat
	}

	return storage.RunResult{
		GameID:         gameID,
		LevelID:        r.LevelID,
		Outcome:        outcome,
		Reason:         r.Reason,
		Score:          r.Score,
		Ticks:          r.Ticks,
		Duration:       r.Elapsed,
		BombsPlaced:    r.Stats.BombsPlaced,
		WallsDestroyed: r.Stats.WallsDestroyed,
		EnemiesKilled:  r.Stats.EnemiesKilled,
	}
}
