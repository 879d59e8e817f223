package tui

import (
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest"
	"github.com/vovakirdan/bomberquest/internal/registry"
	"github.com/vovakirdan/bomberquest/internal/storage"
)

// RunReporter is implemented by games that report finished level runs.
type RunReporter interface {
	DrainRuns() []bomberquest.RunSummary
}

// Abandoner is implemented by games that can record a level left unfinished.
type Abandoner interface {
	Abandon()
}

// recordRuns persists the runs a game finished since the last call.
// Runs are drained even without a store so they do not pile up.
func recordRuns(store *storage.Store, game registry.Game) {
	rr, ok := game.(RunReporter)
	if !ok {
		return
	}
	for _, r := range rr.DrainRuns() {
		if store == nil {
			continue
		}
		//nolint:errcheck // Best-effort save, game continues regardless
		store.SaveRun(r.Result(game.ID()))
	}
}
