package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
)

// parseMap builds spawn records from an ASCII layout:
//
//	'#' indestructible wall   '+' destructible wall
//	'S' entrance              'E' enemy
//	'X' exit on floor         'x' exit under destructible wall
//	'C' / 'R' capacity / radius power-up on floor
//	'c' / 'r' capacity / radius power-up under destructible wall
func parseMap(rows ...string) ([]core.SpawnRecord, int, int) {
	var records []core.SpawnRecord
	w := 0
	for y, row := range rows {
		if len(row) > w {
			w = len(row)
		}
		for x, ch := range row {
			c := core.C(x, y)
			switch ch {
			case '#':
				records = append(records, core.WallRecord(c, false))
			case '+':
				records = append(records, core.WallRecord(c, true))
			case 'S':
				records = append(records, core.EntranceRecord(c))
			case 'E':
				records = append(records, core.EnemyRecord(c))
			case 'X':
				records = append(records, core.ExitRecord(c))
			case 'x':
				records = append(records, core.WallRecord(c, true), core.ExitRecord(c))
			case 'C':
				records = append(records, core.PowerUpRecord(c, core.PowerUpCapacity))
			case 'R':
				records = append(records, core.PowerUpRecord(c, core.PowerUpRadius))
			case 'c':
				records = append(records, core.WallRecord(c, true), core.PowerUpRecord(c, core.PowerUpCapacity))
			case 'r':
				records = append(records, core.WallRecord(c, true), core.PowerUpRecord(c, core.PowerUpRadius))
			}
		}
	}
	return records, w, len(rows)
}

func mustLoad(t *testing.T, rows ...string) *core.Level {
	t.Helper()
	records, w, h := parseMap(rows...)
	lvl, err := core.Load(records, w, h, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return lvl
}

// frozenRules keeps enemies in place so scenarios stay deterministic.
func frozenRules() core.Rules {
	r := core.DefaultRules()
	r.EnemyTurnSeconds = 1e9
	r.EnemyStepSeconds = 1e9
	return r
}

func newSim(t *testing.T, rules core.Rules, rows ...string) *core.Simulation {
	t.Helper()
	return core.NewSimulation(mustLoad(t, rows...), rules, rand.New(rand.NewSource(1)), nil)
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func move(d core.Dir) core.Intent {
	return core.Intent{Move: d}
}

var (
	idle = core.Intent{}
	bomb = core.Intent{PlaceBomb: true}
)
