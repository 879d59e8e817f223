package core_test

import (
	"testing"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
)

// gridFrom builds a grid from rows: '#' indestructible, '+' destructible, anything else floor.
func gridFrom(rows ...string) *core.Grid {
	g := core.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '#':
				g.Set(core.C(x, y), core.WallIndestructible)
			case '+':
				g.Set(core.C(x, y), core.WallDestructible)
			}
		}
	}
	return g
}

func coordSet(cs []core.Coord) map[core.Coord]bool {
	m := make(map[core.Coord]bool, len(cs))
	for _, c := range cs {
		m[c] = true
	}
	return m
}

func TestBlastArmStopRules(t *testing.T) {
	g := gridFrom(
		"#######",
		"#.....#",
		"#..+..#",
		"#.....#",
		"#..#..#",
		"#.....#",
		"#######",
	)

	out := core.ResolveBlast(core.C(3, 3), 3, g, nil, nil)

	want := []core.Coord{
		core.C(3, 3),               // origin
		core.C(3, 2),               // up: destructible, destroyed, stop
		core.C(2, 3), core.C(1, 3), // left: floor until border
		core.C(4, 3), core.C(5, 3), // right: floor until border
	}

	got := coordSet(out.Affected)
	if len(out.Affected) != len(want) {
		t.Errorf("expected %d affected tiles, got %d: %v", len(want), len(out.Affected), out.Affected)
	}
	for _, c := range want {
		if !got[c] {
			t.Errorf("expected %v to be affected", c)
		}
	}

	// Tiles behind blockers stay untouched
	for _, c := range []core.Coord{core.C(3, 1), core.C(3, 4), core.C(3, 5), core.C(0, 3), core.C(6, 3)} {
		if got[c] {
			t.Errorf("%v should not be affected", c)
		}
	}

	if len(out.DestroyedWalls) != 1 || out.DestroyedWalls[0] != core.C(3, 2) {
		t.Errorf("expected only (3,2) destroyed, got %v", out.DestroyedWalls)
	}
	if g.KindAt(core.C(3, 2)) != core.Floor {
		t.Error("destroyed wall should be floor")
	}
	if g.KindAt(core.C(3, 4)) != core.WallIndestructible {
		t.Error("indestructible wall must survive")
	}
}

func TestBlastStopsAtMapEdge(t *testing.T) {
	g := gridFrom("...")

	out := core.ResolveBlast(core.C(0, 0), 5, g, nil, nil)

	if len(out.Affected) != 3 {
		t.Errorf("expected 3 affected tiles, got %d: %v", len(out.Affected), out.Affected)
	}
	for _, c := range out.Affected {
		if !g.InBounds(c) {
			t.Errorf("blast reported out-of-bounds tile %v", c)
		}
	}
}

func TestBlastDestructibleAbsorbs(t *testing.T) {
	g := gridFrom("..++")

	out := core.ResolveBlast(core.C(0, 0), 4, g, nil, nil)

	if len(out.DestroyedWalls) != 1 || out.DestroyedWalls[0] != core.C(2, 0) {
		t.Errorf("expected only the first wall destroyed, got %v", out.DestroyedWalls)
	}
	if g.KindAt(core.C(3, 0)) != core.WallDestructible {
		t.Error("wall behind the first destructible must survive")
	}
}

func TestBlastRadiusLimit(t *testing.T) {
	g := gridFrom(".......")

	out := core.ResolveBlast(core.C(0, 0), 2, g, nil, nil)

	got := coordSet(out.Affected)
	if !got[core.C(2, 0)] {
		t.Error("tile at radius should be affected")
	}
	if got[core.C(3, 0)] {
		t.Error("tile beyond radius should not be affected")
	}
}

func TestBlastDirectionSymmetry(t *testing.T) {
	for _, dir := range core.CardinalDirs {
		t.Run(dir.String(), func(t *testing.T) {
			g := core.NewGrid(9, 9)
			origin := core.C(4, 4)
			wall := origin.Step(dir).Step(dir)
			g.Set(wall, core.WallDestructible)

			out := core.ResolveBlast(origin, 4, g, nil, nil)

			// Origin + 3 open arms of 4 tiles + 2 tiles on the walled arm
			if len(out.Affected) != 1+3*4+2 {
				t.Errorf("expected %d affected tiles, got %d", 1+3*4+2, len(out.Affected))
			}
			if len(out.DestroyedWalls) != 1 || out.DestroyedWalls[0] != wall {
				t.Errorf("expected %v destroyed, got %v", wall, out.DestroyedWalls)
			}
			if out.Contains(wall.Step(dir)) {
				t.Error("blast must not pass a destructible wall")
			}
		})
	}
}

func TestBlastHitsOccupants(t *testing.T) {
	g := gridFrom(
		".....",
		".....",
		"...+.",
	)

	enemies := []*core.Enemy{
		core.NewEnemy(1, core.C(0, 2)), // on origin
		core.NewEnemy(2, core.C(2, 2)), // in range on floor
		core.NewEnemy(3, core.C(4, 2)), // behind the destructible wall
		core.NewEnemy(4, core.C(0, 2)), // shares origin tile
	}
	player := core.NewPlayer(core.C(1, 2), 1, 1)

	out := core.ResolveBlast(core.C(0, 2), 4, g, enemies, player)

	killed := make(map[core.EnemyID]bool)
	for _, id := range out.KilledEnemies {
		if killed[id] {
			t.Errorf("enemy %d reported twice", id)
		}
		killed[id] = true
	}

	for _, id := range []core.EnemyID{1, 2, 4} {
		if !killed[id] {
			t.Errorf("enemy %d should be killed", id)
		}
	}
	if killed[3] {
		t.Error("enemy behind a wall should survive")
	}
	if !out.PlayerKilled {
		t.Error("player in range should be killed")
	}

	// ResolveBlast reports, it does not apply
	if !player.Alive {
		t.Error("ResolveBlast must not mutate the player")
	}
}

func TestBlastPlayerOutOfRange(t *testing.T) {
	g := gridFrom(
		"...",
		"...",
		"...",
	)
	player := core.NewPlayer(core.C(2, 2), 1, 1)

	out := core.ResolveBlast(core.C(0, 0), 3, g, nil, player)

	if out.PlayerKilled {
		t.Error("diagonal player must not be hit")
	}
}
