package core_test

import (
	"testing"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
)

func TestGridOutOfBoundsIsBlocking(t *testing.T) {
	g := core.NewGrid(4, 3)

	tests := []struct {
		name string
		c    core.Coord
	}{
		{"left of grid", core.C(-1, 1)},
		{"right of grid", core.C(4, 1)},
		{"above grid", core.C(2, -1)},
		{"below grid", core.C(2, 3)},
		{"far corner", core.C(100, -100)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if g.KindAt(tc.c) != core.WallIndestructible {
				t.Errorf("KindAt(%v) = %v, expected WallIndestructible", tc.c, g.KindAt(tc.c))
			}
			if !g.IsBlocking(tc.c) {
				t.Errorf("IsBlocking(%v) = false, expected true", tc.c)
			}
			if g.Destroy(tc.c) {
				t.Errorf("Destroy(%v) should be a no-op outside the grid", tc.c)
			}
		})
	}
}

func TestGridIsBlocking(t *testing.T) {
	g := core.NewGrid(3, 1)
	g.Set(core.C(1, 0), core.WallDestructible)
	g.Set(core.C(2, 0), core.WallIndestructible)

	if g.IsBlocking(core.C(0, 0)) {
		t.Error("floor should not block")
	}
	if !g.IsBlocking(core.C(1, 0)) {
		t.Error("destructible wall should block")
	}
	if !g.IsBlocking(core.C(2, 0)) {
		t.Error("indestructible wall should block")
	}
}

func TestGridDestroy(t *testing.T) {
	g := core.NewGrid(3, 1)
	g.Set(core.C(0, 0), core.WallDestructible)
	g.Set(core.C(1, 0), core.WallIndestructible)

	if !g.Destroy(core.C(0, 0)) {
		t.Fatal("destroying a destructible wall should return true")
	}
	if g.KindAt(core.C(0, 0)) != core.Floor {
		t.Errorf("destroyed wall should be floor, got %v", g.KindAt(core.C(0, 0)))
	}
	if g.IsBlocking(core.C(0, 0)) {
		t.Error("destroyed wall should no longer block")
	}

	// Second destroy is a no-op
	if g.Destroy(core.C(0, 0)) {
		t.Error("destroying an already destroyed tile should return false")
	}
	if g.KindAt(core.C(0, 0)) != core.Floor {
		t.Error("destroyed wall must never revert")
	}

	if g.Destroy(core.C(1, 0)) {
		t.Error("indestructible wall must not be destroyed")
	}
	if g.KindAt(core.C(1, 0)) != core.WallIndestructible {
		t.Error("indestructible wall changed kind")
	}

	if g.Destroy(core.C(2, 0)) {
		t.Error("destroying floor should return false")
	}
}

func TestGridCoordsRowMajor(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.Set(core.C(2, 0), core.WallDestructible)
	g.Set(core.C(0, 1), core.WallDestructible)
	g.Set(core.C(1, 2), core.WallDestructible)

	got := g.Coords(core.WallDestructible)
	want := []core.Coord{core.C(2, 0), core.C(0, 1), core.C(1, 2)}

	if len(got) != len(want) {
		t.Fatalf("expected %d coords, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coord %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if g.Count(core.WallDestructible) != 3 {
		t.Errorf("Count = %d, expected 3", g.Count(core.WallDestructible))
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := core.NewGrid(2, 1)
	g.Set(core.C(0, 0), core.WallDestructible)

	clone := g.Clone()
	clone.Destroy(core.C(0, 0))

	if g.KindAt(core.C(0, 0)) != core.WallDestructible {
		t.Error("destroying on a clone must not affect the original")
	}
}
