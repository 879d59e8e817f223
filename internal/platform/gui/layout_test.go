package gui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
)

func TestShouldFire(t *testing.T) {
	tests := []struct {
		duration int
		repeat   bool
		want     bool
	}{
		{0, true, false},
		{1, false, true},
		{1, true, true},
		{2, true, false},
		{repeatDelay - 1, true, false},
		{repeatDelay, true, true},
		{repeatDelay, false, false},
		{repeatDelay + 1, true, false},
		{repeatDelay + repeatInterval, true, true},
	}
	for _, tt := range tests {
		if got := shouldFire(tt.duration, tt.repeat); got != tt.want {
			t.Errorf("shouldFire(%d, %v) = %v, want %v", tt.duration, tt.repeat, got, tt.want)
		}
	}
}

func TestFitTile(t *testing.T) {
	tests := []struct {
		name                   string
		screenW, screenH       int
		gridW, gridH           int
		wantSize, wantX, wantY int
	}{
		{"fits height", 960, 720, 15, 13, 48, 120, 68},
		{"width bound", 400, 720, 20, 10, 20, 0, 280},
		{"clamped small", 100, 100, 40, 40, minTileSize, 0, hudHeight},
		{"empty grid", 960, 720, 0, 0, minTileSize, 0, hudHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, x, y := fitTile(tt.screenW, tt.screenH, tt.gridW, tt.gridH)
			if size != tt.wantSize || x != tt.wantX || y != tt.wantY {
				t.Errorf("fitTile() = (%d, %d, %d), want (%d, %d, %d)",
					size, x, y, tt.wantSize, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTileColor(t *testing.T) {
	if tileColor(core.Floor) == tileColor(core.WallDestructible) {
		t.Error("floor and destructible walls need distinct colors")
	}
	if tileColor(core.WallIndestructible) == tileColor(core.WallDestructible) {
		t.Error("wall kinds need distinct colors")
	}
}

func TestHUDLines(t *testing.T) {
	st := bomberquest.Status{Level: 2, LevelCount: 4, LevelName: "Crossroads", Score: 310}
	snap := core.Snapshot{
		Player:      core.Player{BombCapacity: 2, BombsActive: 1, BombRadius: 3},
		EnemiesLeft: 0,
		TimeLimit:   120,
		Remaining:   65,
		Exit:        core.Exit{Unlocked: true},
	}

	top, bottom := hudLines(st, snap)
	if !strings.Contains(top, "Level 2/4 Crossroads") || !strings.Contains(top, "Score: 310") {
		t.Errorf("unexpected top line %q", top)
	}
	for _, want := range []string{"Radius: 3", "Bombs: 1/2", "Time: 1:05", "Enemies: 0", "EXIT UNLOCKED!"} {
		if !strings.Contains(bottom, want) {
			t.Errorf("bottom line %q missing %q", bottom, want)
		}
	}

	snap.TimeLimit = 0
	if _, bottom := hudLines(st, snap); strings.Contains(bottom, "Time:") {
		t.Error("untimed runs should not show a clock")
	}
}
