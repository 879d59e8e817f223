// Package gui runs BomberQuest in a desktop window using Ebitengine.
// It is a render and input collaborator only: the rules live in the
// bomberquest package and are stepped once per ebiten tick.
//
// The window needs the ebiten build tag; without it Run reports
// ErrNoWindow so headless builds and tests skip the graphics stack.
package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
)

// Default window size in pixels.
const (
	DefaultWidth  = 960
	DefaultHeight = 720
)

// Key repeat timing, in ticks, for held movement keys.
const (
	repeatDelay    = 12
	repeatInterval = 6
)

// Layout constants, in pixels.
const (
	hudHeight   = 40
	lineHeight  = 16
	minTileSize = 8
	maxTileSize = 48
)

var (
	colorBackground     = color.RGBA{20, 20, 28, 255}
	colorFloor          = color.RGBA{34, 110, 52, 255}
	colorIndestructible = color.RGBA{90, 90, 96, 255}
	colorDestructible   = color.RGBA{190, 120, 60, 255}
	colorExitLocked     = color.RGBA{170, 40, 40, 255}
	colorExitOpen       = color.RGBA{80, 230, 120, 255}
	colorPlayer         = color.RGBA{80, 220, 255, 255}
	colorDead           = color.RGBA{120, 30, 30, 255}
	colorEnemy          = color.RGBA{240, 70, 70, 255}
	colorBomb           = color.RGBA{25, 25, 25, 255}
	colorFuse           = color.RGBA{255, 200, 40, 255}
	colorBlast          = color.RGBA{255, 230, 90, 220}
	colorCapacity       = color.RGBA{90, 200, 255, 255}
	colorRadius         = color.RGBA{230, 90, 230, 255}
	colorText           = color.RGBA{220, 225, 235, 255}
	colorDim            = color.RGBA{140, 145, 155, 255}
	colorShade          = color.RGBA{0, 0, 0, 160}
)

// tileColor returns the fill for a static map tile.
func tileColor(kind core.CellKind) color.RGBA {
	switch kind {
	case core.WallIndestructible:
		return colorIndestructible
	case core.WallDestructible:
		return colorDestructible
	default:
		return colorFloor
	}
}

// fitTile picks the largest tile size that shows a gridW x gridH map in a
// screenW x screenH area below the HUD, and the offset that centers it.
func fitTile(screenW, screenH, gridW, gridH int) (size, offX, offY int) {
	if gridW <= 0 || gridH <= 0 {
		return minTileSize, 0, hudHeight
	}
	size = min(screenW/gridW, (screenH-hudHeight)/gridH)
	size = max(minTileSize, min(size, maxTileSize))
	offX = (screenW - gridW*size) / 2
	offY = hudHeight + (screenH-hudHeight-gridH*size)/2
	return size, max(offX, 0), max(offY, hudHeight)
}

// hudLines returns the two status lines shown above the map.
func hudLines(st bomberquest.Status, snap core.Snapshot) (string, string) {
	top := fmt.Sprintf("Level %d/%d %s   Score: %d", st.Level, st.LevelCount, st.LevelName, st.Score)

	p := snap.Player
	bottom := fmt.Sprintf("Radius: %d   Bombs: %d/%d", p.BombRadius, p.BombCapacity-p.BombsActive, p.BombCapacity)
	if snap.TimeLimit > 0 {
		bottom += "   Time: " + bomberquest.FormatClock(snap.Remaining)
	}
	bottom += fmt.Sprintf("   Enemies: %d", snap.EnemiesLeft)
	if snap.Exit.Unlocked {
		bottom += "   EXIT UNLOCKED!"
	}
	return top, bottom
}

// shouldFire reports whether a key held for duration ticks triggers this
// tick. A press fires once, then repeats after repeatDelay every
// repeatInterval ticks when repeat is set.
func shouldFire(duration int, repeat bool) bool {
	if duration == 1 {
		return true
	}
	if !repeat || duration < repeatDelay {
		return false
	}
	return (duration-repeatDelay)%repeatInterval == 0
}

// ErrNoWindow is returned by Run when the binary was built without the
// ebiten build tag.
var ErrNoWindow = errors.New("gui: built without window support, rebuild with -tags ebiten")
