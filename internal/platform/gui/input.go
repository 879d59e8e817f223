//go:build ebiten

package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/bomberquest/internal/core"
)

// binding maps keys to one action.
type binding struct {
	action core.Action
	keys   []ebiten.Key
	repeat bool // Fires again while held
}

var bindings = []binding{
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, true},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, true},
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, true},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, true},
	{core.ActionBomb, []ebiten.Key{ebiten.KeySpace, ebiten.KeyX}, false},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, false},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}, false},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}, false},
}

// readInput collects this tick's actions from the keyboard.
func readInput(frame *core.InputFrame) {
	for _, b := range bindings {
		for _, k := range b.keys {
			if shouldFire(inpututil.KeyPressDuration(k), b.repeat) {
				frame.Set(b.action)
				break
			}
		}
	}
}
