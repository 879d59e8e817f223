//go:build !ebiten

package gui

import (
	"github.com/vovakirdan/bomberquest/internal/core"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest"
	"github.com/vovakirdan/bomberquest/internal/storage"
)

// Run reports ErrNoWindow in builds without the ebiten tag.
func Run(*bomberquest.Game, *storage.Store, core.RuntimeConfig) error {
	return ErrNoWindow
}
