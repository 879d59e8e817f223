//go:build ebiten

package gui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/bomberquest/internal/core"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest"
	"github.com/vovakirdan/bomberquest/internal/storage"
)

// Window adapts a bomberquest.Game to ebiten.Game.
type Window struct {
	game       *bomberquest.Game
	store      *storage.Store
	frame      core.InputFrame
	state      core.GameState
	scoreSaved bool
	width      int
	height     int
}

// NewWindow creates a window for game and starts a run with cfg.
// store may be nil.
func NewWindow(game *bomberquest.Game, store *storage.Store, cfg core.RuntimeConfig) *Window {
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = DefaultWidth, DefaultHeight
	}
	cfg = cfg.WithDefaults()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)
	return &Window{
		game:   game,
		store:  store,
		frame:  core.NewInputFrame(),
		state:  game.State(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Update reads the keyboard and advances the game by one tick.
func (w *Window) Update() error {
	readInput(&w.frame)
	defer w.frame.Clear()

	if w.frame.Has(core.ActionQuit) {
		w.leave()
		return ebiten.Termination
	}

	if w.frame.Has(core.ActionRestart) && w.state.GameOver {
		w.scoreSaved = false
	}

	w.state = w.game.Step(w.frame).State
	w.saveRuns()

	if w.state.GameOver && !w.scoreSaved && w.state.Score > 0 {
		if w.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			w.store.SaveScore(w.game.ID(), w.state.Score)
		}
		w.scoreSaved = true
	}
	return nil
}

// leave records an unfinished level before the window goes away.
func (w *Window) leave() {
	if !w.state.GameOver {
		w.game.Abandon()
	}
	w.saveRuns()
}

// saveRuns persists finished level runs.
func (w *Window) saveRuns() {
	for _, r := range w.game.DrainRuns() {
		if w.store == nil {
			continue
		}
		//nolint:errcheck // Best-effort save, game continues regardless
		w.store.SaveRun(r.Result(w.game.ID()))
	}
}

// Draw renders the current snapshot, HUD and overlays.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	st := w.game.Status()

	if st.Phase == bomberquest.PhaseError {
		msg := "No playable level"
		if st.Err != nil {
			msg = st.Err.Error()
		}
		drawOverlay(screen, "Map error", msg, colorEnemy)
		return
	}

	snap, ok := w.game.Snapshot()
	if !ok {
		return
	}

	top, bottom := hudLines(st, snap)
	drawText(screen, 8, 4, top, colorText)
	drawText(screen, 8, 4+lineHeight, bottom, colorDim)
	drawSnapshot(screen, snap)

	if st.Message != "" {
		drawTextCentered(screen, screen.Bounds().Dy()-lineHeight-2, st.Message, colorText)
	}

	switch {
	case st.Phase == bomberquest.PhaseVictory:
		drawOverlay(screen, "You Win!", "Press R to play again, Q to quit", colorExitOpen)
	case st.Phase == bomberquest.PhaseDefeat:
		drawOverlay(screen, "Game Over: "+snap.Reason, "Press R to restart, Q to quit", colorEnemy)
	case st.Phase == bomberquest.PhaseLevelClear:
		drawOverlay(screen, "Level clear!", "Get ready for the next maze", colorExitOpen)
	case st.Paused:
		drawOverlay(screen, "Paused", "Press P to continue", colorText)
	}
}

// Layout keeps one logical pixel per screen pixel.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.width, w.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *bomberquest.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	win := NewWindow(game, store, cfg)

	ebiten.SetWindowSize(win.width, win.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	// RunGame returns nil when Update asks for termination
	if err := ebiten.RunGame(win); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	// Closing the window skips Update; abandoning twice is a no-op
	win.leave()
	return nil
}
