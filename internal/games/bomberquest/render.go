package bomberquest

import (
	"fmt"
	"math"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/bomberquest/internal/core"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
)

// Layout constants, in terminal cells.
const (
	tileW      = 2 // Each map tile is 2 chars wide
	hudHeight  = 3 // Two status lines and a separator
	footHeight = 2 // Message ticker and controls hint
)

// Tile glyphs. Every glyph is exactly tileW runes.
var (
	glyphFloor          = [tileW]rune{' ', ' '}
	glyphIndestructible = [tileW]rune{'█', '█'}
	glyphDestructible   = [tileW]rune{'▓', '▓'}
	glyphExit           = [tileW]rune{'[', ']'}
	glyphPlayer         = [tileW]rune{'◆', '◆'}
	glyphEnemy          = [tileW]rune{'▼', '▼'}
	glyphBlast          = [tileW]rune{'░', '░'}
	glyphCapacity       = [tileW]rune{'B', '+'}
	glyphRadius         = [tileW]rune{'R', '+'}
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.phase == PhaseError {
		msg := "No playable level"
		if g.loadErr != nil {
			msg = g.loadErr.Error()
		}
		g.renderOverlay(dst, "Map error", msg, platformcore.ColorBrightRed)
		g.renderFooter(dst)
		return
	}

	snap, ok := g.Snapshot()
	if !ok {
		return
	}

	offX, offY, fits := g.mapOrigin(snap, dst)
	if !fits {
		g.renderOverlay(dst, "Window too small", "Resize to continue", platformcore.ColorYellow)
		return
	}

	g.renderMap(dst, snap, offX, offY)
	g.renderFooter(dst)

	// Draw overlays
	switch {
	case g.phase == PhaseVictory:
		g.renderOverlay(dst, "You Win! Score: "+fmt.Sprint(g.score), "Press R to play again", platformcore.ColorBrightGreen)
	case g.phase == PhaseDefeat:
		g.renderOverlay(dst, "Game Over: "+snap.Reason, "Press R to restart", platformcore.ColorBrightRed)
	case g.phase == PhaseLevelClear:
		g.renderOverlay(dst, "Level clear!", "Get ready for the next maze", platformcore.ColorBrightGreen)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue", platformcore.ColorBrightWhite)
	}
}

// mapOrigin centers the map below the HUD.
func (g *Game) mapOrigin(snap core.Snapshot, dst *platformcore.Screen) (x, y int, fits bool) {
	mapW := snap.Width * tileW
	availH := dst.Height() - hudHeight - footHeight
	if mapW > dst.Width() || snap.Height > availH {
		return 0, 0, false
	}
	return (dst.Width() - mapW) / 2, hudHeight + (availH-snap.Height)/2, true
}

// renderHUD draws the status lines at the top of the screen.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	st := g.Status()

	title := " " + g.Title()
	if st.LevelCount > 0 {
		title += fmt.Sprintf(" │ Level %d/%d %s", st.Level, st.LevelCount, st.LevelName)
	}
	title += fmt.Sprintf(" │ Score: %d", st.Score)
	dst.Print(0, 0, title, platformcore.ColorCyan)

	if snap, ok := g.Snapshot(); ok {
		x := 1
		x = drawStat(dst, x, 1, fmt.Sprintf("Radius: %d", snap.Player.BombRadius), platformcore.ColorBrightYellow)
		x = drawStat(dst, x, 1, fmt.Sprintf("Bombs: %d/%d", snap.Player.BombCapacity-snap.Player.BombsActive, snap.Player.BombCapacity), platformcore.ColorOrange)
		if snap.TimeLimit > 0 {
			color := platformcore.ColorWhite
			if snap.Remaining < 10 {
				color = platformcore.ColorBrightRed
			}
			x = drawStat(dst, x, 1, "Time: "+FormatClock(snap.Remaining), color)
		}
		x = drawStat(dst, x, 1, fmt.Sprintf("Enemies: %d", snap.EnemiesLeft), platformcore.ColorRed)
		if snap.Exit.Unlocked {
			drawStat(dst, x, 1, "EXIT UNLOCKED!", platformcore.ColorBrightGreen)
		}
	}

	// Separator
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 2, '─', platformcore.ColorGray)
	}
}

// drawStat writes one HUD field and returns the column after it.
func drawStat(dst *platformcore.Screen, x, y int, text string, c platformcore.Color) int {
	dst.Print(x, y, text, c)
	x += utf8.RuneCountInString(text)
	dst.Print(x, y, " │ ", platformcore.ColorGray)
	return x + 3
}

// FormatClock renders seconds as m:ss, rounding up so 0:00 means expired.
func FormatClock(seconds float64) string {
	s := int(math.Ceil(seconds))
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// renderMap draws tiles then entities, back to front.
func (g *Game) renderMap(dst *platformcore.Screen, snap core.Snapshot, offX, offY int) {
	put := func(c core.Coord, glyph [tileW]rune, color platformcore.Color) {
		for i, r := range glyph {
			dst.Set(offX+c.X*tileW+i, offY+c.Y, r, color)
		}
	}

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			c := core.C(x, y)
			switch snap.KindAt(c) {
			case core.WallIndestructible:
				put(c, glyphIndestructible, platformcore.ColorGray)
			case core.WallDestructible:
				put(c, glyphDestructible, platformcore.ColorOrange)
			default:
				put(c, glyphFloor, platformcore.ColorDefault)
			}
		}
	}

	// The exit is drawn only once its cover wall is gone
	if snap.Exit.Revealed {
		color := platformcore.ColorRed
		if snap.Exit.Unlocked {
			color = platformcore.ColorBrightGreen
		}
		put(snap.Exit.At, glyphExit, color)
	}

	for _, p := range snap.PowerUps {
		if p.Kind == core.PowerUpCapacity {
			put(p.At, glyphCapacity, platformcore.ColorBrightCyan)
		} else {
			put(p.At, glyphRadius, platformcore.ColorBrightMagenta)
		}
	}

	for _, b := range snap.Bombs {
		if b.State != core.BombTicking {
			continue
		}
		color := platformcore.ColorYellow
		if b.FuseLeft <= 1 {
			color = platformcore.ColorBrightRed
		}
		fuse := rune('0' + min(9, int(math.Ceil(b.FuseLeft))))
		put(b.Origin, [tileW]rune{'●', fuse}, color)
	}

	for _, c := range snap.Blast {
		put(c, glyphBlast, platformcore.ColorBrightYellow)
	}

	for _, e := range snap.Enemies {
		put(e.At, glyphEnemy, platformcore.ColorBrightRed)
	}

	if snap.Player.Alive {
		put(snap.Player.At, glyphPlayer, platformcore.ColorBrightCyan)
	} else {
		put(snap.Player.At, [tileW]rune{'x', 'x'}, platformcore.ColorRed)
	}
}

// renderFooter draws the message ticker and the controls hint.
func (g *Game) renderFooter(dst *platformcore.Screen) {
	h := dst.Height()
	if msg := g.messages.current(); msg != "" {
		dst.PrintCentered(h-2, msg, platformcore.ColorBrightWhite)
	}
	controls := " ←↑↓→/WASD: Move | Space: Bomb | P: Pause | R: Restart | Q: Quit"
	dst.Print(0, h-1, controls, platformcore.ColorGray)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string, c platformcore.Color) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	boxW := min(maxLen+4, w)
	boxH := 5
	box := platformcore.CenteredRect(w, h, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.Frame(box, c)
	inner := box.Inner()
	dst.PrintCentered(inner.Y, line1, c)
	dst.PrintCentered(inner.Y+2, line2, platformcore.ColorWhite)
}
