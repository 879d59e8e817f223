//go:build ebiten

package gui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

func drawText(dst *ebiten.Image, x, y int, msg string, clr color.Color) {
	options := &text.DrawOptions{}
	options.GeoM.Translate(float64(x), float64(y))
	options.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, msg, hudFace, options)
}

func drawTextCentered(dst *ebiten.Image, y int, msg string, clr color.Color) {
	w, _ := text.Measure(msg, hudFace, 0)
	drawText(dst, (dst.Bounds().Dx()-int(w))/2, y, msg, clr)
}

// drawSnapshot draws the map and everything on it, back to front.
func drawSnapshot(dst *ebiten.Image, snap core.Snapshot) {
	b := dst.Bounds()
	size, offX, offY := fitTile(b.Dx(), b.Dy(), snap.Width, snap.Height)
	ts := float32(size)

	rect := func(c core.Coord, inset float32, clr color.Color) {
		x := float32(offX+c.X*size) + inset
		y := float32(offY+c.Y*size) + inset
		vector.DrawFilledRect(dst, x, y, ts-2*inset, ts-2*inset, clr, false)
	}
	circle := func(c core.Coord, r float32, clr color.Color) {
		cx := float32(offX+c.X*size) + ts/2
		cy := float32(offY+c.Y*size) + ts/2
		vector.DrawFilledCircle(dst, cx, cy, r, clr, true)
	}

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			c := core.C(x, y)
			rect(c, 0, tileColor(snap.KindAt(c)))
		}
	}

	if snap.Exit.Revealed {
		clr := colorExitLocked
		if snap.Exit.Unlocked {
			clr = colorExitOpen
		}
		rect(snap.Exit.At, ts/8, clr)
		vector.StrokeRect(dst, float32(offX+snap.Exit.At.X*size)+ts/8, float32(offY+snap.Exit.At.Y*size)+ts/8,
			ts*3/4, ts*3/4, 2, colorText, false)
	}

	for _, p := range snap.PowerUps {
		clr := colorRadius
		if p.Kind == core.PowerUpCapacity {
			clr = colorCapacity
		}
		rect(p.At, ts/4, clr)
	}

	for _, bomb := range snap.Bombs {
		if bomb.State != core.BombTicking {
			continue
		}
		circle(bomb.Origin, ts*0.4, colorBomb)
		// Fuse spark shrinks as the bomb runs down
		spark := float32(math.Max(0.1, math.Min(1, bomb.FuseLeft/3)))
		circle(bomb.Origin, ts*0.15*spark+1, colorFuse)
	}

	for _, c := range snap.Blast {
		rect(c, ts/10, colorBlast)
	}

	for _, e := range snap.Enemies {
		circle(e.At, ts*0.38, colorEnemy)
	}

	if snap.Player.Alive {
		circle(snap.Player.At, ts*0.4, colorPlayer)
	} else {
		circle(snap.Player.At, ts*0.4, colorDead)
	}
}

// drawOverlay dims the screen and shows two centered lines.
func drawOverlay(dst *ebiten.Image, title, hint string, clr color.Color) {
	b := dst.Bounds()
	vector.DrawFilledRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), colorShade, false)
	mid := b.Dy() / 2
	drawTextCentered(dst, mid-lineHeight, title, clr)
	drawTextCentered(dst, mid+lineHeight/2, hint, colorDim)
}
