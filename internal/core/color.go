package core

// Color is the foreground color of a screen cell. Frontends map each
// value to a concrete style; the terminal uses the active theme palette.
type Color uint8

// Screen colors. BomberQuest draws indestructible walls in ColorGray,
// destructible walls in ColorOrange and the player in ColorBrightCyan.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

// Colors returns every defined color in order.
func Colors() []Color {
	out := make([]Color, 0, colorCount)
	for c := ColorDefault; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
