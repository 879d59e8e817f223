package tui

import (
	"strings"

	"github.com/vovakirdan/bomberquest/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string using the
// current theme, one lipgloss render per same-colored run.
func RenderScreen(s *core.Screen) string {
	return renderWithPalette(s, theme)
}

func renderWithPalette(s *core.Screen, t Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		s.Runs(y, func(text string, c core.Color) {
			if style, ok := t.Palette[c]; ok {
				text = style.Render(text)
			}
			sb.WriteString(text)
		})
	}
	return sb.String()
}
