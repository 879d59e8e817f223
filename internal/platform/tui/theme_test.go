package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bomberquest/internal/core"
)

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		th, err := ThemeByName(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		for _, c := range core.Colors() {
			if _, ok := th.Palette[c]; !ok {
				t.Errorf("%s: no style for color %d", name, c)
			}
		}
	}

	if _, err := ThemeByName(""); err != nil {
		t.Errorf("empty name should select the default theme: %v", err)
	}
	if _, err := ThemeByName("sepia"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestRenderWithPalettePlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.Print(0, 0, "ab", core.ColorRed)
	s.Print(2, 0, "cd", core.ColorBlue)
	s.Print(0, 1, "wxyz", core.ColorDefault)

	th := Theme{Palette: map[core.Color]lipgloss.Style{
		core.ColorRed: lipgloss.NewStyle(),
	}}

	got := renderWithPalette(s, th)
	want := "abcd\nwxyz"
	if got != want {
		t.Errorf("renderWithPalette() = %q, want %q", got, want)
	}
}
