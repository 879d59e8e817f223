package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bomberquest/internal/core"
)

// Theme contains the visual styles of the terminal frontend.
type Theme struct {
	// Palette maps screen cell colors to terminal styles.
	Palette map[core.Color]lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	Controls        lipgloss.Style
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// DefaultTheme returns the standard 256-color theme.
func DefaultTheme() Theme {
	return Theme{
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           fg("1"),
			core.ColorGreen:         fg("2"),
			core.ColorYellow:        fg("3"),
			core.ColorBlue:          fg("4"),
			core.ColorMagenta:       fg("5"),
			core.ColorCyan:          fg("6"),
			core.ColorWhite:         fg("7"),
			core.ColorBrightRed:     fg("9"),
			core.ColorBrightGreen:   fg("10"),
			core.ColorBrightYellow:  fg("11"),
			core.ColorBrightBlue:    fg("12"),
			core.ColorBrightMagenta: fg("13"),
			core.ColorBrightCyan:    fg("14"),
			core.ColorBrightWhite:   fg("15"),
			core.ColorOrange:        fg("208"),
			core.ColorGray:          fg("245"),
		},

		MenuTitle:       fg("208").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuDescription: fg("245"),
		Controls:        fg("241"),
	}
}

// NeonTheme brightens walls and entities.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Palette[core.ColorOrange] = fg("202")        // Destructible walls
	theme.Palette[core.ColorGray] = fg("63")           // Indestructible walls
	theme.Palette[core.ColorBrightCyan] = fg("87")     // Player
	theme.Palette[core.ColorBrightYellow] = fg("227")  // Blast
	theme.Palette[core.ColorBrightMagenta] = fg("171") // Radius power-up
	theme.MenuTitle = fg("199").Bold(true)
	return theme
}

// MonochromeTheme renders everything in grays, for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	for c := range theme.Palette {
		theme.Palette[c] = lipgloss.NewStyle()
	}
	theme.Palette[core.ColorGray] = fg("240")
	theme.Palette[core.ColorBrightCyan] = lipgloss.NewStyle().Bold(true)
	theme.Palette[core.ColorBrightRed] = lipgloss.NewStyle().Bold(true)
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Reverse(true)
	return theme
}

// ThemeNames lists the names accepted by ThemeByName.
func ThemeNames() []string {
	return []string{"default", "neon", "mono"}
}

// ThemeByName returns a named theme.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return DefaultTheme(), nil
	case "neon":
		return NeonTheme(), nil
	case "mono":
		return MonochromeTheme(), nil
	default:
		return Theme{}, fmt.Errorf("tui: unknown theme %q", name)
	}
}

// Global theme variable (can be changed at runtime)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return theme
}
