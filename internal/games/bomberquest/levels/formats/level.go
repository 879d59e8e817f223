// Package formats provides pluggable map file format parsers.
package formats

import (
	"strings"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
)

// Level represents a parsed map ready to be built.
type Level struct {
	ID        string
	Name      string
	Width     int
	Height    int
	TimeLimit float64 // Seconds, 0 when the file sets none
	Records   []core.SpawnRecord
	Skipped   int // Malformed or unknown entries dropped while parsing
	Metadata  map[string]string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".properties", ".yaml", ".yml"}
}

// Supported reports whether ext (with leading dot, any case) has a parser.
func Supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// fitDimensions fills missing dimensions with max coordinate + 1.
func (l *Level) fitDimensions() {
	if l.Width > 0 && l.Height > 0 {
		return
	}
	maxX, maxY := -1, -1
	for _, r := range l.Records {
		if r.At.X > maxX {
			maxX = r.At.X
		}
		if r.At.Y > maxY {
			maxY = r.At.Y
		}
	}
	if l.Width <= 0 {
		l.Width = maxX + 1
	}
	if l.Height <= 0 {
		l.Height = maxY + 1
	}
}
