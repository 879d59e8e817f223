// Package levels provides map loading for BomberQuest.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/levels/formats"
)

//go:embed maps/*
var builtinMaps embed.FS

// Level represents a complete map definition.
type Level struct {
	ID        string
	Name      string
	Width     int
	Height    int
	TimeLimit float64
	Records   []core.SpawnRecord
	Skipped   int
	Metadata  map[string]string
	FilePath  string
}

// Build resolves the records into a playable level.
// rng drives the fallback exit placement.
func (l *Level) Build(rng *rand.Rand) (*core.Level, error) {
	lvl, err := core.Load(l.Records, l.Width, l.Height, rng)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", l.FilePath, err)
	}
	return lvl, nil
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys fs.FS
	Root string
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), Root: root}
}

// Builtin returns a loader over the maps shipped with the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinMaps, "maps")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded maps: %v", err))
	}
	return &Loader{fsys: sub, Root: "builtin"}
}

// LoadAll recursively scans and loads all map files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !formats.Supported(path.Ext(p)) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single map file relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	if parsed.Width < 1 || parsed.Height < 1 {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, core.ErrInvalidDimensions)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}

	return Level{
		ID:        id,
		Name:      parsed.Name,
		Width:     parsed.Width,
		Height:    parsed.Height,
		TimeLimit: parsed.TimeLimit,
		Records:   parsed.Records,
		Skipped:   parsed.Skipped,
		Metadata:  parsed.Metadata,
		FilePath:  filepath.Join(l.Root, filepath.FromSlash(p)),
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadPath loads a single map file from anywhere on disk.
func LoadPath(p string) (Level, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return Level{}, fmt.Errorf("resolving %s: %w", p, err)
	}
	lvl, err := NewLoader(filepath.Dir(abs)).LoadFile(filepath.Base(abs))
	if err != nil {
		return Level{}, err
	}
	lvl.FilePath = abs
	return lvl, nil
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".properties":
		return formats.ParseProperties(data)
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
