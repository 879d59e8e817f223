package core_test

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/levels"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/levels/formats"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// alpha, beta, gamma; broken.yaml and readme.txt are skipped
	if len(lvls) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(lvls))
	}

	// Should be sorted by ID
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
}

func TestLoaderLoadProperties(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("alpha")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Name != "Alpha" {
		t.Errorf("expected Name 'Alpha', got %q", lvl.Name)
	}
	if lvl.Width != 5 || lvl.Height != 5 {
		t.Errorf("expected 5x5, got %dx%d", lvl.Width, lvl.Height)
	}
	if lvl.TimeLimit != 60 {
		t.Errorf("expected time limit 60, got %f", lvl.TimeLimit)
	}
	if lvl.Skipped != 0 {
		t.Errorf("expected no skipped lines, got %d", lvl.Skipped)
	}

	built, err := lvl.Build(rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if built.Entrance != core.C(1, 1) {
		t.Errorf("entrance = %v", built.Entrance)
	}
	if built.Exit.At != core.C(3, 3) || built.Exit.Revealed {
		t.Errorf("expected covered exit at (3,3), got %+v", built.Exit)
	}
}

func TestLoaderLoadYAML(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("beta")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Width != 7 || lvl.Height != 5 {
		t.Errorf("expected 7x5, got %dx%d", lvl.Width, lvl.Height)
	}
	if lvl.Metadata["author"] != "bomberquest" {
		t.Errorf("expected author metadata, got %v", lvl.Metadata)
	}

	// No exit record: fallback under one of the two destructible walls
	built, err := lvl.Build(rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !built.ExitFallback {
		t.Error("expected a fallback exit")
	}
	if built.Grid.KindAt(built.Exit.At) != core.WallDestructible {
		t.Errorf("fallback exit %v is not under a destructible wall", built.Exit.At)
	}
}

func TestLoaderLenientProperties(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("gamma")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Skipped != 3 {
		t.Errorf("expected 3 skipped lines, got %d", lvl.Skipped)
	}
	// Dimensions derived from the highest coordinates
	if lvl.Width != 7 || lvl.Height != 3 {
		t.Errorf("expected 7x3, got %dx%d", lvl.Width, lvl.Height)
	}
	if _, err := lvl.Build(nil); err != nil {
		t.Errorf("Build failed: %v", err)
	}
}

func TestLoaderNotFound(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	_, err := loader.LoadByID("nonexistent")
	if err == nil {
		t.Error("expected error for nonexistent level")
	}
}

func TestLoaderBuiltinMaps(t *testing.T) {
	loader := levels.Builtin()

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) < 4 {
		t.Fatalf("expected at least 4 builtin maps, got %d", len(lvls))
	}

	for _, lvl := range lvls {
		t.Run(lvl.ID, func(t *testing.T) {
			if lvl.Skipped != 0 {
				t.Errorf("builtin map has %d malformed lines", lvl.Skipped)
			}
			for seed := int64(0); seed < 5; seed++ {
				built, err := lvl.Build(rand.New(rand.NewSource(seed)))
				if err != nil {
					t.Fatalf("Build failed: %v", err)
				}
				if built.Grid.IsBlocking(built.Entrance) {
					t.Error("entrance must be walkable")
				}
				if len(built.Enemies) == 0 {
					t.Error("builtin maps should have enemies")
				}
			}
		})
	}
}

func TestBuildWrapsLoadErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noexit.properties")
	data := "0,0=2\n1,0=3\n2,0=0\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	lvl, err := levels.LoadPath(path)
	if err != nil {
		t.Fatalf("LoadPath failed: %v", err)
	}
	if lvl.ID != "noexit" {
		t.Errorf("ID should default to the file name, got %q", lvl.ID)
	}

	_, err = lvl.Build(nil)
	if !errors.Is(err, core.ErrNoExitPlacement) {
		t.Errorf("expected wrapped ErrNoExitPlacement, got %v", err)
	}
}

func TestParsePropertiesMetadata(t *testing.T) {
	data := []byte(`
# comment
! also a comment
id = demo
name = Demo, the map
width=4
height=2
music=theme.ogg
0,0 = 2
 3 , 1 = 4
`)

	lvl, err := formats.ParseProperties(data)
	if err != nil {
		t.Fatalf("ParseProperties failed: %v", err)
	}
	if lvl.ID != "demo" || lvl.Name != "Demo, the map" {
		t.Errorf("unexpected id/name: %q %q", lvl.ID, lvl.Name)
	}
	if lvl.Width != 4 || lvl.Height != 2 {
		t.Errorf("expected 4x2, got %dx%d", lvl.Width, lvl.Height)
	}
	if lvl.Metadata["music"] != "theme.ogg" {
		t.Errorf("unknown keys should land in metadata, got %v", lvl.Metadata)
	}
	if len(lvl.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(lvl.Records))
	}
	if lvl.Records[1].Kind != core.SpawnExit || lvl.Records[1].At != core.C(3, 1) {
		t.Errorf("unexpected record %+v", lvl.Records[1])
	}
}

func TestParsePropertiesBadDimension(t *testing.T) {
	_, err := formats.ParseProperties([]byte("width=wide\n"))
	if err == nil {
		t.Error("expected error for non-numeric width")
	}
}

func TestParseYAMLSkipsUnknownCodes(t *testing.T) {
	data := []byte(`
id: y
size: {w: 3, h: 1}
records:
  - {x: 0, y: 0, type: 2}
  - {x: 1, y: 0, type: 42}
  - {x: 2, y: 0, type: 4}
`)

	lvl, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.Skipped != 1 || len(lvl.Records) != 2 {
		t.Errorf("expected 2 records and 1 skipped, got %d / %d", len(lvl.Records), lvl.Skipped)
	}
}
