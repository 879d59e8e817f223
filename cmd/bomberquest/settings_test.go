package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
)

func writeMap(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateMap(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"playable", "ok.properties", "0,0=2\n1,0=4\n", nil},
		{"no entrance", "noentry.properties", "0,0=0\n1,0=1\n", core.ErrNoEntrance},
		{"no exit spot", "noexit.properties", "0,0=2\n1,0=0\n", core.ErrNoExitPlacement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMap(writeMap(t, tt.file, tt.content))
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if err := validateMap(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyGameFlagsRejectsBadValues(t *testing.T) {
	defer func() { flagTheme, flagDifficulty = "default", "" }()

	flagTheme = "sepia"
	if _, err := applyGameFlags(); err == nil {
		t.Error("expected error for unknown theme")
	}

	flagTheme = "default"
	flagDifficulty = "brutal"
	if _, err := applyGameFlags(); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
