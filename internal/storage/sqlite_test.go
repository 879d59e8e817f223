package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "saves", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file was not created: %v", err)
	}
}

func TestOpenKeepsDataAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("bomberquest", 640); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	// Reopening runs the migration again on an existing schema.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("bomberquest")
	if err != nil || high != 640 {
		t.Errorf("HighScore() = %d, %v; want 640", high, err)
	}
}

func TestTopScores(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{100, 50, 500, 200, 400} {
		if _, err := store.SaveScore("bomberquest", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("bomberquest_relaxed", 900); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	tests := []struct {
		name  string
		game  string
		limit int
		want  []int
	}{
		{"all", "bomberquest", 10, []int{500, 400, 200, 100, 50}},
		{"limited", "bomberquest", 3, []int{500, 400, 200}},
		{"default limit", "bomberquest", 0, []int{500, 400, 200, 100, 50}},
		{"other mode", "bomberquest_relaxed", 10, []int{900}},
		{"unplayed", "nothing", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores(tt.game, tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != len(tt.want) {
				t.Fatalf("got %d scores, want %d", len(scores), len(tt.want))
			}
			for i, s := range scores {
				if s.Score != tt.want[i] || s.GameID != tt.game {
					t.Errorf("score %d = %+v, want %d", i, s, tt.want[i])
				}
				if s.CreatedAt.IsZero() {
					t.Errorf("score %d has no timestamp", i)
				}
			}
		})
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("bomberquest")
	if err != nil || high != 0 {
		t.Fatalf("empty HighScore() = %d, %v; want 0", high, err)
	}

	for _, s := range []int{100, 300, 200} {
		store.SaveScore("bomberquest", s) //nolint:errcheck
	}
	if high, _ := store.HighScore("bomberquest"); high != 300 {
		t.Errorf("HighScore() = %d, want 300", high)
	}
}

func TestClearScoresKeepsOtherModes(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("bomberquest", 100)         //nolint:errcheck
	store.SaveScore("bomberquest_relaxed", 300) //nolint:errcheck

	if err := store.ClearScores("bomberquest"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("bomberquest", 10); len(scores) != 0 {
		t.Errorf("expected no timed scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("bomberquest_relaxed", 10); len(scores) != 1 {
		t.Error("relaxed scores should survive clearing the timed mode")
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", want, want},
		{"sqlite layout", "2026-03-14 15:09:26", want},
		{"rfc3339", "2026-03-14T15:09:26Z", want},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tt := range tests {
		if got := parseTime(tt.in); !got.Equal(tt.want) {
			t.Errorf("%s: parseTime() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
