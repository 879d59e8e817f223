package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest"
	"github.com/vovakirdan/bomberquest/internal/storage"
)

func openScoreStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func pressScoreboard(m ScoreboardModel, keys ...string) ScoreboardModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(ScoreboardModel)
	}
	return m
}

func TestScoreboardViews(t *testing.T) {
	store := openScoreStore(t)
	if _, err := store.SaveScore(bomberquest.IDTimed, 750); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	run := storage.RunResult{
		GameID:   bomberquest.IDTimed,
		LevelID:  "Crossroads",
		Outcome:  storage.OutcomeDefeat,
		Reason:   "Time expired",
		Duration: 120,
	}
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	tests := []struct {
		view  scoreboardView
		title string
		want  string
	}{
		{viewScores, "HIGH SCORES", "750"},
		{viewLevels, "LEVEL RECORDS", "Crossroads"},
		{viewRuns, "RECENT RUNS", "Time expired"},
	}
	for _, tt := range tests {
		if m.view != tt.view {
			t.Fatalf("expected view %d, got %d", tt.view, m.view)
		}
		out := m.View()
		if !strings.Contains(out, tt.title) {
			t.Errorf("view %d: missing title %q", tt.view, tt.title)
		}
		if !strings.Contains(out, tt.want) {
			t.Errorf("view %d: missing %q", tt.view, tt.want)
		}
		m = pressScoreboard(m, "v")
	}
	if m.view != viewScores {
		t.Error("toggle should cycle back to the score view")
	}
	if !strings.Contains(m.View(), "1 runs, 0 clears") {
		t.Error("expected the mode summary line")
	}
}

func TestScoreboardSwitchesModes(t *testing.T) {
	store := openScoreStore(t)
	if _, err := store.SaveScore(bomberquest.IDRelaxed, 420); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.modes) < 2 {
		t.Fatalf("expected both modes registered, got %d", len(m.modes))
	}
	if strings.Contains(m.View(), "420") {
		t.Fatal("relaxed score should not show under the first mode")
	}

	for i := 0; i < len(m.modes); i++ {
		if m.modes[m.modeCursor].ID == bomberquest.IDRelaxed {
			break
		}
		m = pressScoreboard(m, "tab")
	}
	if !strings.Contains(m.View(), "420") {
		t.Error("expected the relaxed score after switching modes")
	}
}

func TestScoreboardEmptyAndBack(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 24)
	if !strings.Contains(m.View(), "Nothing recorded yet") {
		t.Error("expected empty notice without a store")
	}

	m = pressScoreboard(m, "esc")
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back, not quit")
	}
	if m.View() != "" {
		t.Error("view should be blank after leaving")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"BomberQuest", 20, "BomberQuest"},
		{"BomberQuest Relaxed", 10, "BomberQue."},
		{"ÄÖÜäöü", 4, "ÄÖÜ."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
