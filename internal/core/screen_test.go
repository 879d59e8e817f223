package core

import (
	"strings"
	"testing"
)

func lines(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "    \n    \n    " {
		t.Errorf("new screen should be blank, got %q", got)
	}

	empty := NewScreen(-2, 5)
	if empty.Width() != 0 || empty.String() != "\n\n\n\n" {
		t.Errorf("negative width should clamp to 0, got %q", empty.String())
	}
}

func TestScreenSetAt(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(1, 1, '@', ColorRed)

	if got := s.At(1, 1); got.Rune != '@' || got.Color != ColorRed {
		t.Errorf("At(1,1) = %+v", got)
	}

	// Writes outside the buffer are dropped, reads come back blank.
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 2}} {
		s.Set(p[0], p[1], 'X', ColorBlue)
		if got := s.At(p[0], p[1]); got != blank {
			t.Errorf("At(%d,%d) = %+v, want blank", p[0], p[1], got)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out of bounds write leaked into the buffer")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(2, 2)
	s.Print(0, 0, "ab", ColorGreen)
	s.Clear()

	if s.String() != "  \n  " {
		t.Errorf("Clear() left %q", s.String())
	}
	if s.At(0, 0).Color != ColorDefault {
		t.Error("Clear() should reset colors")
	}
}

func TestScreenPrint(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"inside", 1, "hi", " hi  "},
		{"clipped right", 3, "hello", "   he"},
		{"clipped left", -2, "hello", "llo  "},
		{"multibyte", 0, "←↑↓→", "←↑↓→ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(5, 1)
			s.Print(tt.x, 0, tt.text, ColorCyan)
			if got := s.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreenPrintCentered(t *testing.T) {
	s := NewScreen(9, 1)
	s.PrintCentered(0, "EXIT", ColorYellow)
	if got := s.String(); got != "  EXIT   " {
		t.Errorf("got %q", got)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(4, 3)
	s.Print(0, 1, "wxyz", ColorRed)
	s.FillRect(NewRect(1, 0, 2, 2), '#')

	want := []string{" ## ", "w##z", "    "}
	for y, line := range lines(s) {
		if line != want[y] {
			t.Errorf("row %d = %q, want %q", y, line, want[y])
		}
	}
	if s.At(1, 1).Color != ColorDefault {
		t.Error("FillRect should paint uncolored cells")
	}
}

func TestScreenFrame(t *testing.T) {
	s := NewScreen(5, 4)
	s.Frame(NewRect(0, 0, 5, 4), ColorWhite)

	want := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, line := range lines(s) {
		if line != want[y] {
			t.Errorf("row %d = %q, want %q", y, line, want[y])
		}
	}
	if s.At(0, 0).Color != ColorWhite {
		t.Error("frame should use the given color")
	}

	// Empty rectangles draw nothing.
	s.Clear()
	s.Frame(NewRect(1, 1, 0, 3), ColorWhite)
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("empty rect drew %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.Print(0, 0, "abcd", ColorRed)
	s.Print(0, 1, "efgh", ColorRed)

	s.Resize(2, 3)
	if got := s.String(); got != "ab\nef\n  " {
		t.Errorf("shrink+grow = %q", got)
	}
	if s.At(1, 1).Color != ColorRed {
		t.Error("resize should keep colors")
	}

	s.Resize(4, 3)
	if got := lines(s)[0]; got != "ab  " {
		t.Errorf("grow = %q", got)
	}
}

func TestScreenRuns(t *testing.T) {
	s := NewScreen(6, 2)
	s.Print(0, 0, "aa", ColorRed)
	s.Print(2, 0, "bbb", ColorBlue)

	type run struct {
		text string
		c    Color
	}
	var got []run
	s.Runs(0, func(text string, c Color) {
		got = append(got, run{text, c})
	})

	want := []run{{"aa", ColorRed}, {"bbb", ColorBlue}, {" ", ColorDefault}}
	if len(got) != len(want) {
		t.Fatalf("got %d runs %+v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	calls := 0
	s.Runs(1, func(string, Color) { calls++ })
	if calls != 1 {
		t.Errorf("uniform row should be one run, got %d", calls)
	}
	s.Runs(5, func(string, Color) { t.Error("row outside the buffer should not be visited") })
}
