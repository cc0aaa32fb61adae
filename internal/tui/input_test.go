package tui

import (
	"strings"
	"testing"
)

func TestEditRuneAddCharacters(t *testing.T) {
	tests := []struct {
		name  string
		start string
		key   string
		want  string
	}{
		{"append to empty", "", "a", "a"},
		{"append letter", "squa", "t", "squat"},
		{"append digit", "leg day ", "2", "leg day 2"},
		{"append space", "leg", " ", "leg "},
		{"append named space", "leg", "space", "leg "},
		{"append emoji", "done ", "💪", "done 💪"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := editRune(tc.start, tc.key)
			if got != tc.want {
				t.Errorf("editRune(%q, %q) = %q, want %q", tc.start, tc.key, got, tc.want)
			}
		})
	}
}

func TestEditRuneBackspace(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"backspace on single char", "a", ""},
		{"backspace on longer string", "squat", "squa"},
		{"backspace on empty does nothing", "", ""},
		{"backspace removes whole rune", "café", "caf"},
		{"backspace removes emoji", "go 💪", "go "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := editRune(tc.start, "backspace")
			if got != tc.want {
				t.Errorf("editRune(%q, 'backspace') = %q, want %q", tc.start, got, tc.want)
			}
		})
	}
}

func TestEditRuneIgnoresNonPrintableKeys(t *testing.T) {
	for _, key := range []string{"enter", "esc", "up", "down", "left", "right", "ctrl+c", "tab", "shift+tab"} {
		if got := editRune("abc", key); got != "abc" {
			t.Errorf("editRune(abc, %q) = %q, want unchanged", key, got)
		}
	}
}

func TestEditRuneMaxInputLen(t *testing.T) {
	full := strings.Repeat("x", maxInputLen)
	if got := editRune(full, "y"); got != full {
		t.Errorf("editRune appended past maxInputLen (len %d)", len(got))
	}
	if got := editRune(full, "backspace"); len(got) != maxInputLen-1 {
		t.Errorf("backspace at limit: len %d", len(got))
	}
}

func TestTruncateToHeight(t *testing.T) {
	s := "a\nb\nc\nd\n"
	tests := []struct {
		max  int
		want string
	}{
		{2, "a\nb\n"},
		{4, s},
		{10, s},
		{0, s},
		{-1, s},
	}
	for _, tc := range tests {
		if got := truncateToHeight(s, tc.max); got != tc.want {
			t.Errorf("truncateToHeight(%d) = %q, want %q", tc.max, got, tc.want)
		}
	}
}

func TestTruncStr(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 8, "this is…"},
	}
	for _, tc := range tests {
		if got := truncStr(tc.in, tc.max); got != tc.want {
			t.Errorf("truncStr(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestPostPreview(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Leg day done", "Leg day done..."},
		{"Crushed a new deadlift PR today", "Crushed a new deadli..."},
		{"🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃", "🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃..."},
	}
	for _, tc := range tests {
		if got := postPreview(tc.in); got != tc.want {
			t.Errorf("postPreview(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInputLine(t *testing.T) {
	if got := inputLine("", "Search for friends...", false); !strings.Contains(got, "Search for friends...") {
		t.Errorf("placeholder missing: %q", got)
	}
	if got := inputLine("gym", "Search for friends...", true); !strings.Contains(got, "gym") || !strings.Contains(got, "█") {
		t.Errorf("focused input = %q", got)
	}
}

func TestClampCursor(t *testing.T) {
	tests := []struct{ cursor, n, want int }{
		{0, 0, 0},
		{5, 3, 2},
		{-1, 3, 0},
		{1, 3, 1},
	}
	for _, tc := range tests {
		if got := clampCursor(tc.cursor, tc.n); got != tc.want {
			t.Errorf("clampCursor(%d, %d) = %d, want %d", tc.cursor, tc.n, got, tc.want)
		}
	}
}
