package tui

import (
	"strings"
	"unicode/utf8"
)

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// postPreview returns the first 20 runes of content followed by "...".
func postPreview(content string) string {
	runes := []rune(content)
	if len(runes) > 20 {
		runes = runes[:20]
	}
	return string(runes) + "..."
}

// containsFold reports whether substr is within s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// clampCursor keeps a list cursor inside [0, n).
func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// separator renders a dim horizontal rule for the given terminal width.
func separator(width int) string {
	w := width - 2
	if w < 4 {
		w = 4
	}
	return " " + metaStyle.Render(strings.Repeat("─", w))
}
