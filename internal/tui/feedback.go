package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/gymhum/internal/browser"
)

const (
	labelDuration  = time.Second
	noticeDuration = 3 * time.Second
)

// Swappable in tests.
var (
	copyToClipboard = clipboard.WriteAll
	openURL         = browser.Open
)

// feedbackTarget names the model that owns a transient label.
type feedbackTarget int

const (
	targetWorkoutStatus feedbackTarget = iota
	targetRecipeStatus
	targetAdded
	targetCleared
	targetProductStatus
	targetNotice
)

// expireMsg clears the transient owned by target if seq is still current.
type expireMsg struct {
	target feedbackTarget
	seq    int
}

// transient is a short-lived label. Each set bumps seq so a timer started for
// an older label never clears a newer one.
type transient struct {
	text string
	seq  int
}

func (t *transient) set(text string, target feedbackTarget, d time.Duration) tea.Cmd {
	t.seq++
	t.text = text
	seq := t.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return expireMsg{target: target, seq: seq}
	})
}

// saveFailed shows a failed save of the record or cart.
func (t *transient) saveFailed(err error, target feedbackTarget) tea.Cmd {
	return t.set(fmt.Sprintf("save failed: %v", err), target, noticeDuration)
}

func (t *transient) expire(seq int) {
	if seq == t.seq {
		t.text = ""
	}
}

// copyResultMsg reports the outcome of a clipboard write.
type copyResultMsg struct{ err error }

// openResultMsg reports the outcome of opening a URL in the browser.
type openResultMsg struct{ err error }

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{err: copyToClipboard(text)}
	}
}

func openCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return openResultMsg{err: openURL(url)}
	}
}
