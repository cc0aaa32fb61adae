package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zaptest"

	"github.com/naveenspark/gymhum/internal/state"
	"github.com/naveenspark/gymhum/internal/store"
	"github.com/naveenspark/gymhum/pkg/client"
	"github.com/naveenspark/gymhum/pkg/domain"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()
	log := zaptest.NewLogger(t)
	return state.Load(store.New(store.NewMemMedium(), log), log)
}

// failingMedium rejects every write while fail is set.
type failingMedium struct {
	*store.MemMedium
	fail bool
}

func (m *failingMedium) Set(key string, value []byte) error {
	if m.fail {
		return errors.New("disk full")
	}
	return m.MemMedium.Set(key, value)
}

// newFailingState returns state over a medium whose writes fail until
// fail is cleared.
func newFailingState(t *testing.T) (*state.State, *failingMedium) {
	t.Helper()
	log := zaptest.NewLogger(t)
	medium := &failingMedium{MemMedium: store.NewMemMedium(), fail: true}
	return state.Load(store.New(medium, log), log), medium
}

// keyMsg builds a KeyMsg for a named key ("enter", "esc", "tab", ...) or runes.
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// typeText sends each rune of s as its own key press.
func typeText[M interface {
	Update(tea.Msg) (M, tea.Cmd)
}](m M, s string) M {
	for _, r := range s {
		m, _ = m.Update(keyMsg(string(r)))
	}
	return m
}

// fakeCatalog serves fixed sections and records the contexts it was called with.
type fakeCatalog struct {
	sections map[domain.SectionKind]client.Section
	err      error
	ctxs     []context.Context
}

func (f *fakeCatalog) FetchSection(ctx context.Context, kind domain.SectionKind) (client.Section, error) {
	f.ctxs = append(f.ctxs, ctx)
	if err := ctx.Err(); err != nil {
		return client.Section{}, err
	}
	if f.err != nil {
		return client.Section{}, f.err
	}
	sec := f.sections[kind]
	sec.Kind = kind
	return sec, nil
}

var (
	testWorkouts = []domain.Workout{
		{ID: "1", Name: "Burpee Blast", Category: "Full Body", Duration: "20 min", Description: "High intensity circuit"},
		{ID: "2", Name: "Sunrise Flow", Category: "Yoga", Duration: "30 min", Description: "Gentle morning stretch"},
		{ID: "3", Name: "Bench Basics", Category: "Strength", Duration: "45 min"},
	}
	testRecipes = []domain.Recipe{
		{ID: "r1", Name: "Protein Smoothie", Calories: "320", PrepTime: "5 min", Ingredients: []string{"banana", "whey", "almond milk"}},
		{ID: "r2", Name: "Quinoa Bowl", Calories: "450", Macros: domain.Macros{"protein": "18g"}, Ingredients: []string{"quinoa", "chickpeas", "spinach"}},
		{ID: "r3", Name: "Avocado Toast", Ingredients: []string{"avocado", "sourdough"}},
	}
	testProducts = []domain.Product{
		{ID: "p1", Name: "Yoga Mat", Category: "Accessories", Price: "29.99", Image: "https://example.com/mat.jpg", Features: []string{"Non-slip"}, Colors: []string{"Blue", "Black"}},
		{ID: "p2", Name: "Kettlebell", Price: "45"},
	}
)

func assertContains(t *testing.T, view, want string) {
	t.Helper()
	if !strings.Contains(view, want) {
		t.Errorf("expected %q in view, got:\n%s", want, view)
	}
}

func assertNotContains(t *testing.T, view, unwanted string) {
	t.Helper()
	if strings.Contains(view, unwanted) {
		t.Errorf("did not expect %q in view, got:\n%s", unwanted, view)
	}
}
