package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/gymhum/pkg/domain"
)

func newLoadedNutrition(t *testing.T) nutritionModel {
	t.Helper()
	m := newNutritionModel(newTestState(t))
	m.width = 80
	m.height = 30
	return m.startLoading().loaded(testRecipes, nil)
}

func TestNutritionRendersCards(t *testing.T) {
	m := newLoadedNutrition(t)
	view := m.View()
	assertContains(t, view, "Protein Smoothie")
	assertContains(t, view, "320 cal")
	assertContains(t, view, "protein 18g")
	assertContains(t, view, "Ingredients: banana, whey, almond milk")
}

func TestNutritionLiveSearchByNameAndIngredient(t *testing.T) {
	m := newLoadedNutrition(t)
	m, _ = m.Update(keyMsg("/"))
	if !m.editing {
		t.Fatal("expected search editing after /")
	}

	m = typeText(m, "QUIN")
	view := m.View()
	assertContains(t, view, "Quinoa Bowl")
	assertNotContains(t, view, "Protein Smoothie")

	for range 4 {
		m, _ = m.Update(keyMsg("backspace"))
	}
	m = typeText(m, "avo")
	got := m.filtered()
	if len(got) != 1 || got[0].Name != "Avocado Toast" {
		t.Errorf("filtered(avo) = %v", got)
	}

	// ingredient match
	m, _ = m.Update(keyMsg("esc"))
	m, _ = m.Update(keyMsg("/"))
	m = typeText(m, "spinach")
	got = m.filtered()
	if len(got) != 1 || got[0].Name != "Quinoa Bowl" {
		t.Errorf("filtered(spinach) = %v", got)
	}
}

func TestNutritionSearchDoesNotRefetch(t *testing.T) {
	m := newLoadedNutrition(t)
	m, _ = m.Update(keyMsg("/"))
	for _, r := range "bowl" {
		var cmd tea.Cmd
		m, cmd = m.Update(keyMsg(string(r)))
		if cmd != nil {
			t.Fatalf("keystroke %q produced a command", r)
		}
	}
	if len(m.filtered()) != 1 {
		t.Errorf("filtered = %v", m.filtered())
	}
}

func TestNutritionEscClearsSearch(t *testing.T) {
	m := newLoadedNutrition(t)
	m, _ = m.Update(keyMsg("/"))
	m = typeText(m, "zzz")
	assertContains(t, m.View(), `No recipes match "zzz"`)

	m, _ = m.Update(keyMsg("esc"))
	if m.editing || m.search != "" {
		t.Errorf("after esc: editing=%v search=%q", m.editing, m.search)
	}
	if len(m.filtered()) != len(testRecipes) {
		t.Error("expected full list after clearing search")
	}
}

func TestNutritionNumberKeysTypeWhileEditing(t *testing.T) {
	m := newLoadedNutrition(t)
	m, _ = m.Update(keyMsg("/"))
	m = typeText(m, "12")
	if m.search != "12" {
		t.Errorf("search = %q, want %q", m.search, "12")
	}
}

func TestNutritionSaveRecipe(t *testing.T) {
	m := newLoadedNutrition(t)
	m, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected profileChanged command")
	}
	if msg := cmd().(profileChangedMsg); msg.challenge != domain.ChallengeNutritionMaster {
		t.Errorf("challenge = %q", msg.challenge)
	}
	if !m.state.Profile().HasSavedRecipe("r1") {
		t.Error("recipe not saved")
	}
	assertContains(t, m.View(), "Saved ✓")

	_, cmd = m.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("saving twice should be a no-op")
	}
}

func TestNutritionCopyIngredients(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { copyToClipboard = orig })

	m := newLoadedNutrition(t)
	m, _ = m.Update(keyMsg("j"))
	_, cmd := m.Update(keyMsg("c"))
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	msg := cmd()
	if copied != "quinoa\nchickpeas\nspinach" {
		t.Errorf("copied %q", copied)
	}

	m, expire := m.Update(msg)
	assertContains(t, m.View(), "Ingredients copied!")
	if expire == nil {
		t.Fatal("expected expiry timer")
	}
	m, _ = m.Update(expireMsg{target: targetRecipeStatus, seq: m.status.seq})
	assertNotContains(t, m.View(), "Ingredients copied!")
}

func TestNutritionCopyFailureShown(t *testing.T) {
	m := newLoadedNutrition(t)
	m, _ = m.Update(copyResultMsg{err: errors.New("no clipboard")})
	assertContains(t, m.View(), "copy failed: no clipboard")
}

func TestNutritionPlaceholders(t *testing.T) {
	m := newNutritionModel(newTestState(t)).startLoading()
	assertContains(t, m.View(), "Loading your nutrition data...")
	m = m.loaded(nil, errors.New("down"))
	assertContains(t, m.View(), "Error loading data. Please try again later.")
	m = m.startLoading().loaded(nil, nil)
	assertContains(t, m.View(), "No nutrition available currently")
}
