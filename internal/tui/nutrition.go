package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/gymhum/internal/state"
	"github.com/naveenspark/gymhum/pkg/domain"
)

type nutritionModel struct {
	state   *state.State
	recipes []domain.Recipe
	cursor  int
	search  string
	editing bool // true when typing in search
	loading bool
	err     error
	status  transient
	width   int
	height  int
}

func newNutritionModel(st *state.State) nutritionModel {
	return nutritionModel{state: st}
}

func (m nutritionModel) startLoading() nutritionModel {
	m.loading = true
	m.err = nil
	return m
}

func (m nutritionModel) loaded(recipes []domain.Recipe, err error) nutritionModel {
	m.loading = false
	m.err = err
	if err == nil {
		m.recipes = recipes
	}
	m.cursor = clampCursor(m.cursor, len(m.filtered()))
	return m
}

// filtered returns recipes whose name or any ingredient contains the search
// term, ignoring case. The fetched list is never refetched for a search.
func (m nutritionModel) filtered() []domain.Recipe {
	term := strings.TrimSpace(m.search)
	if term == "" {
		return m.recipes
	}
	var out []domain.Recipe
	for _, r := range m.recipes {
		if matchesRecipe(r, term) {
			out = append(out, r)
		}
	}
	return out
}

func matchesRecipe(r domain.Recipe, term string) bool {
	if containsFold(r.Name, term) {
		return true
	}
	for _, ing := range r.Ingredients {
		if containsFold(ing, term) {
			return true
		}
	}
	return false
}

func (m nutritionModel) Update(msg tea.Msg) (nutritionModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case expireMsg:
		m.status.expire(msg.seq)

	case copyResultMsg:
		if msg.err != nil {
			cmd := m.status.set(fmt.Sprintf("copy failed: %v", msg.err), targetRecipeStatus, noticeDuration)
			return m, cmd
		}
		cmd := m.status.set("Ingredients copied!", targetRecipeStatus, labelDuration)
		return m, cmd

	case tea.KeyMsg:
		if m.editing {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m nutritionModel) updateSearch(msg tea.KeyMsg) (nutritionModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
	case "esc":
		m.editing = false
		m.search = ""
	default:
		m.search = editRune(m.search, msg.String())
	}
	m.cursor = clampCursor(m.cursor, len(m.filtered()))
	return m, nil
}

func (m nutritionModel) updateList(msg tea.KeyMsg) (nutritionModel, tea.Cmd) {
	list := m.filtered()
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(list)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "/":
		m.editing = true
	case "esc":
		m.search = ""
		m.cursor = 0
	case "enter", "s":
		if len(list) == 0 {
			return m, nil
		}
		added, err := m.state.SaveRecipe(list[clampCursor(m.cursor, len(list))])
		if err != nil {
			cmd := m.status.saveFailed(err, targetRecipeStatus)
			return m, cmd
		}
		if !added {
			return m, nil
		}
		return m, profileChanged(domain.ChallengeNutritionMaster)
	case "c":
		if len(list) == 0 {
			return m, nil
		}
		r := list[clampCursor(m.cursor, len(list))]
		return m, copyCmd(strings.Join(r.Ingredients, "\n"))
	}
	return m, nil
}

func (m nutritionModel) View() string {
	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("NUTRITION") + "  " + taglineStyle.Render("Fuel the work.") + "\n")

	if m.editing {
		b.WriteString(" " + searchStyle.Render("/ "+m.search+"█"))
	} else if m.search != "" {
		b.WriteString(" " + searchStyle.Render("/ "+m.search))
	} else {
		b.WriteString(" " + dimStyle.Render("/ search recipes or ingredients..."))
	}
	if m.status.text != "" {
		b.WriteString("   " + noticeStyle.Render(m.status.text))
	}
	b.WriteString("\n")
	b.WriteString(separator(m.width) + "\n")

	if body, ok := placeholder(domain.SectionNutrition, m.loading, m.err, len(m.recipes)); ok {
		b.WriteString(body)
		return b.String()
	}

	list := m.filtered()
	if len(list) == 0 {
		b.WriteString(" " + dimStyle.Render(fmt.Sprintf("No recipes match %q", m.search)) + "\n")
		return b.String()
	}

	record := m.state.Profile()
	cursor := clampCursor(m.cursor, len(list))
	for i, r := range list {
		marker := " "
		name := normalStyle.Render(r.Name)
		if i == cursor {
			marker = accentStyle.Render("▸")
			name = selectedStyle.Render(r.Name)
		}
		action := buttonStyle.Render("[Save Recipe]")
		if record.HasSavedRecipe(r.ID.String()) {
			action = doneStyle.Render("Saved ✓")
		}
		fmt.Fprintf(&b, " %s %s  %s\n", marker, name, action)

		var meta []string
		if r.Category != "" {
			meta = append(meta, CategoryStyle(r.Category).Render(r.Category))
		}
		if c := r.Calories.String(); c != "" {
			meta = append(meta, c+" cal")
		}
		if p := r.PrepTime.String(); p != "" {
			meta = append(meta, "Prep: "+p)
		}
		if len(meta) > 0 {
			b.WriteString("   " + dimStyle.Render(strings.Join(meta, " · ")) + "\n")
		}
		if macros := formatMacros(r.Macros); macros != "" {
			b.WriteString("   " + metaStyle.Render(macros) + "\n")
		}
		if i == cursor && len(r.Ingredients) > 0 {
			b.WriteString("   " + sectionHeaderStyle.Render("Ingredients: "+strings.Join(r.Ingredients, ", ")) + "\n")
		}
	}
	return b.String()
}

// formatMacros renders macros as "carbs 40g · fat 5g · protein 30g", sorted by name.
func formatMacros(m domain.Macros) string {
	if len(m) == 0 {
		return ""
	}
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, k := range names {
		if k == "summary" {
			parts = append(parts, m[k].String())
			continue
		}
		parts = append(parts, k+" "+m[k].String())
	}
	return strings.Join(parts, " · ")
}

func (m nutritionModel) helpKeys() string {
	if m.editing {
		return helpBar(helpEntry("enter", "done"), helpEntry("esc", "clear"))
	}
	return helpBar(helpEntry("1-5", "tabs"), helpEntry("j/k", "nav"), helpEntry("/", "search"), helpEntry("enter", "save"), helpEntry("c", "copy"), helpEntry("h", "help"), helpEntry("q", "quit"))
}
