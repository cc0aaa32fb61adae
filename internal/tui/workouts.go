package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/gymhum/internal/state"
	"github.com/naveenspark/gymhum/pkg/domain"
)

// workoutFilter is one button in the workouts filter bar.
type workoutFilter struct {
	key      string
	label    string
	category string // "" matches every workout
}

var workoutFilters = []workoutFilter{
	{key: "f", label: "Full Body", category: "Full Body"},
	{key: "y", label: "Yoga", category: "Yoga"},
	{key: "a", label: "All"},
}

// filterAll is the index of the "All" filter, active after every load.
var filterAll = len(workoutFilters) - 1

type workoutsModel struct {
	state       *state.State
	workouts    []domain.Workout
	filter      int
	listVisible bool
	cursor      int
	loading     bool
	err         error
	status      transient
	width       int
	height      int
}

func newWorkoutsModel(st *state.State) workoutsModel {
	return workoutsModel{state: st, filter: filterAll}
}

func (m workoutsModel) startLoading() workoutsModel {
	m.loading = true
	m.err = nil
	return m
}

// loaded installs a fetched list. The filter bar resets to "All" with the
// card list hidden.
func (m workoutsModel) loaded(workouts []domain.Workout, err error) workoutsModel {
	m.loading = false
	m.err = err
	if err == nil {
		m.workouts = workouts
	}
	m.filter = filterAll
	m.listVisible = false
	m.cursor = 0
	return m
}

// visible returns the workouts matching the active filter.
func (m workoutsModel) visible() []domain.Workout {
	cat := workoutFilters[m.filter].category
	if cat == "" {
		return m.workouts
	}
	var out []domain.Workout
	for _, w := range m.workouts {
		if strings.EqualFold(w.Category, cat) {
			out = append(out, w)
		}
	}
	return out
}

// activateFilter applies filter i. Re-activating the active filter toggles
// the card list; any other filter shows the list filtered.
func (m workoutsModel) activateFilter(i int) workoutsModel {
	if i == m.filter {
		m.listVisible = !m.listVisible
		return m
	}
	m.filter = i
	m.listVisible = true
	m.cursor = 0
	return m
}

func (m workoutsModel) Update(msg tea.Msg) (workoutsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case expireMsg:
		m.status.expire(msg.seq)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m workoutsModel) handleKey(msg tea.KeyMsg) (workoutsModel, tea.Cmd) {
	if m.loading || m.err != nil || len(m.workouts) == 0 {
		return m, nil
	}
	key := msg.String()
	for i, f := range workoutFilters {
		if key == f.key {
			return m.activateFilter(i), nil
		}
	}

	visible := m.visible()
	switch key {
	case "j", "down":
		if m.listVisible && m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if !m.listVisible || len(visible) == 0 {
			return m, nil
		}
		w := visible[clampCursor(m.cursor, len(visible))]
		added, err := m.state.CompleteWorkout(w)
		if err != nil {
			cmd := m.status.saveFailed(err, targetWorkoutStatus)
			return m, cmd
		}
		if !added {
			return m, nil
		}
		return m, profileChanged(domain.ChallengeFitnessJourney)
	}
	return m, nil
}

func (m workoutsModel) View() string {
	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("WORKOUTS") + "  " + taglineStyle.Render("Pick a routine and get moving."))
	if m.status.text != "" {
		b.WriteString("   " + noticeStyle.Render(m.status.text))
	}
	b.WriteString("\n")

	if body, ok := placeholder(domain.SectionWorkouts, m.loading, m.err, len(m.workouts)); ok {
		b.WriteString(body)
		return b.String()
	}

	// Filter bar
	b.WriteString(" ")
	for i, f := range workoutFilters {
		if i > 0 {
			b.WriteString("  ")
		}
		label := "[" + f.label + "]"
		if i == m.filter {
			b.WriteString(searchStyle.Render(label))
		} else {
			b.WriteString(dimStyle.Render(label))
		}
		b.WriteString(" " + helpKeyStyle.Render(f.key))
	}
	b.WriteString("\n")
	b.WriteString(separator(m.width) + "\n")

	if !m.listVisible {
		b.WriteString(" " + dimStyle.Render("press "+workoutFilters[m.filter].key+" to show workouts") + "\n")
		return b.String()
	}

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(" " + dimStyle.Render("No "+workoutFilters[m.filter].label+" workouts") + "\n")
		return b.String()
	}

	record := m.state.Profile()
	cursor := clampCursor(m.cursor, len(visible))
	for i, w := range visible {
		marker := " "
		name := normalStyle.Render(w.Name)
		if i == cursor {
			marker = accentStyle.Render("▸")
			name = selectedStyle.Render(w.Name)
		}
		action := buttonStyle.Render("[Mark Complete]")
		if record.HasCompletedWorkout(w.ID.String()) {
			action = doneStyle.Render("Completed ✓")
		}
		fmt.Fprintf(&b, " %s %s  %s\n", marker, name, action)
		meta := []string{CategoryStyle(w.Category).Render(w.Category)}
		if d := w.Duration.String(); d != "" {
			meta = append(meta, "Duration: "+d)
		}
		if d := w.Difficulty.String(); d != "" {
			meta = append(meta, d)
		}
		b.WriteString("   " + dimStyle.Render(strings.Join(meta, " · ")) + "\n")
		if w.Description != "" {
			b.WriteString("   " + metaStyle.Render(truncStr(w.Description, max(m.width-4, 20))) + "\n")
		}
		if i == cursor && len(w.Exercises) > 0 {
			b.WriteString("   " + sectionHeaderStyle.Render("Exercises: "+strings.Join(w.Exercises, ", ")) + "\n")
		}
	}
	return b.String()
}

func (m workoutsModel) helpKeys() string {
	return helpBar(helpEntry("1-5", "tabs"), helpEntry("f/y/a", "filter"), helpEntry("j/k", "nav"), helpEntry("enter", "complete"), helpEntry("h", "help"), helpEntry("q", "quit"))
}
