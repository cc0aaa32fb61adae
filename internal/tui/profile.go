package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/naveenspark/gymhum/internal/state"
	"github.com/naveenspark/gymhum/pkg/domain"
)

// profileModel renders a snapshot of the profile record. The snapshot is
// replaced by refresh after every profile-affecting action.
type profileModel struct {
	state  *state.State
	log    *zap.Logger
	record domain.ProfileRecord
	ready  bool
	width  int
	height int
}

func newProfileModel(st *state.State, log *zap.Logger) profileModel {
	return profileModel{state: st, log: log}.refresh()
}

func (m profileModel) refresh() profileModel {
	if m.state == nil {
		return m
	}
	m.record = m.state.Profile()
	m.ready = true
	return m
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m profileModel) View() string {
	if !m.ready {
		m.log.Error("profile view rendered without state")
		return ""
	}
	r := m.record
	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("YOUR PROGRESS") + "\n\n")

	stats := []struct {
		label string
		count int
	}{
		{"Workouts", len(r.CompletedWorkouts)},
		{"Recipes", len(r.SavedRecipes)},
		{"Challenges", len(r.CommunityChallenges)},
		{"Friends", len(r.Friends)},
	}
	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, selectedStyle.Render(fmt.Sprintf("%d", s.count))+" "+dimStyle.Render(s.label))
	}
	b.WriteString(" " + strings.Join(parts, metaStyle.Render("  ·  ")) + "\n\n")

	progress := domain.ComputeProgress(r)
	bars := []struct {
		name        string
		pct         float64
		count, goal int
		unit        string
	}{
		{domain.ChallengeFitnessJourney, progress.WorkoutPct, len(r.CompletedWorkouts), domain.WorkoutGoal, "days"},
		{domain.ChallengeNutritionMaster, progress.RecipePct, len(r.SavedRecipes), domain.RecipeGoal, "recipes"},
	}
	barWidth := min(max(m.width-30, 10), 30)
	for _, bar := range bars {
		fmt.Fprintf(&b, " %s %s %s\n",
			normalStyle.Render(fmt.Sprintf("%-24s", bar.name)),
			progressBar(bar.pct, barWidth),
			metaStyle.Render(fmt.Sprintf("%d/%d %s", bar.count, bar.goal, bar.unit)))
	}

	b.WriteString("\n " + sectionHeaderStyle.Render("Recent Activity") + "\n")
	var activity []string
	for _, w := range r.RecentWorkouts() {
		activity = append(activity, "🏋️ Completed "+w.Name)
	}
	for _, rec := range r.RecentRecipes() {
		activity = append(activity, "🍲 Saved "+rec.Name)
	}
	if c, ok := r.LatestChallenge(); ok {
		activity = append(activity, "🏆 Joined "+c)
	}
	if p, ok := r.LastPost(); ok {
		activity = append(activity, `💬 Posted: "`+postPreview(p.Content)+`"`)
	}
	if len(activity) == 0 {
		b.WriteString("   " + dimStyle.Render("Nothing yet. Complete a workout or save a recipe to get started.") + "\n")
		return b.String()
	}
	for _, line := range activity {
		b.WriteString("   " + normalStyle.Render(line) + "\n")
	}
	return b.String()
}

func (m profileModel) helpKeys() string {
	return helpBar(helpEntry("1-5", "tabs"), helpEntry("h", "help"), helpEntry("q", "quit"))
}
