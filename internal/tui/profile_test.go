package tui

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/naveenspark/gymhum/pkg/domain"
)

func TestProfileShowsCountsAndProgress(t *testing.T) {
	st := newTestState(t)
	for _, w := range testWorkouts {
		st.CompleteWorkout(w) //nolint:errcheck
	}
	st.SaveRecipe(testRecipes[0])                     //nolint:errcheck
	st.JoinChallenge(domain.ChallengeNutritionMaster) //nolint:errcheck

	m := newProfileModel(st, zaptest.NewLogger(t))
	m.width = 80
	view := m.View()
	assertContains(t, view, "3 Workouts")
	assertContains(t, view, "1 Recipes")
	assertContains(t, view, "1 Challenges")
	assertContains(t, view, "0 Friends")
	assertContains(t, view, "3/30 days")
	assertContains(t, view, "1/10 recipes")
	assertContains(t, view, "Completed Bench Basics")
	assertContains(t, view, "Saved Protein Smoothie")
	assertContains(t, view, "Joined Nutrition Master")
}

func TestProfileBarsFollowComputedProgress(t *testing.T) {
	st := newTestState(t)
	for i := range 15 {
		st.CompleteWorkout(domain.Workout{ID: domain.FlexString(fmt.Sprint(i)), Name: "W"}) //nolint:errcheck
	}
	m := newProfileModel(st, zaptest.NewLogger(t))
	m.width = 40

	want := domain.ComputeProgress(st.Profile())
	if want.WorkoutPct != 50 || want.RecipePct != 0 {
		t.Fatalf("progress = %+v", want)
	}
	view := m.View()
	assertContains(t, view, "15/30 days")
	if got := strings.Count(view, "█"); got != 5 {
		t.Errorf("filled cells = %d, want 5 (half of a 10-wide bar)", got)
	}
}

func TestProfileRecentActivityShowsLastThree(t *testing.T) {
	st := newTestState(t)
	for _, name := range []string{"One", "Two", "Three", "Four"} {
		st.CompleteWorkout(domain.Workout{ID: domain.FlexString(name), Name: name}) //nolint:errcheck
	}
	m := newProfileModel(st, zaptest.NewLogger(t))
	view := m.View()
	assertNotContains(t, view, "Completed One")
	assertContains(t, view, "Completed Four")
}

func TestProfilePostPreview(t *testing.T) {
	st := newTestState(t)
	st.CreatePost("Crushed a new deadlift PR today") //nolint:errcheck
	m := newProfileModel(st, zaptest.NewLogger(t))
	assertContains(t, m.View(), `Posted: "Crushed a new deadli..."`)
}

func TestProfileRecentActivityShowsLastStoredPost(t *testing.T) {
	st := newTestState(t)
	st.CreatePost("first post of the week") //nolint:errcheck
	st.CreatePost("second post")            //nolint:errcheck
	m := newProfileModel(st, zaptest.NewLogger(t))
	view := m.View()
	assertContains(t, view, `Posted: "first post of the we..."`)
	assertNotContains(t, view, "second post")
}

func TestProfileSnapshotUntilRefresh(t *testing.T) {
	st := newTestState(t)
	m := newProfileModel(st, zaptest.NewLogger(t))
	st.AddFriend("FitLife") //nolint:errcheck
	assertContains(t, m.View(), "0 Friends")

	m = m.refresh()
	assertContains(t, m.View(), "1 Friends")
}

func TestProfileWithoutStateRendersEmpty(t *testing.T) {
	m := newProfileModel(nil, zaptest.NewLogger(t))
	if got := m.View(); got != "" {
		t.Errorf("View() = %q, want empty", got)
	}
}
