package domain

import "math"

// Challenge names.
const (
	ChallengeFitnessJourney  = "30-Day Fitness Journey"
	ChallengeNutritionMaster = "Nutrition Master"
)

// Challenge is a named community goal tracked against a fixed target.
type Challenge struct {
	Name        string
	Description string
	Goal        int
	Unit        string
}

// Challenges are the community goals offered in the community view.
var Challenges = []Challenge{
	{Name: ChallengeFitnessJourney, Description: "Complete workouts for 30 days straight", Goal: WorkoutGoal, Unit: "days"},
	{Name: ChallengeNutritionMaster, Description: "Try 10 healthy recipes this month", Goal: RecipeGoal, Unit: "recipes"},
}

// Progress goals.
const (
	WorkoutGoal = 30
	RecipeGoal  = 10
)

// Progress holds completion percentages, each clamped to [0, 100].
type Progress struct {
	WorkoutPct float64
	RecipePct  float64
}

// Percent returns min(100, count/goal*100). A non-positive goal counts as complete.
func Percent(count, goal int) float64 {
	if goal <= 0 {
		return 100
	}
	if count <= 0 {
		return 0
	}
	return math.Min(100, float64(count)/float64(goal)*100)
}

// ComputeProgress derives challenge progress from the profile record.
func ComputeProgress(r ProfileRecord) Progress {
	return Progress{
		WorkoutPct: Percent(len(r.CompletedWorkouts), WorkoutGoal),
		RecipePct:  Percent(len(r.SavedRecipes), RecipeGoal),
	}
}

// Count returns how many completed units the record holds toward c.
func (c Challenge) Count(r ProfileRecord) int {
	switch c.Name {
	case ChallengeFitnessJourney:
		return len(r.CompletedWorkouts)
	case ChallengeNutritionMaster:
		return len(r.SavedRecipes)
	}
	return 0
}

// Percent returns the clamped completion percentage of c for the record.
func (c Challenge) Percent(r ProfileRecord) float64 {
	return Percent(c.Count(r), c.Goal)
}
