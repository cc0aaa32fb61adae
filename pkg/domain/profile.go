package domain

import "slices"

// CompletedWorkout records when a workout was marked complete.
type CompletedWorkout struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// SavedRecipe records when a recipe was saved.
type SavedRecipe struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	SaveOn string `json:"saveOn"`
}

// Post is a community feed entry. User-authored posts carry an ID so likes can target them.
type Post struct {
	ID       string `json:"id,omitempty"`
	User     string `json:"user"`
	Avatar   string `json:"avatar"`
	Content  string `json:"content"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Time     string `json:"time"`
}

// ProfileRecord is the durable aggregate of a user's progress.
// The string slices are ordered sets: callers check membership before appending.
type ProfileRecord struct {
	CompletedWorkouts       []string           `json:"completedWorkouts"`
	SavedRecipes            []string           `json:"savedRecipes"`
	SavedRecipeDetails      []SavedRecipe      `json:"savedRecipeDetails"`
	CompletedWorkoutDetails []CompletedWorkout `json:"completedWorkoutDetails"`
	CommunityChallenges     []string           `json:"communityChallenges"`
	Friends                 []string           `json:"friends"`
	Posts                   []Post             `json:"posts"`
}

// NewProfileRecord returns the empty-shaped record used when nothing is stored yet.
func NewProfileRecord() ProfileRecord {
	return ProfileRecord{
		CompletedWorkouts:       []string{},
		SavedRecipes:            []string{},
		SavedRecipeDetails:      []SavedRecipe{},
		CompletedWorkoutDetails: []CompletedWorkout{},
		CommunityChallenges:     []string{},
		Friends:                 []string{},
		Posts:                   []Post{},
	}
}

// Normalize replaces nil collections with empty ones so the record always
// serializes with every field present as an array.
func (r *ProfileRecord) Normalize() {
	if r.CompletedWorkouts == nil {
		r.CompletedWorkouts = []string{}
	}
	if r.SavedRecipes == nil {
		r.SavedRecipes = []string{}
	}
	if r.SavedRecipeDetails == nil {
		r.SavedRecipeDetails = []SavedRecipe{}
	}
	if r.CompletedWorkoutDetails == nil {
		r.CompletedWorkoutDetails = []CompletedWorkout{}
	}
	if r.CommunityChallenges == nil {
		r.CommunityChallenges = []string{}
	}
	if r.Friends == nil {
		r.Friends = []string{}
	}
	if r.Posts == nil {
		r.Posts = []Post{}
	}
}

// Clone returns a deep copy so views can hold a snapshot while the record keeps changing.
func (r ProfileRecord) Clone() ProfileRecord {
	c := ProfileRecord{
		CompletedWorkouts:       slices.Clone(r.CompletedWorkouts),
		SavedRecipes:            slices.Clone(r.SavedRecipes),
		SavedRecipeDetails:      slices.Clone(r.SavedRecipeDetails),
		CompletedWorkoutDetails: slices.Clone(r.CompletedWorkoutDetails),
		CommunityChallenges:     slices.Clone(r.CommunityChallenges),
		Friends:                 slices.Clone(r.Friends),
		Posts:                   slices.Clone(r.Posts),
	}
	c.Normalize()
	return c
}

func (r ProfileRecord) HasCompletedWorkout(id string) bool {
	return slices.Contains(r.CompletedWorkouts, id)
}

func (r ProfileRecord) HasSavedRecipe(id string) bool {
	return slices.Contains(r.SavedRecipes, id)
}

func (r ProfileRecord) HasJoined(challenge string) bool {
	return slices.Contains(r.CommunityChallenges, challenge)
}

func (r ProfileRecord) HasFriend(name string) bool {
	return slices.Contains(r.Friends, name)
}

// lastN returns up to the final n elements of s.
func lastN[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// RecentWorkouts returns the last three completed workouts, oldest first.
func (r ProfileRecord) RecentWorkouts() []CompletedWorkout {
	return lastN(r.CompletedWorkoutDetails, 3)
}

// RecentRecipes returns the last three saved recipes, oldest first.
func (r ProfileRecord) RecentRecipes() []SavedRecipe {
	return lastN(r.SavedRecipeDetails, 3)
}

// LatestChallenge returns the most recently joined challenge.
func (r ProfileRecord) LatestChallenge() (string, bool) {
	if len(r.CommunityChallenges) == 0 {
		return "", false
	}
	return r.CommunityChallenges[len(r.CommunityChallenges)-1], true
}

// LastPost returns the final stored post. Posts are prepended, so this is
// the earliest one the user wrote.
func (r ProfileRecord) LastPost() (Post, bool) {
	if len(r.Posts) == 0 {
		return Post{}, false
	}
	return r.Posts[len(r.Posts)-1], true
}
