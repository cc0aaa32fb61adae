package domain

import "strings"

// SeedPosts are the fixed community posts shown around the user's own posts.
var SeedPosts = []Post{
	{
		ID:       "seed-fitnessfanatic",
		User:     "FitnessFanatic",
		Avatar:   "🏋️",
		Content:  "Just completed the 30-day challenge! Feeling amazing!",
		Likes:    24,
		Comments: 5,
		Time:     "2 hours ago",
	},
	{
		ID:       "seed-healthyeater",
		User:     "HealthyEater",
		Avatar:   "🍏",
		Content:  "Tried the protein smoothie recipe from the nutrition section - delicious!",
		Likes:    18,
		Comments: 3,
		Time:     "5 hours ago",
	},
	{
		ID:       "seed-yogamaster",
		User:     "YogaMaster",
		Avatar:   "🧘",
		Content:  "Morning yoga session with the sunrise. Perfect start to the day!",
		Likes:    32,
		Comments: 7,
		Time:     "1 day ago",
	},
}

// IsSeedPost reports whether id belongs to one of the fixed seed posts.
func IsSeedPost(id string) bool {
	for _, p := range SeedPosts {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Feed returns the community feed: the first seed post, then the user's posts
// (most recent first), then the remaining seed posts.
func Feed(r ProfileRecord) []Post {
	out := make([]Post, 0, len(SeedPosts)+len(r.Posts))
	out = append(out, SeedPosts[0])
	out = append(out, r.Posts...)
	out = append(out, SeedPosts[1:]...)
	return out
}

// FriendSuggestion is a person offered in "People You May Know".
type FriendSuggestion struct {
	Name          string
	MutualFriends int
}

var suggestedFriends = []FriendSuggestion{
	{Name: "GymBuddy42", MutualFriends: 3},
	{Name: "FitLife", MutualFriends: 5},
	{Name: "WellnessWarrior", MutualFriends: 2},
}

// FriendSuggestions returns suggestions not already in the user's friends,
// narrowed by a case-insensitive name query when query is non-empty.
func FriendSuggestions(r ProfileRecord, query string) []FriendSuggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []FriendSuggestion
	for _, s := range suggestedFriends {
		if r.HasFriend(s.Name) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(s.Name), q) {
			continue
		}
		out = append(out, s)
	}
	return out
}
