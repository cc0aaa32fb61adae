// Package state holds the single application-state object shared by every
// view: the profile record and the cart. Each mutation is guarded and takes
// effect only once the store has accepted it.
package state

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/naveenspark/gymhum/internal/store"
	"github.com/naveenspark/gymhum/pkg/domain"
)

// DateLayout formats completion and save dates (month/day/year).
const DateLayout = "1/2/2006"

// State is owned by the TUI event loop. It is not safe for concurrent use.
type State struct {
	store   *store.Store
	log     *zap.Logger
	profile domain.ProfileRecord
	cart    []domain.CartItem

	// seedLikes counts likes on seed posts for this session only.
	seedLikes map[string]int
	now       func() time.Time
	newID     func() string
}

// Load reads the cart and profile from st.
func Load(st *store.Store, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}
	s := &State{
		store:     st,
		log:       log,
		profile:   st.LoadProfile(),
		cart:      st.LoadCart(),
		seedLikes: map[string]int{},
		now:       time.Now,
		newID:     uuid.NewString,
	}
	if s.assignPostIDs() {
		if err := st.SaveProfile(s.profile); err != nil {
			log.Warn("save assigned post ids", zap.Error(err))
		}
	}
	return s
}

// Profile returns a snapshot of the profile record.
func (s *State) Profile() domain.ProfileRecord { return s.profile.Clone() }

// Cart returns a copy of the cart.
func (s *State) Cart() []domain.CartItem {
	return append([]domain.CartItem{}, s.cart...)
}

func (s *State) CartLen() int { return len(s.cart) }

// Feed returns the community feed with session likes applied to seed posts.
func (s *State) Feed() []domain.Post {
	feed := domain.Feed(s.profile)
	for i := range feed {
		feed[i].Likes += s.seedLikes[feed[i].ID]
	}
	return feed
}

// assignPostIDs gives every stored post without an id a fresh one so likes
// can target it. It reports whether any id was assigned.
func (s *State) assignPostIDs() bool {
	assigned := false
	for i := range s.profile.Posts {
		if s.profile.Posts[i].ID == "" {
			s.profile.Posts[i].ID = s.newID()
			assigned = true
		}
	}
	return assigned
}

// updateProfile applies fn to a copy of the record and commits the copy only
// once it is saved. On a failed save the record is left untouched.
func (s *State) updateProfile(fn func(r *domain.ProfileRecord)) error {
	next := s.profile.Clone()
	fn(&next)
	if err := s.store.SaveProfile(next); err != nil {
		s.log.Error("save profile", zap.Error(err))
		return fmt.Errorf("state: save profile: %w", err)
	}
	s.profile = next
	return nil
}

// updateCart saves next and commits it as the cart on success.
func (s *State) updateCart(next []domain.CartItem) error {
	if err := s.store.SaveCart(next); err != nil {
		s.log.Error("save cart", zap.Error(err))
		return fmt.Errorf("state: save cart: %w", err)
	}
	s.cart = next
	return nil
}

// CompleteWorkout records w as completed. It reports false without writing
// when the workout was already completed.
func (s *State) CompleteWorkout(w domain.Workout) (bool, error) {
	id := w.ID.String()
	if s.profile.HasCompletedWorkout(id) {
		return false, nil
	}
	err := s.updateProfile(func(r *domain.ProfileRecord) {
		r.CompletedWorkouts = append(r.CompletedWorkouts, id)
		r.CompletedWorkoutDetails = append(r.CompletedWorkoutDetails, domain.CompletedWorkout{
			ID:   id,
			Name: w.Name,
			Date: s.now().Format(DateLayout),
		})
	})
	return err == nil, err
}

// SaveRecipe records r as saved. It reports false when already saved.
func (s *State) SaveRecipe(rec domain.Recipe) (bool, error) {
	id := rec.ID.String()
	if s.profile.HasSavedRecipe(id) {
		return false, nil
	}
	err := s.updateProfile(func(r *domain.ProfileRecord) {
		r.SavedRecipes = append(r.SavedRecipes, id)
		r.SavedRecipeDetails = append(r.SavedRecipeDetails, domain.SavedRecipe{
			ID:     id,
			Name:   rec.Name,
			SaveOn: s.now().Format(DateLayout),
		})
	})
	return err == nil, err
}

// AddToCart appends p to the cart. Duplicates are allowed.
func (s *State) AddToCart(p domain.Product) error {
	return s.updateCart(append(slices.Clone(s.cart), domain.NewCartItem(p)))
}

// ClearCart empties the cart in a single write.
func (s *State) ClearCart() error {
	return s.updateCart([]domain.CartItem{})
}

// JoinChallenge adds name to the joined challenges. It reports false when
// already joined.
func (s *State) JoinChallenge(name string) (bool, error) {
	if s.profile.HasJoined(name) {
		return false, nil
	}
	err := s.updateProfile(func(r *domain.ProfileRecord) {
		r.CommunityChallenges = append(r.CommunityChallenges, name)
	})
	return err == nil, err
}

// CreatePost prepends a user post. Blank content is ignored.
func (s *State) CreatePost(content string) (bool, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return false, nil
	}
	post := domain.Post{
		ID:      s.newID(),
		User:    "You",
		Avatar:  "😊",
		Content: content,
		Time:    "Just now",
	}
	err := s.updateProfile(func(r *domain.ProfileRecord) {
		r.Posts = append([]domain.Post{post}, r.Posts...)
	})
	return err == nil, err
}

// AddFriend adds name to friends. It reports false when already a friend.
func (s *State) AddFriend(name string) (bool, error) {
	if s.profile.HasFriend(name) {
		return false, nil
	}
	err := s.updateProfile(func(r *domain.ProfileRecord) {
		r.Friends = append(r.Friends, name)
	})
	return err == nil, err
}

// LikePost increments the likes on the post with id. User posts are
// persisted; seed posts count for the session only.
func (s *State) LikePost(id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	if domain.IsSeedPost(id) {
		s.seedLikes[id]++
		return true, nil
	}
	i := slices.IndexFunc(s.profile.Posts, func(p domain.Post) bool { return p.ID == id })
	if i < 0 {
		return false, nil
	}
	err := s.updateProfile(func(r *domain.ProfileRecord) {
		r.Posts[i].Likes++
	})
	return err == nil, err
}
