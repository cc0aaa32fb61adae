// Package store persists the cart and profile record as human-readable JSON
// in a key-value medium, falling back to empty defaults when a value is
// missing or unreadable.
package store

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/naveenspark/gymhum/pkg/domain"
)

// Storage keys.
const (
	KeyCart    = "cart"
	KeyProfile = "profile"
)

// ParseError means a stored value could not be decoded. It is logged, never returned.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse stored %s: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Store reads and writes the two named records.
type Store struct {
	medium Medium
	log    *zap.Logger
}

// New creates a Store over medium. A nil logger discards diagnostics.
func New(medium Medium, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{medium: medium, log: log}
}

// load decodes key into a T, returning def() when the value is absent or corrupt.
func load[T any](s *Store, key string, def func() T) T {
	data, ok, err := s.medium.Get(key)
	if err != nil {
		s.log.Warn("storage read failed, using default", zap.String("key", key), zap.Error(err))
		return def()
	}
	if !ok {
		return def()
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.log.Warn("stored value unreadable, using default",
			zap.String("key", key), zap.Error(&ParseError{Key: key, Err: err}))
		return def()
	}
	return v
}

func (s *Store) save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("store.save %s: marshal: %w", key, err)
	}
	if err := s.medium.Set(key, data); err != nil {
		return fmt.Errorf("store.save: %w", err)
	}
	return nil
}

// LoadCart returns the stored cart, or an empty cart.
func (s *Store) LoadCart() []domain.CartItem {
	cart := load(s, KeyCart, func() []domain.CartItem { return []domain.CartItem{} })
	if cart == nil {
		// A stored literal null.
		cart = []domain.CartItem{}
	}
	return cart
}

// SaveCart replaces the stored cart.
func (s *Store) SaveCart(cart []domain.CartItem) error {
	if cart == nil {
		cart = []domain.CartItem{}
	}
	return s.save(KeyCart, cart)
}

// LoadProfile returns the stored profile record, or the empty-shaped record.
func (s *Store) LoadProfile() domain.ProfileRecord {
	r := load(s, KeyProfile, domain.NewProfileRecord)
	r.Normalize()
	return r
}

// SaveProfile replaces the stored profile record.
func (s *Store) SaveProfile(r domain.ProfileRecord) error {
	r.Normalize()
	return s.save(KeyProfile, r)
}
