package config

import (
	"sync"

	"github.com/alexisbeaulieu97/starrating/internal/rating"
)

// Store holds the process-wide settings override. It implements
// rating.GlobalSource and may be updated from any goroutine; resolvers see the
// new override on their next call.
type Store struct {
	mu       sync.RWMutex
	override *rating.Override
}

// NewStore creates a Store with no global override.
func NewStore() *Store {
	return &Store{}
}

// NewStoreFromFile creates a Store seeded with the file's settings.
func NewStoreFromFile(file *File) *Store {
	s := NewStore()
	if file.HasSettings() {
		o := file.Settings.Clone()
		s.override = &o
	}
	return s
}

// Set replaces the global override after validating it. A nil override
// removes the global layer.
func (s *Store) Set(override *rating.Override) error {
	if override != nil {
		if err := convertValidationError(override.Validate()); err != nil {
			return err
		}
		copied := override.Clone()
		override = &copied
	}

	s.mu.Lock()
	s.override = override
	s.mu.Unlock()
	return nil
}

// GlobalOverride implements rating.GlobalSource.
func (s *Store) GlobalOverride() *rating.Override {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.override == nil {
		return nil
	}
	copied := s.override.Clone()
	return &copied
}

var _ rating.GlobalSource = (*Store)(nil)
