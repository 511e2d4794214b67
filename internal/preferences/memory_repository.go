package preferences

import (
	"context"
	"sync"
	"time"
)

// InMemoryRepository is an in-memory implementation of Repository for
// development and tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	prefs map[string]*Preference
}

// NewInMemoryRepository creates a new in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		prefs: make(map[string]*Preference),
	}
}

// Get retrieves a single preference by key.
func (r *InMemoryRepository) Get(_ context.Context, key string) (*Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pref, ok := r.prefs[key]
	if !ok {
		return nil, ErrPreferenceNotFound
	}
	return pref, nil
}

// Set creates or updates a preference.
func (r *InMemoryRepository) Set(_ context.Context, pref *Preference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pref.UpdatedAt = time.Now()
	r.prefs[pref.Key] = pref
	return nil
}

// Delete removes a preference by key.
func (r *InMemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.prefs, key)
	return nil
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
