package preferences

import (
	"context"
)

// Repository defines the interface for preference storage.
type Repository interface {
	// Get retrieves a single preference by key.
	Get(ctx context.Context, key string) (*Preference, error)

	// Set creates or updates a preference.
	Set(ctx context.Context, pref *Preference) error

	// Delete removes a preference by key.
	Delete(ctx context.Context, key string) error
}
