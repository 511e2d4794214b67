package preferences_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fareboard/fareboard/internal/preferences"
)

func newTestService(repo preferences.Repository) *preferences.Service {
	return preferences.NewService(preferences.ServiceConfig{
		Repository: repo,
		Logger:     zerolog.Nop(),
		CacheTTL:   1 * time.Minute,
	})
}

func TestService_ThemeDefault(t *testing.T) {
	service := newTestService(preferences.NewInMemoryRepository())

	assert.Equal(t, preferences.ThemeDark, service.Theme(context.Background()))
}

func TestService_SetTheme(t *testing.T) {
	repo := preferences.NewInMemoryRepository()
	service := newTestService(repo)
	ctx := context.Background()

	require.NoError(t, service.SetTheme(ctx, preferences.ThemeLight))
	assert.Equal(t, preferences.ThemeLight, service.Theme(ctx))

	// The value is persisted, not just cached.
	pref, err := repo.Get(ctx, preferences.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, preferences.ThemeLight, pref.Value)
}

func TestService_SetTheme_Invalid(t *testing.T) {
	service := newTestService(preferences.NewInMemoryRepository())

	err := service.SetTheme(context.Background(), "solarized")
	assert.ErrorIs(t, err, preferences.ErrInvalidTheme)
}

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) (*preferences.Preference, error) {
	return nil, errors.New("db down")
}

func (failingRepo) Set(context.Context, *preferences.Preference) error {
	return errors.New("db down")
}

func (failingRepo) Delete(context.Context, string) error {
	return errors.New("db down")
}

func TestService_ThemeFallsBackOnRepositoryError(t *testing.T) {
	service := newTestService(failingRepo{})

	assert.Equal(t, preferences.DefaultTheme, service.Theme(context.Background()))
}

func TestService_InvalidateCache(t *testing.T) {
	repo := preferences.NewInMemoryRepository()
	service := newTestService(repo)
	ctx := context.Background()

	require.NoError(t, service.SetTheme(ctx, preferences.ThemeLight))

	// Write behind the service's back; the cache still serves the old value.
	require.NoError(t, repo.Set(ctx, &preferences.Preference{
		Key:   preferences.KeyTheme,
		Value: preferences.ThemeDark,
	}))
	assert.Equal(t, preferences.ThemeLight, service.Theme(ctx))

	service.InvalidateCache()
	assert.Equal(t, preferences.ThemeDark, service.Theme(ctx))
}
