package preferences

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ServiceConfig holds configuration for the preferences service.
type ServiceConfig struct {
	Repository Repository
	Logger     zerolog.Logger
	CacheTTL   time.Duration // How long to cache preferences in memory
}

// Service provides preference reads with caching and default fallback.
type Service struct {
	repo     Repository
	logger   zerolog.Logger
	cacheTTL time.Duration

	mu          sync.RWMutex
	cache       map[string]*Preference
	cacheExpiry time.Time
}

// NewService creates a new preferences service.
func NewService(cfg ServiceConfig) *Service {
	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 1 * time.Minute
	}

	return &Service{
		repo:     cfg.Repository,
		logger:   cfg.Logger,
		cacheTTL: cacheTTL,
		cache:    make(map[string]*Preference),
	}
}

// Theme returns the persisted dashboard theme, or DefaultTheme when nothing
// has been stored yet or the repository is unavailable.
func (s *Service) Theme(ctx context.Context) string {
	if pref := s.getCached(KeyTheme); pref != nil {
		return pref.Value
	}

	pref, err := s.repo.Get(ctx, KeyTheme)
	if err == nil && ValidTheme(pref.Value) {
		s.setCached(KeyTheme, pref)
		return pref.Value
	}

	if err != nil && !errors.Is(err, ErrPreferenceNotFound) {
		s.logger.Warn().Err(err).Msg("failed to get theme preference, using default")
	}

	return DefaultTheme
}

// SetTheme validates and persists the dashboard theme.
func (s *Service) SetTheme(ctx context.Context, theme string) error {
	if !ValidTheme(theme) {
		return ErrInvalidTheme
	}

	pref := &Preference{
		Key:       KeyTheme,
		Value:     theme,
		UpdatedAt: time.Now(),
	}
	if err := s.repo.Set(ctx, pref); err != nil {
		return err
	}

	s.setCached(KeyTheme, pref)
	return nil
}

// InvalidateCache clears cached preferences, forcing a refresh on next read.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*Preference)
	s.cacheExpiry = time.Time{}
}

// getCached retrieves a preference from cache if valid.
func (s *Service) getCached(key string) *Preference {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if time.Now().After(s.cacheExpiry) {
		return nil
	}

	pref, ok := s.cache[key]
	if !ok {
		return nil
	}
	return pref
}

// setCached stores a preference in the cache.
func (s *Service) setCached(key string, pref *Preference) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[key] = pref
	if s.cacheExpiry.Before(time.Now()) {
		s.cacheExpiry = time.Now().Add(s.cacheTTL)
	}
}
