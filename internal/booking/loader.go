package booking

import (
	"context"

	"github.com/rs/zerolog"
)

// Loader performs the one-shot startup load of the dataset into a store.
type Loader struct {
	source Source
	store  *Store
	logger zerolog.Logger
}

// NewLoader creates a loader for the given source and store.
func NewLoader(source Source, store *Store, logger zerolog.Logger) *Loader {
	return &Loader{
		source: source,
		store:  store,
		logger: logger,
	}
}

// Load fetches the dataset and publishes it. A failed fetch is logged and
// resolves to an empty snapshot; it is not retried, and the dashboard serves
// zero-state until an operator triggers a reload.
func (l *Loader) Load(ctx context.Context) {
	records, err := l.source.Fetch(ctx)
	if err != nil {
		l.logger.Error().Err(err).
			Str("source", l.source.Name()).
			Msg("dataset load failed, serving empty dataset")
		l.store.Load(nil)
		return
	}

	l.store.Load(records)
	l.logger.Info().
		Str("source", l.source.Name()).
		Int("records", len(records)).
		Msg("dataset loaded")
}
