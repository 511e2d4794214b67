package booking

import (
	"sync/atomic"
	"time"
)

// Status describes the lifecycle of the dataset store.
type Status string

const (
	// StatusLoading means no snapshot has been published yet.
	StatusLoading Status = "loading"
	// StatusReady means a non-empty snapshot is being served.
	StatusReady Status = "ready"
	// StatusEmpty means the load resolved with zero records; the dashboard
	// serves zero-state rather than an error.
	StatusEmpty Status = "empty"
)

// Snapshot is an immutable view of the loaded dataset. Callers must not
// mutate Records; every reload publishes a fresh snapshot instead.
type Snapshot struct {
	Records  []Record
	LoadedAt time.Time
}

// Store holds the current dataset snapshot. Reads are lock-free; Load swaps
// the whole snapshot atomically so readers never observe a partial dataset.
type Store struct {
	snapshot atomic.Pointer[Snapshot]
}

// NewStore creates an empty store in the loading state.
func NewStore() *Store {
	return &Store{}
}

// Load publishes a new snapshot built from records. The slice is owned by the
// store after the call.
func (s *Store) Load(records []Record) {
	s.snapshot.Store(&Snapshot{
		Records:  records,
		LoadedAt: time.Now().UTC(),
	})
}

// Snapshot returns the current snapshot, or nil while still loading.
func (s *Store) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// Records returns the records of the current snapshot (nil while loading).
func (s *Store) Records() []Record {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil
	}
	return snap.Records
}

// Status reports the store lifecycle state.
func (s *Store) Status() Status {
	snap := s.snapshot.Load()
	switch {
	case snap == nil:
		return StatusLoading
	case len(snap.Records) == 0:
		return StatusEmpty
	default:
		return StatusReady
	}
}
