// Package store holds the single shared mutable resource of the engine: the
// in-memory snapshot of every collection, loaded once at startup and written
// back through a Backend after each successful mutation.
package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/merosman91/Boiler-Farm/internal/model"
)

// Backend persists the whole snapshot as one value in a key-value store.
type Backend interface {
	// Load returns the last saved snapshot, or an empty snapshot when none
	// has been saved yet.
	Load(ctx context.Context) (*model.Snapshot, error)
	Save(ctx context.Context, snap *model.Snapshot) error
}

// Store serializes all access to the snapshot. There is exactly one logical
// writer; the mutex exists because the HTTP layer may call in from multiple
// goroutines.
type Store struct {
	mu      sync.RWMutex
	snap    *model.Snapshot
	backend Backend
}

// Open loads the snapshot from the backend. A missing or empty snapshot
// yields empty collections.
func Open(ctx context.Context, backend Backend) (*Store, error) {
	snap, err := backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		snap = model.NewSnapshot()
	}
	snap.Normalize()
	return &Store{snap: snap, backend: backend}, nil
}

// View runs fn with read access to the snapshot. fn must not mutate or retain
// the snapshot or anything reachable from it.
func (s *Store) View(fn func(snap *model.Snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.snap)
}

// Update runs fn against a clone of the snapshot. When fn returns an error
// the clone is discarded and the committed state is untouched, which gives
// every mutating operation all-or-nothing semantics. On success the clone is
// committed and persisted; a backend write failure is logged but does not
// roll back the in-memory commit (persistence is a side effect, matching the
// original best-effort local save).
func (s *Store) Update(ctx context.Context, fn func(snap *model.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.snap = next

	if err := s.backend.Save(ctx, next); err != nil {
		log.Error().Err(err).Msg("store: snapshot save failed, in-memory state kept")
	}
	return nil
}

// Export returns a deep copy of the current snapshot for backup downloads.
func (s *Store) Export() *model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// Replace swaps in a restored snapshot (backup import) and persists it.
func (s *Store) Replace(ctx context.Context, snap *model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap.Normalize()
	s.snap = snap
	return s.backend.Save(ctx, snap)
}
