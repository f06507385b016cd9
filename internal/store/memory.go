package store

import (
	"context"

	"github.com/merosman91/Boiler-Farm/internal/model"
)

// MemoryBackend keeps the last saved snapshot in memory. Used by tests and as
// the fallback when no persistence is configured.
type MemoryBackend struct {
	snap *model.Snapshot
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(_ context.Context) (*model.Snapshot, error) {
	if b.snap == nil {
		return model.NewSnapshot(), nil
	}
	return b.snap.Clone(), nil
}

func (b *MemoryBackend) Save(_ context.Context, snap *model.Snapshot) error {
	b.snap = snap.Clone()
	return nil
}
