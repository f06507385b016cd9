package service

import (
	"context"
	"fmt"
	"time"

	"github.com/merosman91/Boiler-Farm/internal/model"
	"github.com/merosman91/Boiler-Farm/internal/store"
)

// ExportService hands out and accepts whole-snapshot backups. An import
// replaces all state atomically; there is no merging.
type ExportService interface {
	Snapshot(ctx context.Context) (*model.Snapshot, string, error)
	Import(ctx context.Context, snap *model.Snapshot) error
}

type exportService struct {
	store *store.Store
	now   func() time.Time
}

func NewExportService(st *store.Store) ExportService {
	return &exportService{store: st, now: time.Now}
}

// Snapshot returns a deep copy of current state and the suggested download
// filename, stamped with today's date.
func (s *exportService) Snapshot(_ context.Context) (*model.Snapshot, string, error) {
	snap := s.store.Export()
	filename := fmt.Sprintf("poultry_backup_%s.json", model.DateOf(s.now()).String())
	return snap, filename, nil
}

func (s *exportService) Import(ctx context.Context, snap *model.Snapshot) error {
	if snap == nil {
		return errValidation("snapshot", "must not be empty")
	}
	snap.Normalize()
	return s.store.Replace(ctx, snap)
}
