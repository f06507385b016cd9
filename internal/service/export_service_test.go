package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merosman91/Boiler-Farm/internal/dto"
	"github.com/merosman91/Boiler-Farm/internal/store"
)

func newExportService(st *store.Store) *exportService {
	return &exportService{store: st, now: fixedNow}
}

func TestSnapshotFilenameCarriesDate(t *testing.T) {
	st := newTestStore(t)
	seedBatchID(t, st)
	svc := newExportService(st)

	snap, filename, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "poultry_backup_2024-03-15.json", filename)
	assert.Len(t, snap.Batches, 1)
}

func TestImportReplacesState(t *testing.T) {
	source := newTestStore(t)
	batchID := seedBatchID(t, source)
	backup, _, err := newExportService(source).Snapshot(context.Background())
	require.NoError(t, err)

	target := newTestStore(t)
	other, err := newBatchService(target).StartBatch(context.Background(), dto.StartBatchRequest{
		Name: "Will be replaced", InitialCount: 50,
	})
	require.NoError(t, err)

	require.NoError(t, newExportService(target).Import(context.Background(), backup))

	// The old batch is gone; the imported one is queryable.
	batches := newBatchService(target)
	_, err = batches.Get(context.Background(), batchID)
	assert.NoError(t, err)

	var nf *NotFoundError
	_, err = batches.Get(context.Background(), uuid.MustParse(other.ID))
	assert.ErrorAs(t, err, &nf)
}

func TestImportNilSnapshot(t *testing.T) {
	svc := newExportService(newTestStore(t))
	var ve *ValidationError
	require.ErrorAs(t, svc.Import(context.Background(), nil), &ve)
}
