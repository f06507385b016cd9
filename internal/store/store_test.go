package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merosman91/Boiler-Farm/internal/model"
)

func TestOpenMissingFileYieldsEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "snapshot.json")

	st, err := Open(context.Background(), NewFileBackend(path))
	require.NoError(t, err)

	require.NoError(t, st.View(func(snap *model.Snapshot) error {
		assert.Empty(t, snap.Batches)
		assert.NotNil(t, snap.InventoryItems)
		return nil
	}))
}

func TestUpdateErrorLeavesStateUntouched(t *testing.T) {
	st, err := Open(context.Background(), NewMemoryBackend())
	require.NoError(t, err)

	require.NoError(t, st.Update(context.Background(), func(snap *model.Snapshot) error {
		snap.Batches = append(snap.Batches, model.Batch{ID: uuid.New(), Name: "kept", Status: model.BatchActive})
		return nil
	}))

	boom := errors.New("boom")
	err = st.Update(context.Background(), func(snap *model.Snapshot) error {
		// Mutate first, then fail: none of this may leak out.
		snap.Batches[0].Name = "mutated"
		snap.Batches = append(snap.Batches, model.Batch{ID: uuid.New()})
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.NoError(t, st.View(func(snap *model.Snapshot) error {
		require.Len(t, snap.Batches, 1)
		assert.Equal(t, "kept", snap.Batches[0].Name)
		return nil
	}))
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	backend := NewFileBackend(path)

	st, err := Open(context.Background(), backend)
	require.NoError(t, err)

	batchID := uuid.New()
	require.NoError(t, st.Update(context.Background(), func(snap *model.Snapshot) error {
		snap.Batches = append(snap.Batches, model.Batch{
			ID:           batchID,
			Name:         "Persisted",
			StartDate:    model.NewDate(2024, 3, 1),
			InitialCount: 1000,
			Status:       model.BatchActive,
		})
		snap.InventoryItems = append(snap.InventoryItems, model.InventoryItem{
			ID: uuid.New(), Name: "Feed", CurrentStock: 250,
		})
		return nil
	}))

	// A fresh store sees the committed state.
	reopened, err := Open(context.Background(), NewFileBackend(path))
	require.NoError(t, err)
	require.NoError(t, reopened.View(func(snap *model.Snapshot) error {
		require.Len(t, snap.Batches, 1)
		assert.Equal(t, batchID, snap.Batches[0].ID)
		assert.Equal(t, "2024-03-01", snap.Batches[0].StartDate.String())
		require.Len(t, snap.InventoryItems, 1)
		assert.EqualValues(t, 250, snap.InventoryItems[0].CurrentStock)
		return nil
	}))
}

func TestFileBackendEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	snap, err := NewFileBackend(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Batches)
}

func TestFileBackendPartialDocumentNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"batches":[]}`), 0o644))

	snap, err := NewFileBackend(path).Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snap.DailyLogs)
	assert.NotNil(t, snap.StockHistory)
}

func TestExportReturnsIndependentCopy(t *testing.T) {
	st, err := Open(context.Background(), NewMemoryBackend())
	require.NoError(t, err)
	require.NoError(t, st.Update(context.Background(), func(snap *model.Snapshot) error {
		snap.Batches = append(snap.Batches, model.Batch{ID: uuid.New(), Name: "original"})
		return nil
	}))

	exported := st.Export()
	exported.Batches[0].Name = "tampered"

	require.NoError(t, st.View(func(snap *model.Snapshot) error {
		assert.Equal(t, "original", snap.Batches[0].Name)
		return nil
	}))
}

func TestReplaceSwapsState(t *testing.T) {
	st, err := Open(context.Background(), NewMemoryBackend())
	require.NoError(t, err)
	require.NoError(t, st.Update(context.Background(), func(snap *model.Snapshot) error {
		snap.Batches = append(snap.Batches, model.Batch{ID: uuid.New()})
		return nil
	}))

	require.NoError(t, st.Replace(context.Background(), &model.Snapshot{}))

	require.NoError(t, st.View(func(snap *model.Snapshot) error {
		assert.Empty(t, snap.Batches)
		assert.NotNil(t, snap.Sales) // normalized on the way in
		return nil
	}))
}
