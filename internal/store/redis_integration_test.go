//go:build integration

package store

// Integration tests for the Redis snapshot backend against a real Redis
// instance via testcontainers.
// Run with: go test -tags integration ./internal/store/... -v

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/merosman91/Boiler-Farm/internal/infra"
	"github.com/merosman91/Boiler-Farm/internal/model"
)

func setupRedisBackend(t *testing.T) *RedisBackend {
	t.Helper()
	ctx := context.Background()

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(rdURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisBackend(rdb, "boilerfarm_test:snapshot")
}

func TestRedisBackendEmptyKey(t *testing.T) {
	backend := setupRedisBackend(t)

	snap, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Batches)
	assert.NotNil(t, snap.InventoryItems)
}

func TestRedisBackendRoundTrip(t *testing.T) {
	backend := setupRedisBackend(t)
	ctx := context.Background()

	st, err := Open(ctx, backend)
	require.NoError(t, err)

	batchID := uuid.New()
	require.NoError(t, st.Update(ctx, func(snap *model.Snapshot) error {
		snap.Batches = append(snap.Batches, model.Batch{
			ID:           batchID,
			Name:         "Redis flock",
			StartDate:    model.NewDate(2024, 3, 1),
			InitialCount: 500,
			Status:       model.BatchActive,
		})
		snap.StockHistory = append(snap.StockHistory, model.StockHistoryEntry{
			ItemID:        uuid.New(),
			Action:        model.StockActionConsume,
			PreviousStock: 100,
			NewStock:      75,
		})
		return nil
	}))

	// A second store against the same key sees the committed state.
	reopened, err := Open(ctx, backend)
	require.NoError(t, err)
	require.NoError(t, reopened.View(func(snap *model.Snapshot) error {
		require.Len(t, snap.Batches, 1)
		assert.Equal(t, batchID, snap.Batches[0].ID)
		assert.Equal(t, "2024-03-01", snap.Batches[0].StartDate.String())
		require.Len(t, snap.StockHistory, 1)
		assert.EqualValues(t, 75, snap.StockHistory[0].NewStock)
		return nil
	}))
}
