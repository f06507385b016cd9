package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/merosman91/Boiler-Farm/internal/store"
)

// Fixed clock for deterministic age and date math across service tests.
var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(context.Background(), store.NewMemoryBackend())
	require.NoError(t, err)
	return st
}
