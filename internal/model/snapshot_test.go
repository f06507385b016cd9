package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsIndependent(t *testing.T) {
	end := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	src := NewSnapshot()
	src.Batches = append(src.Batches,
		Batch{ID: uuid.New(), Name: "first", Status: BatchClosed, EndDate: &end},
		Batch{ID: uuid.New(), Name: "second", Status: BatchActive},
	)
	src.DailyLogs = append(src.DailyLogs, DailyLog{ID: uuid.New(), BatchID: src.Batches[1].ID, Dead: 3})

	clone := src.Clone()
	clone.Batches[0].Name = "renamed"
	*clone.Batches[0].EndDate = end.AddDate(0, 0, 5)
	clone.DailyLogs = append(clone.DailyLogs, DailyLog{ID: uuid.New()})

	assert.Equal(t, "first", src.Batches[0].Name)
	assert.Equal(t, end, *src.Batches[0].EndDate)
	assert.Len(t, src.DailyLogs, 1)
}

func TestNormalizeFillsNilCollections(t *testing.T) {
	s := &Snapshot{Batches: []Batch{{ID: uuid.New()}}}
	s.Normalize()

	assert.Len(t, s.Batches, 1)
	assert.NotNil(t, s.DailyLogs)
	assert.NotNil(t, s.Sales)
	assert.NotNil(t, s.Expenses)
	assert.NotNil(t, s.Vaccinations)
	assert.NotNil(t, s.InventoryItems)
	assert.NotNil(t, s.StockHistory)
}

func TestActiveBatch(t *testing.T) {
	s := NewSnapshot()
	assert.Nil(t, s.ActiveBatch())

	closed := Batch{ID: uuid.New(), Status: BatchClosed}
	active := Batch{ID: uuid.New(), Status: BatchActive}
	s.Batches = append(s.Batches, closed, active)

	got := s.ActiveBatch()
	require.NotNil(t, got)
	assert.Equal(t, active.ID, got.ID)
}

func TestPerBatchQueriesScopeByBatch(t *testing.T) {
	s := NewSnapshot()
	a, b := uuid.New(), uuid.New()
	s.DailyLogs = append(s.DailyLogs,
		DailyLog{ID: uuid.New(), BatchID: a},
		DailyLog{ID: uuid.New(), BatchID: b},
		DailyLog{ID: uuid.New(), BatchID: a},
	)
	s.Sales = append(s.Sales, Sale{ID: uuid.New(), BatchID: b})

	assert.Len(t, s.LogsFor(a), 2)
	assert.Len(t, s.LogsFor(b), 1)
	assert.Len(t, s.SalesFor(a), 0)
	assert.Len(t, s.SalesFor(b), 1)
	assert.Nil(t, s.FindBatch(uuid.New()))
}
