package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merosman91/Boiler-Farm/internal/dto"
	"github.com/merosman91/Boiler-Farm/internal/model"
	"github.com/merosman91/Boiler-Farm/internal/store"
)

func newBatchService(st *store.Store) *batchService {
	return &batchService{store: st, now: fixedNow}
}

func activeCount(t *testing.T, st *store.Store) int {
	t.Helper()
	count := 0
	require.NoError(t, st.View(func(snap *model.Snapshot) error {
		for _, b := range snap.Batches {
			if b.Status == model.BatchActive {
				count++
			}
		}
		return nil
	}))
	return count
}

func TestStartBatch(t *testing.T) {
	st := newTestStore(t)
	svc := newBatchService(st)

	resp, err := svc.StartBatch(context.Background(), dto.StartBatchRequest{
		Name:         "Spring flock",
		StartDate:    "2024-03-01",
		InitialCount: 1000,
		Breed:        "Cobb 500",
	})
	require.NoError(t, err)

	assert.Equal(t, "Spring flock", resp.Name)
	assert.Equal(t, "2024-03-01", resp.StartDate)
	assert.Equal(t, model.BatchActive, resp.Status)
	assert.Nil(t, resp.EndDate)
	assert.Equal(t, 1, activeCount(t, st))
}

func TestStartBatchDefaultsToToday(t *testing.T) {
	svc := newBatchService(newTestStore(t))

	resp, err := svc.StartBatch(context.Background(), dto.StartBatchRequest{
		Name:         "No date",
		InitialCount: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", resp.StartDate)
}

func TestStartBatchValidation(t *testing.T) {
	svc := newBatchService(newTestStore(t))

	_, err := svc.StartBatch(context.Background(), dto.StartBatchRequest{Name: "  ", InitialCount: 10})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	_, err = svc.StartBatch(context.Background(), dto.StartBatchRequest{Name: "x", InitialCount: 0})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "initialCount", ve.Field)
}

func TestStartBatchClosesPreviousActive(t *testing.T) {
	st := newTestStore(t)
	svc := newBatchService(st)

	first, err := svc.StartBatch(context.Background(), dto.StartBatchRequest{Name: "First", InitialCount: 100})
	require.NoError(t, err)
	second, err := svc.StartBatch(context.Background(), dto.StartBatchRequest{Name: "Second", InitialCount: 200})
	require.NoError(t, err)

	assert.Equal(t, 1, activeCount(t, st))

	got, err := svc.Get(context.Background(), uuid.MustParse(first.ID))
	require.NoError(t, err)
	assert.Equal(t, model.BatchClosed, got.Status)
	require.NotNil(t, got.EndDate)

	got, err = svc.Get(context.Background(), uuid.MustParse(second.ID))
	require.NoError(t, err)
	assert.Equal(t, model.BatchActive, got.Status)
}

func TestStartBatchGeneratesSchedule(t *testing.T) {
	st := newTestStore(t)
	svc := newBatchService(st)

	resp, err := svc.StartBatch(context.Background(), dto.StartBatchRequest{
		Name:         "Scheduled",
		StartDate:    "2024-01-01",
		InitialCount: 100,
	})
	require.NoError(t, err)

	var entries []model.VaccinationEntry
	require.NoError(t, st.View(func(snap *model.Snapshot) error {
		entries = snap.VaccinationsFor(uuid.MustParse(resp.ID))
		return nil
	}))
	require.Len(t, entries, 4)
	for _, e := range entries {
		assert.Equal(t, model.VaccinationPending, e.Status)
	}
	assert.Equal(t, "2024-01-08", entries[0].Date.String())
	assert.Equal(t, 7, entries[0].DayAge)
	assert.Equal(t, "2024-01-19", entries[3].Date.String())
}

func TestActivateBatchKeepsExactlyOneActive(t *testing.T) {
	st := newTestStore(t)
	svc := newBatchService(st)

	first, err := svc.StartBatch(context.Background(), dto.StartBatchRequest{Name: "A", InitialCount: 10})
	require.NoError(t, err)
	_, err = svc.StartBatch(context.Background(), dto.StartBatchRequest{Name: "B", InitialCount: 10})
	require.NoError(t, err)
	third, err := svc.StartBatch(context.Background(), dto.StartBatchRequest{Name: "C", InitialCount: 10})
	require.NoError(t, err)

	// Flip activation back and forth; the invariant must hold after each call.
	for _, target := range []string{first.ID, third.ID, first.ID} {
		resp, err := svc.ActivateBatch(context.Background(), uuid.MustParse(target))
		require.NoError(t, err)
		assert.Equal(t, model.BatchActive, resp.Status)
		assert.Nil(t, resp.EndDate)
		assert.Equal(t, 1, activeCount(t, st))
	}
}

func TestActivateBatchNotFound(t *testing.T) {
	svc := newBatchService(newTestStore(t))

	_, err := svc.ActivateBatch(context.Background(), uuid.New())
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "batch", nf.Kind)
}

func TestGenerateScheduleDates(t *testing.T) {
	batchID := uuid.New()
	start := model.NewDate(2024, 1, 1)

	entries := GenerateSchedule(batchID, start)
	require.Len(t, entries, 4)

	expected := []struct {
		date string
		day  int
		name string
	}{
		{"2024-01-08", 7, "Hitchner B1 + Newcastle"},
		{"2024-01-11", 10, "Avian influenza"},
		{"2024-01-13", 12, "Gumboro"},
		{"2024-01-19", 18, "LaSota"},
	}
	for i, want := range expected {
		assert.Equal(t, batchID, entries[i].BatchID)
		assert.Equal(t, want.date, entries[i].Date.String())
		assert.Equal(t, want.day, entries[i].DayAge)
		assert.Equal(t, want.name, entries[i].Name)
		assert.Equal(t, model.VaccinationPending, entries[i].Status)
	}
}
