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

func newLogService(st *store.Store) *logService {
	return &logService{store: st, now: fixedNow}
}

func TestRecordLog(t *testing.T) {
	st := newTestStore(t)
	batchID := seedBatchID(t, st) // started 2024-03-01
	svc := newLogService(st)

	resp, err := svc.Record(context.Background(), dto.RecordLogRequest{
		BatchID:   batchID.String(),
		Date:      "2024-03-10",
		Dead:      3,
		DeadCause: "heat stress",
		Feed:      120,
		AvgWeight: 520,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.AgeDays)
	assert.EqualValues(t, 3, resp.Dead)
}

func TestRecordLogUnknownBatch(t *testing.T) {
	svc := newLogService(newTestStore(t))

	_, err := svc.Record(context.Background(), dto.RecordLogRequest{
		BatchID: uuid.NewString(),
	})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestRecordLogRejectsNegatives(t *testing.T) {
	st := newTestStore(t)
	batchID := seedBatchID(t, st)
	svc := newLogService(st)

	var ve *ValidationError
	_, err := svc.Record(context.Background(), dto.RecordLogRequest{BatchID: batchID.String(), Dead: -1})
	require.ErrorAs(t, err, &ve)

	_, err = svc.Record(context.Background(), dto.RecordLogRequest{BatchID: batchID.String(), Feed: -5})
	require.ErrorAs(t, err, &ve)
}

func TestListLogsNewestFirst(t *testing.T) {
	st := newTestStore(t)
	batchID := seedBatchID(t, st)
	svc := newLogService(st)

	for _, date := range []string{"2024-03-05", "2024-03-12", "2024-03-08"} {
		_, err := svc.Record(context.Background(), dto.RecordLogRequest{BatchID: batchID.String(), Date: date, Dead: 1})
		require.NoError(t, err)
	}

	list, err := svc.List(context.Background(), batchID)
	require.NoError(t, err)
	require.Equal(t, 3, list.Total)
	assert.Equal(t, "2024-03-12", list.Data[0].Date.String())
	assert.Equal(t, "2024-03-08", list.Data[1].Date.String())
	assert.Equal(t, "2024-03-05", list.Data[2].Date.String())
	assert.Equal(t, 12, list.Data[0].AgeDays)
}

func TestDeleteLog(t *testing.T) {
	st := newTestStore(t)
	batchID := seedBatchID(t, st)
	svc := newLogService(st)

	resp, err := svc.Record(context.Background(), dto.RecordLogRequest{BatchID: batchID.String(), Dead: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), resp.ID))

	list, err := svc.List(context.Background(), batchID)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)

	var nf *NotFoundError
	require.ErrorAs(t, svc.Delete(context.Background(), resp.ID), &nf)
}
