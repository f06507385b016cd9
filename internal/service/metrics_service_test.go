package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merosman91/Boiler-Farm/internal/model"
)

func TestMetricsServiceSummaryAndShareText(t *testing.T) {
	st := newTestStore(t)
	snap, batchID := scenarioSnapshot()
	require.NoError(t, st.Replace(context.Background(), snap))

	svc := &metricsService{store: st, now: fixedNow}

	summary, err := svc.Summary(context.Background(), batchID)
	require.NoError(t, err)
	assert.Equal(t, 992, summary.CurrentCount)

	text, err := svc.ShareText(context.Background(), batchID)
	require.NoError(t, err)
	assert.Contains(t, text, "Reference")
	assert.Contains(t, text, "Day 15")
	assert.Contains(t, text, "992 of 1000 placed")
	assert.Contains(t, text, "Mortality: 0.8%")
	assert.Contains(t, text, "Avg weight: 900 g")
}

func TestMetricsServiceFeedConsumption(t *testing.T) {
	st := newTestStore(t)
	snap, batchID := scenarioSnapshot()
	snap.DailyLogs[0].FeedType = model.FeedTypes[0]
	snap.DailyLogs[1].FeedType = model.FeedTypes[1]
	require.NoError(t, st.Replace(context.Background(), snap))

	svc := &metricsService{store: st, now: fixedNow}

	resp, err := svc.FeedConsumption(context.Background(), batchID)
	require.NoError(t, err)
	assert.InDelta(t, 50, resp.ByType[model.FeedTypes[0]], 1e-9)
	assert.InDelta(t, 400, resp.ByType[model.FeedTypes[1]], 1e-9)
	assert.InDelta(t, 450, resp.TotalKg, 1e-9)
}
