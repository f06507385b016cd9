package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merosman91/Boiler-Farm/internal/model"
)

// scenarioSnapshot builds the reference flock: 1000 birds placed on March 1,
// one log on day 1 and one on day 10.
func scenarioSnapshot() (*model.Snapshot, uuid.UUID) {
	batchID := uuid.New()
	start := model.NewDate(2024, 3, 1)
	snap := model.NewSnapshot()
	snap.Batches = append(snap.Batches, model.Batch{
		ID:           batchID,
		Name:         "Reference",
		StartDate:    start,
		InitialCount: 1000,
		Status:       model.BatchActive,
	})
	snap.DailyLogs = append(snap.DailyLogs,
		model.DailyLog{ID: uuid.New(), BatchID: batchID, Date: start.AddDays(1), Dead: 5, Feed: 50, AvgWeight: 150},
		model.DailyLog{ID: uuid.New(), BatchID: batchID, Date: start.AddDays(10), Dead: 3, Feed: 400, AvgWeight: 900},
	)
	return snap, batchID
}

func TestBatchSummaryScenario(t *testing.T) {
	snap, batchID := scenarioSnapshot()

	summary, err := batchSummary(snap, batchID, model.NewDate(2024, 3, 15))
	require.NoError(t, err)

	assert.Equal(t, 15, summary.AgeDays)
	assert.Equal(t, 8, summary.TotalDead)
	assert.Equal(t, 992, summary.CurrentCount)
	assert.InDelta(t, 0.8, summary.MortalityRate, 1e-9)
	assert.InDelta(t, 99.2, summary.Livability, 1e-9)
	assert.InDelta(t, 900, summary.CurrentWeightG, 1e-9)
	assert.InDelta(t, 450, summary.TotalFeedKg, 1e-9)
	assert.InDelta(t, 892.8, summary.BiomassKg, 1e-9)
	assert.InDelta(t, 450.0/892.8, summary.FCR, 1e-9)
	assert.Greater(t, summary.EPEF, 0.0)
}

func TestBatchSummaryNotFound(t *testing.T) {
	snap := model.NewSnapshot()
	_, err := batchSummary(snap, uuid.New(), model.Today())
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestMortalityRateZeroInitialCount(t *testing.T) {
	assert.Equal(t, 0.0, mortalityRate(5, 0))
	assert.Equal(t, 0.0, mortalityRate(0, 0))
}

func TestFCRZeroBiomassSentinel(t *testing.T) {
	assert.Equal(t, 0.0, fcr(100, 0))
	assert.Equal(t, 0.0, fcr(100, -5))
	assert.InDelta(t, 2.0, fcr(100, 50), 1e-9)
}

func TestEPEFSentinels(t *testing.T) {
	assert.Equal(t, 0.0, epef(900, 99, 0, 15))
	assert.Equal(t, 0.0, epef(900, 99, 1.5, 0))
}

func TestEPEFMonotonicity(t *testing.T) {
	base := epef(900, 95, 1.5, 30)
	assert.Greater(t, epef(950, 95, 1.5, 30), base)
	assert.Greater(t, epef(900, 97, 1.5, 30), base)
}

func TestClassifyEPEF(t *testing.T) {
	assert.Equal(t, "good", classifyEPEF(300))
	assert.Equal(t, "good", classifyEPEF(412))
	assert.Equal(t, "average", classifyEPEF(299.9))
}

func TestLatestWeightSkipsUnweighedLogs(t *testing.T) {
	start := model.NewDate(2024, 3, 1)
	logs := []model.DailyLog{
		{Date: start.AddDays(1), AvgWeight: 150},
		{Date: start.AddDays(5), AvgWeight: 400},
		{Date: start.AddDays(8), AvgWeight: 0}, // mortality-only entry
	}
	assert.InDelta(t, 400, latestWeightG(logs), 1e-9)
}

func TestLatestWeightTieKeepsInsertionOrder(t *testing.T) {
	date := model.NewDate(2024, 3, 10)
	logs := []model.DailyLog{
		{Date: date, AvgWeight: 610},
		{Date: date, AvgWeight: 640},
	}
	// Two logs share the date; the first inserted wins.
	assert.InDelta(t, 610, latestWeightG(logs), 1e-9)
}

func TestCurrentCountGoesNegativeWhenOverRecorded(t *testing.T) {
	batchID := uuid.New()
	snap := model.NewSnapshot()
	snap.Batches = append(snap.Batches, model.Batch{
		ID:           batchID,
		Name:         "Over-recorded",
		StartDate:    model.NewDate(2024, 3, 1),
		InitialCount: 10,
		Status:       model.BatchActive,
	})
	snap.DailyLogs = append(snap.DailyLogs,
		model.DailyLog{ID: uuid.New(), BatchID: batchID, Date: model.NewDate(2024, 3, 2), Dead: 25, Feed: 40, AvgWeight: 120},
	)

	// More deaths than placements is a data-entry error the engine reports
	// back raw instead of masking.
	summary, err := batchSummary(snap, batchID, model.NewDate(2024, 3, 5))
	require.NoError(t, err)
	assert.Equal(t, -15, summary.CurrentCount)
	assert.Less(t, summary.BiomassKg, 0.0)
	assert.Equal(t, 0.0, summary.FCR)
	assert.Equal(t, 0.0, summary.EPEF)
}

func TestWeightCurveDayIsAgeAtLogDate(t *testing.T) {
	snap, batchID := scenarioSnapshot()
	batch := snap.FindBatch(batchID)

	points := weightCurve(batch, snap.LogsFor(batchID))
	require.Len(t, points, 2)
	assert.Equal(t, 2, points[0].Day) // placed day 1, logged next day
	assert.InDelta(t, 150, points[0].WeightG, 1e-9)
	assert.Equal(t, 11, points[1].Day)
	assert.InDelta(t, 900, points[1].WeightG, 1e-9)
}

func TestFeedByType(t *testing.T) {
	logs := []model.DailyLog{
		{Feed: 50, FeedType: "starter 23%"},
		{Feed: 70, FeedType: "starter 23%"},
		{Feed: 200, FeedType: "grower 21%"},
		{Feed: 30},                          // no type recorded
		{Feed: 0, FeedType: "finisher 19%"}, // nothing consumed
	}
	resp := feedByType(logs)
	assert.InDelta(t, 120, resp.ByType["starter 23%"], 1e-9)
	assert.InDelta(t, 200, resp.ByType["grower 21%"], 1e-9)
	assert.InDelta(t, 30, resp.ByType["unspecified"], 1e-9)
	assert.NotContains(t, resp.ByType, "finisher 19%")
	assert.InDelta(t, 350, resp.TotalKg, 1e-9)
}

func TestBatchSummaryIncludesFinance(t *testing.T) {
	snap, batchID := scenarioSnapshot()
	snap.Sales = append(snap.Sales, model.Sale{
		ID: uuid.New(), BatchID: batchID, Total: decimal.NewFromInt(5000),
	})
	snap.Expenses = append(snap.Expenses, model.Expense{
		ID: uuid.New(), BatchID: batchID, Cost: decimal.NewFromInt(3200),
	})

	summary, err := batchSummary(snap, batchID, model.NewDate(2024, 3, 15))
	require.NoError(t, err)
	assert.True(t, summary.Finance.Sales.Equal(decimal.NewFromInt(5000)))
	assert.True(t, summary.Finance.Expenses.Equal(decimal.NewFromInt(3200)))
	assert.True(t, summary.Finance.Profit.Equal(decimal.NewFromInt(1800)))
}

func TestBatchAgeMinimumOne(t *testing.T) {
	b := &model.Batch{StartDate: model.NewDate(2024, 3, 15), Status: model.BatchActive}
	assert.Equal(t, 1, batchAge(b, model.NewDate(2024, 3, 15)))
	// A start date in the future still reads as day 1.
	assert.Equal(t, 1, batchAge(b, model.NewDate(2024, 3, 10)))
}

func TestBatchAgeClosedBatchUsesEndDate(t *testing.T) {
	end := model.NewDate(2024, 3, 10).Time
	b := &model.Batch{
		StartDate: model.NewDate(2024, 3, 1),
		Status:    model.BatchClosed,
		EndDate:   &end,
	}
	assert.Equal(t, 10, batchAge(b, model.NewDate(2024, 6, 1)))
}
