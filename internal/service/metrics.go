package service

import (
	"sort"

	"github.com/google/uuid"

	"github.com/merosman91/Boiler-Farm/internal/dto"
	"github.com/merosman91/Boiler-Farm/internal/model"
)

// Pure aggregation over a batch's logs. Everything recomputes from scratch
// on each call; the series is one entry per day of a ~40 day cycle, so
// correctness wins over caching.

// batchAge is the flock age in days, counting the start date as day 1.
// Closed batches age up to their end date, not today.
func batchAge(b *model.Batch, today model.Date) int {
	ref := today
	if b.Status == model.BatchClosed && b.EndDate != nil {
		ref = model.DateOf(*b.EndDate)
	}
	return ageOnDate(b.StartDate, ref)
}

func totalDead(logs []model.DailyLog) int {
	total := 0
	for _, l := range logs {
		total += int(l.Dead)
	}
	return total
}

func totalFeedKg(logs []model.DailyLog) float64 {
	total := 0.0
	for _, l := range logs {
		total += float64(l.Feed)
	}
	return total
}

// latestWeightG is the avgWeight of the most recent log that has one.
// Logs sharing a date keep their insertion order.
func latestWeightG(logs []model.DailyLog) float64 {
	sorted := make([]model.DailyLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Date.Before(sorted[i].Date.Time)
	})
	for _, l := range sorted {
		if l.AvgWeight > 0 {
			return float64(l.AvgWeight)
		}
	}
	return 0
}

// mortalityRate is dead birds as a percentage of placed birds. An empty
// placement yields 0, never NaN.
func mortalityRate(dead, initial int) float64 {
	if initial == 0 {
		return 0
	}
	return float64(dead) / float64(initial) * 100
}

// fcr is kilograms of feed per kilogram of live biomass. Without biomass
// there is nothing to divide by and the sentinel 0 is returned.
func fcr(feedKg, biomassKg float64) float64 {
	if biomassKg <= 0 {
		return 0
	}
	return feedKg / biomassKg
}

// epef is the European Production Efficiency Factor. Zero whenever the
// inputs cannot support it (day-old flock, no conversion data yet).
func epef(weightG, livability, conversion float64, ageDays int) float64 {
	if ageDays <= 0 || conversion <= 0 {
		return 0
	}
	return (weightG * livability) / (conversion * float64(ageDays) * 10)
}

// epefClassGood marks the customary "good flock" threshold.
const epefClassGood = 300.0

func classifyEPEF(value float64) string {
	if value >= epefClassGood {
		return "good"
	}
	return "average"
}

// weightCurve maps each weighed log to a chart point. The day index is the
// flock's age on the log date.
func weightCurve(b *model.Batch, logs []model.DailyLog) []dto.WeightPoint {
	points := []dto.WeightPoint{}
	for _, l := range logs {
		if l.AvgWeight <= 0 {
			continue
		}
		points = append(points, dto.WeightPoint{
			Day:     ageOnDate(b.StartDate, l.Date),
			WeightG: float64(l.AvgWeight),
		})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Day < points[j].Day })
	return points
}

// feedByType groups recorded feed usage by ration type in kilograms.
// Logs without a feed type land under "unspecified".
func feedByType(logs []model.DailyLog) *dto.FeedConsumptionResponse {
	resp := &dto.FeedConsumptionResponse{ByType: map[string]float64{}}
	for _, l := range logs {
		if l.Feed <= 0 {
			continue
		}
		key := l.FeedType
		if key == "" {
			key = "unspecified"
		}
		resp.ByType[key] += float64(l.Feed)
		resp.TotalKg += float64(l.Feed)
	}
	return resp
}

// batchSummary assembles every derived metric for one batch as of today.
func batchSummary(snap *model.Snapshot, batchID uuid.UUID, today model.Date) (*dto.BatchSummaryResponse, error) {
	batch := snap.FindBatch(batchID)
	if batch == nil {
		return nil, errNotFound("batch", batchID)
	}
	logs := snap.LogsFor(batchID)

	age := batchAge(batch, today)
	dead := totalDead(logs)
	// Deaths beyond placement surface as a negative count; the FCR/EPEF
	// sentinels absorb the resulting non-positive biomass.
	count := int(batch.InitialCount) - dead
	mortality := mortalityRate(dead, int(batch.InitialCount))
	livability := 100 - mortality
	weightG := latestWeightG(logs)
	feedKg := totalFeedKg(logs)
	biomassKg := float64(count) * weightG / 1000
	conversion := fcr(feedKg, biomassKg)
	efficiency := epef(weightG, livability, conversion, age)

	resp := &dto.BatchSummaryResponse{
		BatchID:      batch.ID.String(),
		Name:         batch.Name,
		Breed:        batch.Breed,
		Status:       batch.Status,
		StartDate:    batch.StartDate.String(),
		AgeDays:      age,
		InitialCount: int(batch.InitialCount),

		TotalDead:     dead,
		CurrentCount:  count,
		MortalityRate: mortality,
		Livability:    livability,

		CurrentWeightG: weightG,
		TotalFeedKg:    feedKg,
		BiomassKg:      biomassKg,
		FCR:            conversion,
		EPEF:           efficiency,
		EPEFClass:      classifyEPEF(efficiency),

		WeightCurve:     weightCurve(batch, logs),
		Finance:         *financialSummary(snap, batchID),
		DueVaccinations: dueVaccinations(snap, batchID, today),
	}
	return resp, nil
}
