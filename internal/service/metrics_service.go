package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/merosman91/Boiler-Farm/internal/dto"
	"github.com/merosman91/Boiler-Farm/internal/model"
	"github.com/merosman91/Boiler-Farm/internal/store"
)

// MetricsService exposes the derived flock figures the dashboard and the
// share/report surfaces consume.
type MetricsService interface {
	Summary(ctx context.Context, batchID uuid.UUID) (*dto.BatchSummaryResponse, error)
	ShareText(ctx context.Context, batchID uuid.UUID) (string, error)
	FeedConsumption(ctx context.Context, batchID uuid.UUID) (*dto.FeedConsumptionResponse, error)
}

type metricsService struct {
	store *store.Store
	now   func() time.Time
}

func NewMetricsService(st *store.Store) MetricsService {
	return &metricsService{store: st, now: time.Now}
}

func (s *metricsService) Summary(_ context.Context, batchID uuid.UUID) (*dto.BatchSummaryResponse, error) {
	today := model.DateOf(s.now())
	var resp *dto.BatchSummaryResponse
	err := s.store.View(func(snap *model.Snapshot) error {
		var innerErr error
		resp, innerErr = batchSummary(snap, batchID, today)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ShareText renders the headline figures as a plain-text status message,
// suitable for messaging apps.
func (s *metricsService) ShareText(ctx context.Context, batchID uuid.UUID) (string, error) {
	summary, err := s.Summary(ctx, batchID)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Farm report: %s\n", summary.Name)
	fmt.Fprintf(&b, "Day %d", summary.AgeDays)
	if summary.Breed != "" {
		fmt.Fprintf(&b, " (%s)", summary.Breed)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Birds: %d of %d placed\n", summary.CurrentCount, summary.InitialCount)
	fmt.Fprintf(&b, "Mortality: %.1f%%\n", summary.MortalityRate)
	fmt.Fprintf(&b, "Avg weight: %.0f g\n", summary.CurrentWeightG)
	fmt.Fprintf(&b, "Feed used: %.1f kg\n", summary.TotalFeedKg)
	if summary.FCR > 0 {
		fmt.Fprintf(&b, "FCR: %.2f | EPEF: %.0f\n", summary.FCR, summary.EPEF)
	}
	return b.String(), nil
}

func (s *metricsService) FeedConsumption(_ context.Context, batchID uuid.UUID) (*dto.FeedConsumptionResponse, error) {
	var resp *dto.FeedConsumptionResponse
	err := s.store.View(func(snap *model.Snapshot) error {
		if snap.FindBatch(batchID) == nil {
			return errNotFound("batch", batchID)
		}
		resp = feedByType(snap.LogsFor(batchID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
