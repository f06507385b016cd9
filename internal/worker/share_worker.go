package worker

// share_worker.go
// Processes report-sharing jobs from QueueShare: renders the batch's
// headline figures as plain text and posts them to the configured webhook.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/merosman91/Boiler-Farm/internal/infra"
	"github.com/merosman91/Boiler-Farm/internal/service"
)

// ErrDispatchDisabled is returned when async dispatch is attempted without
// a Redis connection.
var ErrDispatchDisabled = errors.New("worker: dispatch disabled, no redis")

// ShareJobPayload is the job envelope sent to QueueShare.
type ShareJobPayload struct {
	BatchID string `json:"batch_id"`
}

// ShareWorker posts batch reports to the share webhook.
type ShareWorker struct {
	metrics service.MetricsService
	client  *infra.ShareClient
}

func NewShareWorker(metrics service.MetricsService, client *infra.ShareClient) *ShareWorker {
	return &ShareWorker{metrics: metrics, client: client}
}

// Process renders the report text live, so a delayed delivery still carries
// current figures rather than the ones at enqueue time.
func (w *ShareWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ShareJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("share_worker: invalid payload")
		return nil // malformed jobs are not retryable
	}
	batchID, err := uuid.Parse(payload.BatchID)
	if err != nil {
		log.Error().Str("batch_id", payload.BatchID).Msg("share_worker: invalid batch_id")
		return nil
	}

	text, err := w.metrics.ShareText(ctx, batchID)
	if err != nil {
		var nf *service.NotFoundError
		if errors.As(err, &nf) {
			log.Warn().Str("batch_id", payload.BatchID).Msg("share_worker: batch gone, dropping job")
			return nil
		}
		return fmt.Errorf("share_worker: build report: %w", err)
	}

	if err := w.client.Send(ctx, text); err != nil {
		return err
	}
	log.Info().Str("batch_id", payload.BatchID).Msg("share_worker: report delivered")
	return nil
}
