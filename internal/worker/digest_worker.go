package worker

// digest_worker.go
// Processes daily digest jobs from QueueDigest: emails the operator the
// stock alerts and due vaccinations collected by the morning scan,
// attaching the active batch's performance report PDF when one exists.

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/merosman91/Boiler-Farm/internal/infra"
)

// DigestJobPayload is the job envelope sent to QueueDigest.
type DigestJobPayload struct {
	ToEmail string   `json:"to_email"`
	Subject string   `json:"subject"`
	Lines   []string `json:"lines"`
	PDFPath string   `json:"pdf_path,omitempty"`
}

// DigestWorker sends the daily alert digest via SMTP.
type DigestWorker struct {
	mailer *infra.Mailer
}

func NewDigestWorker(mailer *infra.Mailer) *DigestWorker {
	return &DigestWorker{mailer: mailer}
}

func (w *DigestWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload DigestJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("digest_worker: invalid payload")
		return nil // malformed jobs are not retryable
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("digest_worker: empty to_email, skipping")
		return nil
	}

	body := strings.Join(payload.Lines, "\n")
	if err := w.mailer.SendDigest(payload.ToEmail, payload.Subject, body, payload.PDFPath); err != nil {
		return fmt.Errorf("digest_worker: send: %w", err)
	}
	log.Info().Str("to", payload.ToEmail).Msg("digest_worker: digest sent")
	return nil
}
