// Package scheduler runs the morning farm scan: collect stock alerts and
// due vaccinations, then hand the digest to the worker pool for delivery.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/merosman91/Boiler-Farm/internal/infra"
	"github.com/merosman91/Boiler-Farm/internal/model"
	"github.com/merosman91/Boiler-Farm/internal/service"
	"github.com/merosman91/Boiler-Farm/internal/store"
	"github.com/merosman91/Boiler-Farm/internal/worker"
)

// Scheduler owns the cron loop. One daily job; each scan recomputes its
// findings from live state, never cached between runs.
type Scheduler struct {
	cron       *cron.Cron
	store      *store.Store
	inventory  service.InventoryService
	vaccines   service.VaccinationService
	metrics    service.MetricsService
	dispatcher *worker.Dispatcher
	digestTo   string
	pdfPath    string
}

type Config struct {
	Store      *store.Store
	Inventory  service.InventoryService
	Vaccines   service.VaccinationService
	Metrics    service.MetricsService
	Dispatcher *worker.Dispatcher
	DigestTo   string
	PDFPath    string
}

func New(cfg Config) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		store:      cfg.Store,
		inventory:  cfg.Inventory,
		vaccines:   cfg.Vaccines,
		metrics:    cfg.Metrics,
		dispatcher: cfg.Dispatcher,
		digestTo:   cfg.DigestTo,
		pdfPath:    cfg.PDFPath,
	}
}

// Start registers the daily scan at the given cron spec and begins ticking.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.runDailyScan); err != nil {
		return fmt.Errorf("scheduler: bad cron spec %q: %w", spec, err)
	}
	s.cron.Start()
	log.Info().Str("spec", spec).Msg("scheduler: daily scan registered")
	return nil
}

// Stop halts the cron loop and waits for a running scan to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runDailyScan() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	lines := []string{}

	alerts, err := s.inventory.Alerts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("scheduler: alert scan failed")
	}
	for _, a := range alerts {
		lines = append(lines, fmt.Sprintf("[%s] %s", a.Severity, a.Message))
	}

	var active *model.Batch
	_ = s.store.View(func(snap *model.Snapshot) error {
		active = snap.ActiveBatch()
		return nil
	})

	pdfPath := ""
	if active != nil {
		due, err := s.vaccines.Due(ctx, active.ID)
		if err != nil {
			log.Error().Err(err).Msg("scheduler: due vaccination scan failed")
		}
		for _, v := range due {
			lines = append(lines, fmt.Sprintf("[vaccination] %s due %s (day %d)", v.Name, v.Date.String(), v.DayAge))
		}

		if summary, err := s.metrics.Summary(ctx, active.ID); err == nil {
			if path, err := infra.GenerateBatchReportPDF(summary, s.pdfPath); err == nil {
				pdfPath = path
			} else {
				log.Warn().Err(err).Msg("scheduler: report PDF generation failed")
			}
		}
	}

	if len(lines) == 0 {
		log.Info().Msg("scheduler: daily scan clean, nothing to report")
		return
	}
	for _, line := range lines {
		log.Warn().Str("alert", line).Msg("scheduler: daily scan finding")
	}

	if s.digestTo == "" || !s.dispatcher.Enabled() {
		return
	}
	payload := worker.DigestJobPayload{
		ToEmail: s.digestTo,
		Subject: fmt.Sprintf("Farm digest %s", model.Today().String()),
		Lines:   lines,
		PDFPath: pdfPath,
	}
	if err := s.dispatcher.EnqueueDigest(ctx, payload); err != nil {
		log.Error().Err(err).Msg("scheduler: failed to enqueue digest")
	}
}
