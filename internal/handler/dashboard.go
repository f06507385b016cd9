package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/merosman91/Boiler-Farm/internal/apierror"
	"github.com/merosman91/Boiler-Farm/internal/dto"
	"github.com/merosman91/Boiler-Farm/internal/infra"
	"github.com/merosman91/Boiler-Farm/internal/model"
	"github.com/merosman91/Boiler-Farm/internal/service"
	"github.com/merosman91/Boiler-Farm/internal/store"
	"github.com/merosman91/Boiler-Farm/internal/worker"
)

// MetricsHandler serves the derived figures: per-batch summaries, the
// dashboard aggregate, report sharing and the printable PDF.
type MetricsHandler struct {
	metrics    service.MetricsService
	inventory  service.InventoryService
	store      *store.Store
	dispatcher *worker.Dispatcher
	share      *infra.ShareClient
	pdfPath    string
}

func NewMetricsHandler(
	metrics service.MetricsService,
	inventory service.InventoryService,
	st *store.Store,
	dispatcher *worker.Dispatcher,
	share *infra.ShareClient,
	pdfPath string,
) *MetricsHandler {
	return &MetricsHandler{
		metrics:    metrics,
		inventory:  inventory,
		store:      st,
		dispatcher: dispatcher,
		share:      share,
		pdfPath:    pdfPath,
	}
}

func (h *MetricsHandler) Summary(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.metrics.Summary(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MetricsHandler) FeedConsumption(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.metrics.FeedConsumption(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Dashboard aggregates the home screen: active batch summary, stock alerts
// and inventory headline numbers in one round trip.
func (h *MetricsHandler) Dashboard(c *gin.Context) {
	var active *model.Batch
	if err := h.store.View(func(snap *model.Snapshot) error {
		active = snap.ActiveBatch()
		return nil
	}); err != nil {
		respondServiceError(c, err)
		return
	}

	var summary *dto.BatchSummaryResponse
	if active != nil {
		var err error
		summary, err = h.metrics.Summary(c.Request.Context(), active.ID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
	}

	alerts, err := h.inventory.Alerts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	stats, err := h.inventory.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activeBatch": summary,
		"alerts":      alerts,
		"inventory":   stats,
	})
}

// Share delivers the batch report to the configured webhook. With a worker
// pool available the job is queued; otherwise it is sent inline.
func (h *MetricsHandler) Share(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.share.Enabled() {
		c.JSON(http.StatusServiceUnavailable, apierror.New("Share webhook is not configured"))
		return
	}

	if h.dispatcher.Enabled() {
		payload := worker.ShareJobPayload{BatchID: id.String()}
		if err := h.dispatcher.EnqueueShare(c.Request.Context(), payload); err != nil {
			log.Error().Err(err).Str("batch_id", id.String()).Msg("share: enqueue failed")
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to queue share job"))
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"queued": true})
		return
	}

	text, err := h.metrics.ShareText(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if err := h.share.Send(c.Request.Context(), text); err != nil {
		log.Error().Err(err).Str("batch_id", id.String()).Msg("share: inline send failed")
		c.JSON(http.StatusBadGateway, apierror.New("Share webhook delivery failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"queued": false})
}

// ReportPDF renders the printable report and streams it back.
func (h *MetricsHandler) ReportPDF(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	summary, err := h.metrics.Summary(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	path, err := infra.GenerateBatchReportPDF(summary, h.pdfPath)
	if err != nil {
		log.Error().Err(err).Str("batch_id", id.String()).Msg("report: PDF generation failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to generate report"))
		return
	}
	c.FileAttachment(path, "report_"+summary.Name+".pdf")
}
