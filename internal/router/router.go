package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/merosman91/Boiler-Farm/internal/config"
	"github.com/merosman91/Boiler-Farm/internal/handler"
	"github.com/merosman91/Boiler-Farm/internal/infra"
	"github.com/merosman91/Boiler-Farm/internal/middleware"
	"github.com/merosman91/Boiler-Farm/internal/service"
	"github.com/merosman91/Boiler-Farm/internal/store"
	"github.com/merosman91/Boiler-Farm/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store. rdb may be nil when the
// file backend runs without Redis; everything degrades to synchronous.
func New(cfg *config.Config, st *store.Store, rdb *redis.Client, shareCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	shareClient := infra.NewShareClient(cfg.ShareWebhookURL, shareCB)
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	batchSvc := service.NewBatchService(st)
	logSvc := service.NewLogService(st)
	financeSvc := service.NewFinanceService(st)
	vaccinationSvc := service.NewVaccinationService(st)
	metricsSvc := service.NewMetricsService(st)
	inventorySvc := service.NewInventoryService(st)
	exportSvc := service.NewExportService(st)

	// ── Handlers ─────────────────────────────────────────────────────────────
	batchesH := handler.NewBatchHandler(batchSvc)
	logsH := handler.NewLogHandler(logSvc)
	financeH := handler.NewFinanceHandler(financeSvc)
	vaccinationsH := handler.NewVaccinationHandler(vaccinationSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	metricsH := handler.NewMetricsHandler(metricsSvc, inventorySvc, st, dispatcher, shareClient, cfg.PDFStoragePath)
	exportH := handler.NewExportHandler(exportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(rdb))

	v1 := r.Group("/v1")
	{
		v1.GET("/dashboard", metricsH.Dashboard)

		batches := v1.Group("/batches")
		{
			batches.POST("", batchesH.Start)
			batches.GET("", batchesH.List)
			batches.GET("/:id", batchesH.Get)
			batches.POST("/:id/activate", batchesH.Activate)

			batches.GET("/:id/summary", metricsH.Summary)
			batches.GET("/:id/feed-consumption", metricsH.FeedConsumption)
			batches.POST("/:id/share", metricsH.Share)
			batches.GET("/:id/report.pdf", metricsH.ReportPDF)

			batches.GET("/:id/logs", logsH.ListForBatch)
			batches.GET("/:id/sales", financeH.ListSales)
			batches.GET("/:id/expenses", financeH.ListExpenses)
			batches.GET("/:id/finance", financeH.Summary)
			batches.GET("/:id/vaccinations", vaccinationsH.ListForBatch)
			batches.GET("/:id/vaccinations/due", vaccinationsH.DueForBatch)
		}

		v1.POST("/logs", logsH.Record)
		v1.DELETE("/logs/:id", logsH.Delete)

		v1.POST("/sales", financeH.RecordSale)
		v1.POST("/expenses", financeH.RecordExpense)
		v1.DELETE("/expenses/:id", financeH.DeleteExpense)

		v1.POST("/vaccinations", vaccinationsH.Add)
		v1.PATCH("/vaccinations/:id/status", vaccinationsH.SetStatus)

		inv := v1.Group("/inventory")
		{
			inv.POST("", inventoryH.Add)
			inv.GET("", inventoryH.List)
			inv.GET("/alerts", inventoryH.Alerts)
			inv.GET("/value", inventoryH.Value)
			inv.GET("/stats", inventoryH.Stats)
			inv.GET("/history", inventoryH.History)
			inv.PUT("/:id", inventoryH.Edit)
			inv.DELETE("/:id", inventoryH.Delete)
			inv.POST("/:id/consume", inventoryH.Consume)
			inv.POST("/:id/restock", inventoryH.Restock)
		}

		v1.GET("/export", exportH.Download)
		v1.POST("/import", exportH.Import)
	}

	return r
}
