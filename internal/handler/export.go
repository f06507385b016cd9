package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merosman91/Boiler-Farm/internal/apierror"
	"github.com/merosman91/Boiler-Farm/internal/model"
	"github.com/merosman91/Boiler-Farm/internal/service"
)

type ExportHandler struct{ svc service.ExportService }

func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Download streams the full snapshot as a JSON backup file.
func (h *ExportHandler) Download(c *gin.Context) {
	snap, filename, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.JSON(http.StatusOK, snap)
}

// Import replaces all state with an uploaded backup. There is no merge;
// the previous snapshot is gone once this returns 200.
func (h *ExportHandler) Import(c *gin.Context) {
	var snap model.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid backup file: "+err.Error()))
		return
	}
	if err := h.svc.Import(c.Request.Context(), &snap); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": true})
}
