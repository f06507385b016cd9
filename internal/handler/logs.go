package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merosman91/Boiler-Farm/internal/dto"
	"github.com/merosman91/Boiler-Farm/internal/service"
)

type LogHandler struct{ svc service.LogService }

func NewLogHandler(svc service.LogService) *LogHandler {
	return &LogHandler{svc: svc}
}

func (h *LogHandler) Record(c *gin.Context) {
	var req dto.RecordLogRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Record(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListForBatch returns a batch's logs, newest first.
func (h *LogHandler) ListForBatch(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LogHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
