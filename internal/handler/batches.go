package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merosman91/Boiler-Farm/internal/dto"
	"github.com/merosman91/Boiler-Farm/internal/service"
)

type BatchHandler struct{ svc service.BatchService }

func NewBatchHandler(svc service.BatchService) *BatchHandler {
	return &BatchHandler{svc: svc}
}

// Start opens a new cycle; any currently active cycle is closed first.
func (h *BatchHandler) Start(c *gin.Context) {
	var req dto.StartBatchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.StartBatch(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BatchHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BatchHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Activate reopens a closed cycle, closing whichever cycle was active.
func (h *BatchHandler) Activate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ActivateBatch(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
