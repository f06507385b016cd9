package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merosman91/Boiler-Farm/internal/dto"
	"github.com/merosman91/Boiler-Farm/internal/service"
)

type VaccinationHandler struct{ svc service.VaccinationService }

func NewVaccinationHandler(svc service.VaccinationService) *VaccinationHandler {
	return &VaccinationHandler{svc: svc}
}

func (h *VaccinationHandler) Add(c *gin.Context) {
	var req dto.AddVaccinationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Add(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VaccinationHandler) SetStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.SetVaccinationStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VaccinationHandler) ListForBatch(c *gin.Context) {
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

// DueForBatch returns pending entries whose date has arrived, the first of
// which is the "due today" alert on the dashboard.
func (h *VaccinationHandler) DueForBatch(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	due, err := h.svc.Due(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": due, "total": len(due)})
}
