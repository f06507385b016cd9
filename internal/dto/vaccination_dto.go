package dto

import "github.com/merosman91/Boiler-Farm/internal/model"

// AddVaccinationRequest appends a single ad hoc entry outside the generated
// schedule.
type AddVaccinationRequest struct {
	BatchID string `json:"batchId" validate:"required,uuid"`
	Name    string `json:"name"    validate:"required"`
	Method  string `json:"type"`
	Date    string `json:"date"    validate:"omitempty"` // YYYY-MM-DD; empty = today
	DayAge  int    `json:"dayAge"  validate:"min=0"`
	Notes   string `json:"notes"`
}

type SetVaccinationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending done"`
}

type VaccinationListResponse struct {
	Data  []model.VaccinationEntry `json:"data"`
	Total int                      `json:"total"`
}
