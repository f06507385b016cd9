package model

import "github.com/google/uuid"

// Vaccination statuses.
const (
	VaccinationPending = "pending"
	VaccinationDone    = "done"
)

// Administration methods used by the default schedule.
const (
	MethodEyeDrop       = "eye-drop"
	MethodInjection     = "injection"
	MethodDrinkingWater = "drinking-water"
)

// VaccinationEntry is one scheduled or ad hoc vaccination for a batch. The
// bulk of entries are created by the schedule generator at batch start; Date
// is derived once from the batch start date and only changes through explicit
// edits. DayAge keeps the template offset for display regardless of later
// date math.
type VaccinationEntry struct {
	ID      uuid.UUID `json:"id"`
	BatchID uuid.UUID `json:"batchId"`
	Name    string    `json:"name"`
	Method  string    `json:"type"`
	Date    Date      `json:"date"`
	DayAge  int       `json:"dayAge"`
	Status  string    `json:"status"`
	Notes   string    `json:"notes,omitempty"`
}
