package service

import (
	"github.com/google/uuid"

	"github.com/merosman91/Boiler-Farm/internal/model"
)

// The default vaccination program for a broiler cycle. Day offsets are
// calendar days from placement; they are configuration, not derived data.
type scheduleItem struct {
	dayOffset int
	name      string
	method    string
}

var defaultSchedule = []scheduleItem{
	{7, "Hitchner B1 + Newcastle", model.MethodEyeDrop},
	{10, "Avian influenza", model.MethodInjection},
	{12, "Gumboro", model.MethodDrinkingWater},
	{18, "LaSota", model.MethodDrinkingWater},
}

// GenerateSchedule expands the fixed template into pending vaccination
// entries for a batch: date = startDate + dayOffset, dayAge kept verbatim for
// display. The function is pure and deterministic apart from the fresh ids;
// callers invoke it exactly once per batch creation — re-invoking duplicates
// entries.
func GenerateSchedule(batchID uuid.UUID, startDate model.Date) []model.VaccinationEntry {
	entries := make([]model.VaccinationEntry, 0, len(defaultSchedule))
	for _, item := range defaultSchedule {
		entries = append(entries, model.VaccinationEntry{
			ID:      uuid.New(),
			BatchID: batchID,
			Name:    item.name,
			Method:  item.method,
			Date:    startDate.AddDays(item.dayOffset),
			DayAge:  item.dayOffset,
			Status:  model.VaccinationPending,
		})
	}
	return entries
}
