package dto

import "github.com/merosman91/Boiler-Farm/internal/model"

// RecordLogRequest appends one daily observation to a batch. Numeric fields
// use the flexible model types so numeric-ish strings from old clients are
// normalized at the boundary, not inside the aggregation code.
type RecordLogRequest struct {
	BatchID   string         `json:"batchId"   validate:"required,uuid"`
	Date      string         `json:"date"      validate:"omitempty"` // YYYY-MM-DD; empty = today
	Dead      model.Count    `json:"dead"      validate:"min=0"`
	DeadCause string         `json:"deadCause"`
	Feed      model.Quantity `json:"feed"      validate:"min=0"`
	FeedType  string         `json:"feedType"`
	AvgWeight model.Quantity `json:"avgWeight" validate:"min=0"`
	Temp      model.Quantity `json:"temp"`
	Notes     string         `json:"notes"`
}

type LogListResponse struct {
	Data  []LogResponse `json:"data"`
	Total int           `json:"total"`
}

// LogResponse is a daily log enriched with the bird age on the log date.
type LogResponse struct {
	model.DailyLog
	AgeDays int `json:"ageDays"`
}
