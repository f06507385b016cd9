package model

import (
	"time"

	"github.com/google/uuid"
)

// Batch statuses. At most one batch is active at any time; the lifecycle
// service is the only writer of Status and EndDate.
const (
	BatchActive = "active"
	BatchClosed = "closed"
)

// Batch is one production cycle: a flock raised from placement to sale.
// Batches are never physically deleted.
type Batch struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	StartDate    Date       `json:"startDate"`
	InitialCount Count      `json:"initialCount"`
	Breed        string     `json:"breed"`
	Status       string     `json:"status"`
	EndDate      *time.Time `json:"endDate,omitempty"`
}

// DailyLog is one field observation for a batch. Logs are append-only; more
// than one log may share a date.
type DailyLog struct {
	ID        uuid.UUID `json:"id"`
	BatchID   uuid.UUID `json:"batchId"`
	Date      Date      `json:"date"`
	Dead      Count     `json:"dead"`
	DeadCause string    `json:"deadCause,omitempty"`
	Feed      Quantity  `json:"feed"` // kilograms
	FeedType  string    `json:"feedType,omitempty"`
	AvgWeight Quantity  `json:"avgWeight"` // grams; 0 = not weighed that day
	Temp      Quantity  `json:"temp,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}
