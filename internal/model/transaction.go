package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale records birds sold out of a batch. Total is computed at recording time
// as price × live weight, falling back to price × head count when no weight
// was taken.
type Sale struct {
	ID      uuid.UUID       `json:"id"`
	BatchID uuid.UUID       `json:"batchId"`
	Date    Date            `json:"date"`
	Buyer   string          `json:"buyer"`
	Count   Count           `json:"count"`
	Weight  Quantity        `json:"weight"` // kilograms live weight
	Price   decimal.Decimal `json:"price"`  // per kg, or per head when sold by count
	Total   decimal.Decimal `json:"total"`
}

// Expense records an operating cost (litter, medication, gas, ...) attributed
// to a batch.
type Expense struct {
	ID      uuid.UUID       `json:"id"`
	BatchID uuid.UUID       `json:"batchId"`
	Date    Date            `json:"date"`
	Item    string          `json:"item"`
	Cost    decimal.Decimal `json:"cost"`
}
