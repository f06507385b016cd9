package dto

import (
	"github.com/shopspring/decimal"

	"github.com/merosman91/Boiler-Farm/internal/model"
)

// RecordSaleRequest registers a sale. Total is derived server-side as
// price × weight, falling back to price × count when no weight is given.
type RecordSaleRequest struct {
	BatchID string          `json:"batchId" validate:"required,uuid"`
	Date    string          `json:"date"    validate:"omitempty"`
	Buyer   string          `json:"buyer"`
	Count   model.Count     `json:"count"   validate:"min=0"`
	Weight  model.Quantity  `json:"weight"  validate:"min=0"` // kg live weight
	Price   decimal.Decimal `json:"price"   validate:"required"`
}

type RecordExpenseRequest struct {
	BatchID string          `json:"batchId" validate:"required,uuid"`
	Date    string          `json:"date"    validate:"omitempty"`
	Item    string          `json:"item"    validate:"required"`
	Cost    decimal.Decimal `json:"cost"    validate:"required"`
}

// FinancialSummaryResponse aggregates a batch's money flows.
type FinancialSummaryResponse struct {
	Sales    decimal.Decimal `json:"sales"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

type SaleListResponse struct {
	Data  []model.Sale `json:"data"`
	Total int          `json:"total"`
}

type ExpenseListResponse struct {
	Data  []model.Expense `json:"data"`
	Total int             `json:"total"`
}
