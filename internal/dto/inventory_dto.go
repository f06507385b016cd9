package dto

import (
	"github.com/shopspring/decimal"

	"github.com/merosman91/Boiler-Farm/internal/model"
)

type AddItemRequest struct {
	Name         string          `json:"name"         validate:"required"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	CurrentStock model.Quantity  `json:"currentStock" validate:"required,gt=0"`
	MinStock     model.Quantity  `json:"minStock"     validate:"min=0"`
	ReorderPoint model.Quantity  `json:"reorderPoint" validate:"min=0"`
	CostPerUnit  decimal.Decimal `json:"costPerUnit"  validate:"min=0"`
	ExpiryDate   string          `json:"expiryDate"   validate:"omitempty"`
	Supplier     string          `json:"supplier"`
	Notes        string          `json:"notes"`
}

// EditItemRequest replaces every editable field of an item. The recorded
// history entry takes its "previous stock" from the stock loaded into the
// edit form, passed back as PreviousStock.
type EditItemRequest struct {
	Name          string          `json:"name"          validate:"required"`
	PreviousStock model.Quantity  `json:"previousStock"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	CurrentStock  model.Quantity  `json:"currentStock" validate:"min=0"`
	MinStock      model.Quantity  `json:"minStock"     validate:"min=0"`
	ReorderPoint  model.Quantity  `json:"reorderPoint" validate:"min=0"`
	CostPerUnit   decimal.Decimal `json:"costPerUnit"  validate:"min=0"`
	ExpiryDate    string          `json:"expiryDate"   validate:"omitempty"`
	Supplier      string          `json:"supplier"`
	Notes         string          `json:"notes"`
}

type ConsumeRequest struct {
	Amount model.Quantity `json:"amount" validate:"required,gt=0"`
	Notes  string         `json:"notes"`
}

type RestockRequest struct {
	Amount model.Quantity `json:"amount" validate:"required,gt=0"`
	Notes  string         `json:"notes"`
}

// ItemFilter is bound from the query string of GET /v1/inventory.
type ItemFilter struct {
	Filter string `form:"filter,default=all"` // all | low | <category>
	SortBy string `form:"sort,default=name"`  // name | stock | value | category
}

// ItemResponse is an inventory item plus derived convenience fields.
type ItemResponse struct {
	model.InventoryItem
	Value            decimal.Decimal `json:"value"`            // currentStock × costPerUnit
	SuggestedRestock model.Quantity  `json:"suggestedRestock"` // 2 × minStock
	Low              bool            `json:"low"`
}

type ItemListResponse struct {
	Data  []ItemResponse `json:"data"`
	Total int            `json:"total"`
}

// Alert severities.
const (
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
)

type AlertResponse struct {
	ItemID   string `json:"itemId"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type InventoryValueResponse struct {
	TotalValue decimal.Decimal `json:"totalValue"`
}

// InventoryStatsResponse mirrors the headline numbers of the inventory screen.
type InventoryStatsResponse struct {
	TotalItems    int `json:"totalItems"`
	LowStockItems int `json:"lowStockItems"`
	FeedItems     int `json:"feedItems"`
	MedicineItems int `json:"medicineItems"`
}

// FeedConsumptionResponse groups a batch's recorded feed usage by ration
// type, in kilograms. Informational cross-check against the ledger; no
// automatic reconciliation.
type FeedConsumptionResponse struct {
	ByType  map[string]float64 `json:"byType"`
	TotalKg float64            `json:"totalKg"`
}

type HistoryListResponse struct {
	Data  []model.StockHistoryEntry `json:"data"`
	Total int                       `json:"total"`
}
