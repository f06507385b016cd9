package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inventory categories. Category is free text in old backups; these are the
// values the product ships with.
const (
	CategoryFeed     = "feed"
	CategoryMedicine = "medicine"
	CategoryLitter   = "litter"
	CategoryEquip    = "equipment"
	CategoryOther    = "other"
)

// InventoryCategories lists the selectable categories in display order.
var InventoryCategories = []string{
	CategoryFeed, CategoryMedicine, CategoryLitter, CategoryEquip, CategoryOther,
}

// InventoryItem is one stocked good. CurrentStock is mutated only through the
// ledger operations (consume/restock/edit) and never goes negative.
type InventoryItem struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	CurrentStock Quantity        `json:"currentStock"`
	MinStock     Quantity        `json:"minStock"`
	ReorderPoint Quantity        `json:"reorderPoint"`
	CostPerUnit  decimal.Decimal `json:"costPerUnit"`
	ExpiryDate   Date            `json:"expiryDate,omitempty"`
	Supplier     string          `json:"supplier,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	LastUpdated  Date            `json:"lastUpdated"`
}

// Stock history actions.
const (
	StockActionAdd     = "add"
	StockActionEdit    = "edit"
	StockActionConsume = "consume"
	StockActionRestock = "restock"
)

// StockHistoryEntry is the append-only audit record written alongside every
// ledger mutation. History is kept newest-first and never pruned, even when
// the item it references is deleted.
type StockHistoryEntry struct {
	Date          time.Time `json:"date"`
	ItemID        uuid.UUID `json:"itemId"`
	Action        string    `json:"action"`
	PreviousStock Quantity  `json:"previousStock"`
	NewStock      Quantity  `json:"newStock"`
	Notes         string    `json:"notes,omitempty"`
}
