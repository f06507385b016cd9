package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/merosman91/Boiler-Farm/internal/dto"
	"github.com/merosman91/Boiler-Farm/internal/model"
	"github.com/merosman91/Boiler-Farm/internal/store"
)

// InventoryService is the stock ledger. Every mutation writes a paired
// history entry in the same transaction; stock never goes negative.
type InventoryService interface {
	AddItem(ctx context.Context, req dto.AddItemRequest) (*model.InventoryItem, error)
	EditItem(ctx context.Context, id uuid.UUID, req dto.EditItemRequest) (*model.InventoryItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	Consume(ctx context.Context, id uuid.UUID, req dto.ConsumeRequest) (*model.InventoryItem, error)
	Restock(ctx context.Context, id uuid.UUID, req dto.RestockRequest) (*model.InventoryItem, error)
	List(ctx context.Context, filter dto.ItemFilter) (*dto.ItemListResponse, error)
	Alerts(ctx context.Context) ([]dto.AlertResponse, error)
	TotalValue(ctx context.Context) (*dto.InventoryValueResponse, error)
	Stats(ctx context.Context) (*dto.InventoryStatsResponse, error)
	History(ctx context.Context, itemID *uuid.UUID) (*dto.HistoryListResponse, error)
}

type inventoryService struct {
	store *store.Store
	now   func() time.Time
}

func NewInventoryService(st *store.Store) InventoryService {
	return &inventoryService{store: st, now: time.Now}
}

// ─── Mutations ───────────────────────────────────────────────────────────────

func (s *inventoryService) AddItem(ctx context.Context, req dto.AddItemRequest) (*model.InventoryItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errValidation("name", "must not be empty")
	}
	if req.CurrentStock <= 0 {
		return nil, errValidation("currentStock", "must be a positive number")
	}
	if req.MinStock < 0 || req.ReorderPoint < 0 {
		return nil, errValidation("minStock", "must not be negative")
	}
	if req.CostPerUnit.IsNegative() {
		return nil, errValidation("costPerUnit", "must not be negative")
	}
	expiry, err := model.ParseDate(req.ExpiryDate)
	if err != nil {
		return nil, errValidation("expiryDate", "must be a YYYY-MM-DD date")
	}
	category := req.Category
	if category == "" {
		category = model.CategoryOther
	}

	now := s.now()
	item := model.InventoryItem{
		ID:           uuid.New(),
		Name:         name,
		Category:     category,
		Unit:         req.Unit,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
		ReorderPoint: req.ReorderPoint,
		CostPerUnit:  req.CostPerUnit,
		ExpiryDate:   expiry,
		Supplier:     req.Supplier,
		Notes:        req.Notes,
		LastUpdated:  model.DateOf(now),
	}

	err = s.store.Update(ctx, func(snap *model.Snapshot) error {
		snap.InventoryItems = append(snap.InventoryItems, item)
		recordStock(snap, model.StockHistoryEntry{
			Date:          now,
			ItemID:        item.ID,
			Action:        model.StockActionAdd,
			PreviousStock: 0,
			NewStock:      item.CurrentStock,
			Notes:         "initial stock",
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *inventoryService) EditItem(ctx context.Context, id uuid.UUID, req dto.EditItemRequest) (*model.InventoryItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errValidation("name", "must not be empty")
	}
	if req.CurrentStock < 0 {
		return nil, errValidation("currentStock", "must not be negative")
	}
	if req.CostPerUnit.IsNegative() {
		return nil, errValidation("costPerUnit", "must not be negative")
	}
	expiry, err := model.ParseDate(req.ExpiryDate)
	if err != nil {
		return nil, errValidation("expiryDate", "must be a YYYY-MM-DD date")
	}

	now := s.now()
	var out model.InventoryItem
	err = s.store.Update(ctx, func(snap *model.Snapshot) error {
		item := snap.FindItem(id)
		if item == nil {
			return errNotFound("inventory item", id)
		}
		item.Name = name
		item.Category = req.Category
		item.Unit = req.Unit
		item.CurrentStock = req.CurrentStock
		item.MinStock = req.MinStock
		item.ReorderPoint = req.ReorderPoint
		item.CostPerUnit = req.CostPerUnit
		item.ExpiryDate = expiry
		item.Supplier = req.Supplier
		item.Notes = req.Notes
		item.LastUpdated = model.DateOf(now)

		// The form sends back the stock it was loaded with; a concurrent
		// mutation between load and save shows up in the audit trail.
		recordStock(snap, model.StockHistoryEntry{
			Date:          now,
			ItemID:        id,
			Action:        model.StockActionEdit,
			PreviousStock: req.PreviousStock,
			NewStock:      req.CurrentStock,
			Notes:         "item edited",
		})
		out = *item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return s.store.Update(ctx, func(snap *model.Snapshot) error {
		for i := range snap.InventoryItems {
			if snap.InventoryItems[i].ID == id {
				snap.InventoryItems = append(snap.InventoryItems[:i], snap.InventoryItems[i+1:]...)
				// History entries for the item stay; the trail outlives it.
				return nil
			}
		}
		return errNotFound("inventory item", id)
	})
}

func (s *inventoryService) Consume(ctx context.Context, id uuid.UUID, req dto.ConsumeRequest) (*model.InventoryItem, error) {
	if req.Amount <= 0 {
		return nil, errValidation("amount", "must be a positive number")
	}
	now := s.now()
	var out model.InventoryItem
	err := s.store.Update(ctx, func(snap *model.Snapshot) error {
		item := snap.FindItem(id)
		if item == nil {
			return errNotFound("inventory item", id)
		}
		if req.Amount > item.CurrentStock {
			return &InsufficientStockError{
				ItemID:    id,
				Requested: float64(req.Amount),
				Available: float64(item.CurrentStock),
			}
		}
		previous := item.CurrentStock
		item.CurrentStock -= req.Amount
		item.LastUpdated = model.DateOf(now)
		recordStock(snap, model.StockHistoryEntry{
			Date:          now,
			ItemID:        id,
			Action:        model.StockActionConsume,
			PreviousStock: previous,
			NewStock:      item.CurrentStock,
			Notes:         req.Notes,
		})
		out = *item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *inventoryService) Restock(ctx context.Context, id uuid.UUID, req dto.RestockRequest) (*model.InventoryItem, error) {
	if req.Amount <= 0 {
		return nil, errValidation("amount", "must be a positive number")
	}
	now := s.now()
	var out model.InventoryItem
	err := s.store.Update(ctx, func(snap *model.Snapshot) error {
		item := snap.FindItem(id)
		if item == nil {
			return errNotFound("inventory item", id)
		}
		previous := item.CurrentStock
		item.CurrentStock += req.Amount
		item.LastUpdated = model.DateOf(now)
		recordStock(snap, model.StockHistoryEntry{
			Date:          now,
			ItemID:        id,
			Action:        model.StockActionRestock,
			PreviousStock: previous,
			NewStock:      item.CurrentStock,
			Notes:         req.Notes,
		})
		out = *item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// recordStock prepends, keeping the history newest-first.
func recordStock(snap *model.Snapshot, entry model.StockHistoryEntry) {
	snap.StockHistory = append([]model.StockHistoryEntry{entry}, snap.StockHistory...)
}

// ─── Queries ─────────────────────────────────────────────────────────────────

func (s *inventoryService) List(_ context.Context, filter dto.ItemFilter) (*dto.ItemListResponse, error) {
	resp := &dto.ItemListResponse{Data: []dto.ItemResponse{}}
	err := s.store.View(func(snap *model.Snapshot) error {
		for _, item := range snap.InventoryItems {
			if !matchesFilter(item, filter.Filter) {
				continue
			}
			resp.Data = append(resp.Data, itemToResponse(item))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortItems(resp.Data, filter.SortBy)
	resp.Total = len(resp.Data)
	return resp, nil
}

func matchesFilter(item model.InventoryItem, filter string) bool {
	switch filter {
	case "", "all":
		return true
	case "low":
		return item.CurrentStock <= item.MinStock
	default:
		return item.Category == filter
	}
}

func sortItems(items []dto.ItemResponse, sortBy string) {
	switch sortBy {
	case "stock":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CurrentStock < items[j].CurrentStock
		})
	case "value":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Value.GreaterThan(items[j].Value)
		})
	case "category":
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Category != items[j].Category {
				return items[i].Category < items[j].Category
			}
			return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		})
	}
}

func itemToResponse(item model.InventoryItem) dto.ItemResponse {
	return dto.ItemResponse{
		InventoryItem:    item,
		Value:            itemValue(item),
		SuggestedRestock: item.MinStock * 2,
		Low:              item.CurrentStock <= item.MinStock,
	}
}

func itemValue(item model.InventoryItem) decimal.Decimal {
	return item.CostPerUnit.Mul(decimal.NewFromFloat(float64(item.CurrentStock)))
}

// Alerts recomputes threshold breaches from current stock on every call.
// Warning at or below min stock; danger once the shelf is empty or the
// reorder point is crossed.
func (s *inventoryService) Alerts(_ context.Context) ([]dto.AlertResponse, error) {
	alerts := []dto.AlertResponse{}
	err := s.store.View(func(snap *model.Snapshot) error {
		for _, item := range snap.InventoryItems {
			if item.CurrentStock > item.MinStock {
				continue
			}
			severity := dto.SeverityWarning
			if item.CurrentStock == 0 || item.CurrentStock < item.ReorderPoint {
				severity = dto.SeverityDanger
			}
			alerts = append(alerts, dto.AlertResponse{
				ItemID:   item.ID.String(),
				Severity: severity,
				Message:  alertMessage(item),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func alertMessage(item model.InventoryItem) string {
	if item.CurrentStock == 0 {
		return fmt.Sprintf("%s is out of stock", item.Name)
	}
	return fmt.Sprintf("%s is low: %s %s left (minimum %s)",
		item.Name,
		trimFloat(float64(item.CurrentStock)),
		item.Unit,
		trimFloat(float64(item.MinStock)))
}

func trimFloat(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}

func (s *inventoryService) TotalValue(_ context.Context) (*dto.InventoryValueResponse, error) {
	total := decimal.Zero
	err := s.store.View(func(snap *model.Snapshot) error {
		for _, item := range snap.InventoryItems {
			total = total.Add(itemValue(item))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.InventoryValueResponse{TotalValue: total}, nil
}

func (s *inventoryService) Stats(_ context.Context) (*dto.InventoryStatsResponse, error) {
	resp := &dto.InventoryStatsResponse{}
	err := s.store.View(func(snap *model.Snapshot) error {
		for _, item := range snap.InventoryItems {
			resp.TotalItems++
			if item.CurrentStock <= item.MinStock {
				resp.LowStockItems++
			}
			switch item.Category {
			case model.CategoryFeed:
				resp.FeedItems++
			case model.CategoryMedicine:
				resp.MedicineItems++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// History returns the audit trail, newest-first, optionally scoped to one
// item.
func (s *inventoryService) History(_ context.Context, itemID *uuid.UUID) (*dto.HistoryListResponse, error) {
	resp := &dto.HistoryListResponse{Data: []model.StockHistoryEntry{}}
	err := s.store.View(func(snap *model.Snapshot) error {
		for _, entry := range snap.StockHistory {
			if itemID != nil && entry.ItemID != *itemID {
				continue
			}
			resp.Data = append(resp.Data, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp.Total = len(resp.Data)
	return resp, nil
}
