package model

import "github.com/google/uuid"

// Snapshot is the entire persisted state: every collection the engine works
// over, serialized as one structured document. Collection and field names are
// the stable wire contract shared with exported backups — a collection absent
// on load is an empty collection, never an error.
type Snapshot struct {
	Batches        []Batch             `json:"batches"`
	DailyLogs      []DailyLog          `json:"dailyLogs"`
	Sales          []Sale              `json:"sales"`
	Expenses       []Expense           `json:"expenses"`
	Vaccinations   []VaccinationEntry  `json:"vaccinations"`
	InventoryItems []InventoryItem     `json:"inventoryItems"`
	StockHistory   []StockHistoryEntry `json:"stockHistory"`
}

// NewSnapshot returns a snapshot with all collections present and empty.
func NewSnapshot() *Snapshot {
	s := &Snapshot{}
	s.Normalize()
	return s
}

// Normalize replaces nil collections with empty ones so that loaded partial
// backups behave like full snapshots.
func (s *Snapshot) Normalize() {
	if s.Batches == nil {
		s.Batches = []Batch{}
	}
	if s.DailyLogs == nil {
		s.DailyLogs = []DailyLog{}
	}
	if s.Sales == nil {
		s.Sales = []Sale{}
	}
	if s.Expenses == nil {
		s.Expenses = []Expense{}
	}
	if s.Vaccinations == nil {
		s.Vaccinations = []VaccinationEntry{}
	}
	if s.InventoryItems == nil {
		s.InventoryItems = []InventoryItem{}
	}
	if s.StockHistory == nil {
		s.StockHistory = []StockHistoryEntry{}
	}
}

// Clone deep-copies the snapshot. Mutations work on a clone so a failed
// operation leaves the committed state untouched.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Batches:        make([]Batch, len(s.Batches)),
		DailyLogs:      make([]DailyLog, len(s.DailyLogs)),
		Sales:          make([]Sale, len(s.Sales)),
		Expenses:       make([]Expense, len(s.Expenses)),
		Vaccinations:   make([]VaccinationEntry, len(s.Vaccinations)),
		InventoryItems: make([]InventoryItem, len(s.InventoryItems)),
		StockHistory:   make([]StockHistoryEntry, len(s.StockHistory)),
	}
	copy(c.Batches, s.Batches)
	copy(c.DailyLogs, s.DailyLogs)
	copy(c.Sales, s.Sales)
	copy(c.Expenses, s.Expenses)
	copy(c.Vaccinations, s.Vaccinations)
	copy(c.InventoryItems, s.InventoryItems)
	copy(c.StockHistory, s.StockHistory)
	for i := range s.Batches {
		if s.Batches[i].EndDate != nil {
			end := *s.Batches[i].EndDate
			c.Batches[i].EndDate = &end
		}
	}
	return c
}

// ─── Queries ─────────────────────────────────────────────────────────────────
// Collections are small (tens to low hundreds of records per cycle), so all
// queries are linear scans recomputed per call.

// ActiveBatch returns the currently active batch, or nil when no cycle runs.
func (s *Snapshot) ActiveBatch() *Batch {
	for i := range s.Batches {
		if s.Batches[i].Status == BatchActive {
			return &s.Batches[i]
		}
	}
	return nil
}

// FindBatch returns the batch with the given id, or nil.
func (s *Snapshot) FindBatch(id uuid.UUID) *Batch {
	for i := range s.Batches {
		if s.Batches[i].ID == id {
			return &s.Batches[i]
		}
	}
	return nil
}

// LogsFor returns the daily logs of a batch in insertion order.
func (s *Snapshot) LogsFor(batchID uuid.UUID) []DailyLog {
	var logs []DailyLog
	for _, l := range s.DailyLogs {
		if l.BatchID == batchID {
			logs = append(logs, l)
		}
	}
	return logs
}

// SalesFor returns the sales of a batch in insertion order.
func (s *Snapshot) SalesFor(batchID uuid.UUID) []Sale {
	var sales []Sale
	for _, sl := range s.Sales {
		if sl.BatchID == batchID {
			sales = append(sales, sl)
		}
	}
	return sales
}

// ExpensesFor returns the expenses of a batch in insertion order.
func (s *Snapshot) ExpensesFor(batchID uuid.UUID) []Expense {
	var expenses []Expense
	for _, e := range s.Expenses {
		if e.BatchID == batchID {
			expenses = append(expenses, e)
		}
	}
	return expenses
}

// VaccinationsFor returns the vaccination entries of a batch in insertion order.
func (s *Snapshot) VaccinationsFor(batchID uuid.UUID) []VaccinationEntry {
	var entries []VaccinationEntry
	for _, v := range s.Vaccinations {
		if v.BatchID == batchID {
			entries = append(entries, v)
		}
	}
	return entries
}

// FindItem returns the inventory item with the given id, or nil.
func (s *Snapshot) FindItem(id uuid.UUID) *InventoryItem {
	for i := range s.InventoryItems {
		if s.InventoryItems[i].ID == id {
			return &s.InventoryItems[i]
		}
	}
	return nil
}
