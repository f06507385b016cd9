package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/merosman91/Boiler-Farm/internal/dto"
	"github.com/merosman91/Boiler-Farm/internal/model"
	"github.com/merosman91/Boiler-Farm/internal/store"
)

// FinanceService records the money side of a cycle: sales out of the flock
// and operating expenses. Transactions are append-only and attributed to
// exactly one batch.
type FinanceService interface {
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*model.Sale, error)
	RecordExpense(ctx context.Context, req dto.RecordExpenseRequest) (*model.Expense, error)
	ListSales(ctx context.Context, batchID uuid.UUID) (*dto.SaleListResponse, error)
	ListExpenses(ctx context.Context, batchID uuid.UUID) (*dto.ExpenseListResponse, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context, batchID uuid.UUID) (*dto.FinancialSummaryResponse, error)
}

type financeService struct {
	store *store.Store
	now   func() time.Time
}

func NewFinanceService(st *store.Store) FinanceService {
	return &financeService{store: st, now: time.Now}
}

func (s *financeService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*model.Sale, error) {
	batchID, err := uuid.Parse(req.BatchID)
	if err != nil {
		return nil, errValidation("batchId", "must be a valid id")
	}
	if req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, errValidation("price", "must be a positive number")
	}
	if req.Weight <= 0 && req.Count <= 0 {
		return nil, errValidation("weight", "either weight or count is required")
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return nil, errValidation("date", "must be a YYYY-MM-DD date")
	}
	if date.IsZero() {
		date = model.DateOf(s.now())
	}

	// Sold by live weight when weighed, by head count otherwise.
	qty := float64(req.Weight)
	if qty <= 0 {
		qty = float64(req.Count)
	}

	sale := model.Sale{
		ID:      uuid.New(),
		BatchID: batchID,
		Date:    date,
		Buyer:   strings.TrimSpace(req.Buyer),
		Count:   req.Count,
		Weight:  req.Weight,
		Price:   req.Price,
		Total:   req.Price.Mul(decimal.NewFromFloat(qty)),
	}

	err = s.store.Update(ctx, func(snap *model.Snapshot) error {
		if snap.FindBatch(batchID) == nil {
			return errNotFound("batch", batchID)
		}
		snap.Sales = append(snap.Sales, sale)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (s *financeService) RecordExpense(ctx context.Context, req dto.RecordExpenseRequest) (*model.Expense, error) {
	batchID, err := uuid.Parse(req.BatchID)
	if err != nil {
		return nil, errValidation("batchId", "must be a valid id")
	}
	if strings.TrimSpace(req.Item) == "" {
		return nil, errValidation("item", "must not be empty")
	}
	if req.Cost.LessThanOrEqual(decimal.Zero) {
		return nil, errValidation("cost", "must be a positive number")
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return nil, errValidation("date", "must be a YYYY-MM-DD date")
	}
	if date.IsZero() {
		date = model.DateOf(s.now())
	}

	expense := model.Expense{
		ID:      uuid.New(),
		BatchID: batchID,
		Date:    date,
		Item:    strings.TrimSpace(req.Item),
		Cost:    req.Cost,
	}

	err = s.store.Update(ctx, func(snap *model.Snapshot) error {
		if snap.FindBatch(batchID) == nil {
			return errNotFound("batch", batchID)
		}
		snap.Expenses = append(snap.Expenses, expense)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *financeService) ListSales(_ context.Context, batchID uuid.UUID) (*dto.SaleListResponse, error) {
	resp := &dto.SaleListResponse{Data: []model.Sale{}}
	err := s.store.View(func(snap *model.Snapshot) error {
		resp.Data = append(resp.Data, snap.SalesFor(batchID)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp.Total = len(resp.Data)
	return resp, nil
}

func (s *financeService) ListExpenses(_ context.Context, batchID uuid.UUID) (*dto.ExpenseListResponse, error) {
	resp := &dto.ExpenseListResponse{Data: []model.Expense{}}
	err := s.store.View(func(snap *model.Snapshot) error {
		resp.Data = append(resp.Data, snap.ExpensesFor(batchID)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp.Total = len(resp.Data)
	return resp, nil
}

func (s *financeService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return s.store.Update(ctx, func(snap *model.Snapshot) error {
		for i := range snap.Expenses {
			if snap.Expenses[i].ID == id {
				snap.Expenses = append(snap.Expenses[:i], snap.Expenses[i+1:]...)
				return nil
			}
		}
		return errNotFound("expense", id)
	})
}

func (s *financeService) Summary(_ context.Context, batchID uuid.UUID) (*dto.FinancialSummaryResponse, error) {
	var resp *dto.FinancialSummaryResponse
	err := s.store.View(func(snap *model.Snapshot) error {
		if snap.FindBatch(batchID) == nil {
			return errNotFound("batch", batchID)
		}
		resp = financialSummary(snap, batchID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// financialSummary sums a batch's sales and expenses. Shared with the
// metrics engine; missing amounts count as zero.
func financialSummary(snap *model.Snapshot, batchID uuid.UUID) *dto.FinancialSummaryResponse {
	sales := decimal.Zero
	for _, sl := range snap.SalesFor(batchID) {
		sales = sales.Add(sl.Total)
	}
	expenses := decimal.Zero
	for _, e := range snap.ExpensesFor(batchID) {
		expenses = expenses.Add(e.Cost)
	}
	return &dto.FinancialSummaryResponse{
		Sales:    sales,
		Expenses: expenses,
		Profit:   sales.Sub(expenses),
	}
}
