package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/merosman91/Boiler-Farm/internal/dto"
	"github.com/merosman91/Boiler-Farm/internal/model"
	"github.com/merosman91/Boiler-Farm/internal/store"
)

// BatchService owns the cycle lifecycle. It is the only writer of batch
// status and end dates, which keeps the single-active-cycle invariant in one
// place. There is no direct close operation — a cycle closes only when
// another one starts or is activated.
type BatchService interface {
	StartBatch(ctx context.Context, req dto.StartBatchRequest) (*dto.BatchResponse, error)
	ActivateBatch(ctx context.Context, id uuid.UUID) (*dto.BatchResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.BatchResponse, error)
	List(ctx context.Context) (*dto.BatchListResponse, error)
}

type batchService struct {
	store *store.Store
	now   func() time.Time
}

func NewBatchService(st *store.Store) BatchService {
	return &batchService{store: st, now: time.Now}
}

// ── StartBatch ───────────────────────────────────────────────────────────────
// Atomically: close any active cycle (stamping its end date), insert the new
// active batch, and merge the generated vaccination schedule.

func (s *batchService) StartBatch(ctx context.Context, req dto.StartBatchRequest) (*dto.BatchResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errValidation("name", "must not be empty")
	}
	if req.InitialCount <= 0 {
		return nil, errValidation("initialCount", "must be a positive number")
	}
	startDate, err := model.ParseDate(req.StartDate)
	if err != nil {
		return nil, errValidation("startDate", "must be a YYYY-MM-DD date")
	}
	if startDate.IsZero() {
		startDate = model.DateOf(s.now())
	}

	batch := model.Batch{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		StartDate:    startDate,
		InitialCount: model.Count(req.InitialCount),
		Breed:        strings.TrimSpace(req.Breed),
		Status:       model.BatchActive,
	}

	err = s.store.Update(ctx, func(snap *model.Snapshot) error {
		now := s.now()
		for i := range snap.Batches {
			if snap.Batches[i].Status == model.BatchActive {
				snap.Batches[i].Status = model.BatchClosed
				end := now
				snap.Batches[i].EndDate = &end
			}
		}
		snap.Batches = append(snap.Batches, batch)
		snap.Vaccinations = append(snap.Vaccinations, GenerateSchedule(batch.ID, batch.StartDate)...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return batchToResponse(&batch), nil
}

// ── ActivateBatch ────────────────────────────────────────────────────────────
// Reactivates a closed cycle. Every other batch ends up closed; only the one
// that was previously active gets a fresh end date, the rest keep theirs.

func (s *batchService) ActivateBatch(ctx context.Context, id uuid.UUID) (*dto.BatchResponse, error) {
	var activated model.Batch
	err := s.store.Update(ctx, func(snap *model.Snapshot) error {
		if snap.FindBatch(id) == nil {
			return errNotFound("batch", id)
		}
		now := s.now()
		for i := range snap.Batches {
			b := &snap.Batches[i]
			switch {
			case b.ID == id:
				b.Status = model.BatchActive
				b.EndDate = nil
				activated = *b
			case b.Status == model.BatchActive:
				b.Status = model.BatchClosed
				end := now
				b.EndDate = &end
			default:
				b.Status = model.BatchClosed
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return batchToResponse(&activated), nil
}

func (s *batchService) Get(_ context.Context, id uuid.UUID) (*dto.BatchResponse, error) {
	var resp *dto.BatchResponse
	err := s.store.View(func(snap *model.Snapshot) error {
		b := snap.FindBatch(id)
		if b == nil {
			return errNotFound("batch", id)
		}
		resp = batchToResponse(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *batchService) List(_ context.Context) (*dto.BatchListResponse, error) {
	resp := &dto.BatchListResponse{Data: []dto.BatchResponse{}}
	err := s.store.View(func(snap *model.Snapshot) error {
		for i := range snap.Batches {
			resp.Data = append(resp.Data, *batchToResponse(&snap.Batches[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp.Total = len(resp.Data)
	return resp, nil
}

func batchToResponse(b *model.Batch) *dto.BatchResponse {
	resp := &dto.BatchResponse{
		ID:           b.ID.String(),
		Name:         b.Name,
		StartDate:    b.StartDate.String(),
		InitialCount: int(b.InitialCount),
		Breed:        b.Breed,
		Status:       b.Status,
	}
	if b.EndDate != nil {
		end := b.EndDate.UTC().Format(time.RFC3339)
		resp.EndDate = &end
	}
	return resp
}
