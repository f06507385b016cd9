package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/merosman91/Boiler-Farm/internal/dto"
	"github.com/merosman91/Boiler-Farm/internal/model"
	"github.com/merosman91/Boiler-Farm/internal/store"
)

// LogService appends and lists the daily field observations. Logs are
// append-only per batch; nothing stops two logs from sharing a date.
type LogService interface {
	Record(ctx context.Context, req dto.RecordLogRequest) (*dto.LogResponse, error)
	List(ctx context.Context, batchID uuid.UUID) (*dto.LogListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type logService struct {
	store *store.Store
	now   func() time.Time
}

func NewLogService(st *store.Store) LogService {
	return &logService{store: st, now: time.Now}
}

func (s *logService) Record(ctx context.Context, req dto.RecordLogRequest) (*dto.LogResponse, error) {
	batchID, err := uuid.Parse(req.BatchID)
	if err != nil {
		return nil, errValidation("batchId", "must be a valid id")
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return nil, errValidation("date", "must be a YYYY-MM-DD date")
	}
	if date.IsZero() {
		date = model.DateOf(s.now())
	}
	if req.Dead < 0 {
		return nil, errValidation("dead", "must not be negative")
	}
	if req.Feed < 0 || req.AvgWeight < 0 {
		return nil, errValidation("feed", "quantities must not be negative")
	}

	entry := model.DailyLog{
		ID:        uuid.New(),
		BatchID:   batchID,
		Date:      date,
		Dead:      req.Dead,
		DeadCause: req.DeadCause,
		Feed:      req.Feed,
		FeedType:  req.FeedType,
		AvgWeight: req.AvgWeight,
		Temp:      req.Temp,
		Notes:     req.Notes,
	}

	var start model.Date
	err = s.store.Update(ctx, func(snap *model.Snapshot) error {
		b := snap.FindBatch(batchID)
		if b == nil {
			return errNotFound("batch", batchID)
		}
		start = b.StartDate
		snap.DailyLogs = append(snap.DailyLogs, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.LogResponse{DailyLog: entry, AgeDays: ageOnDate(start, entry.Date)}, nil
}

// List returns a batch's logs newest-first; logs sharing a date keep their
// insertion order.
func (s *logService) List(_ context.Context, batchID uuid.UUID) (*dto.LogListResponse, error) {
	resp := &dto.LogListResponse{Data: []dto.LogResponse{}}
	err := s.store.View(func(snap *model.Snapshot) error {
		b := snap.FindBatch(batchID)
		if b == nil {
			return errNotFound("batch", batchID)
		}
		logs := snap.LogsFor(batchID)
		sort.SliceStable(logs, func(i, j int) bool {
			return logs[j].Date.Before(logs[i].Date.Time)
		})
		for _, l := range logs {
			resp.Data = append(resp.Data, dto.LogResponse{DailyLog: l, AgeDays: ageOnDate(b.StartDate, l.Date)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp.Total = len(resp.Data)
	return resp, nil
}

func (s *logService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Update(ctx, func(snap *model.Snapshot) error {
		for i := range snap.DailyLogs {
			if snap.DailyLogs[i].ID == id {
				snap.DailyLogs = append(snap.DailyLogs[:i], snap.DailyLogs[i+1:]...)
				return nil
			}
		}
		return errNotFound("daily log", id)
	})
}

// ageOnDate is the bird age on a given date, day 1 being the placement day.
func ageOnDate(start, on model.Date) int {
	age := on.DaysSince(start) + 1
	if age < 1 {
		age = 1
	}
	return age
}
