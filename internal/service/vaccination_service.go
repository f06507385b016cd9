package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/merosman91/Boiler-Farm/internal/dto"
	"github.com/merosman91/Boiler-Farm/internal/model"
	"github.com/merosman91/Boiler-Farm/internal/store"
)

// VaccinationService manages a batch's vaccination plan. The protocol
// entries are generated when the batch starts; manual entries and status
// flips come through here.
type VaccinationService interface {
	Add(ctx context.Context, req dto.AddVaccinationRequest) (*model.VaccinationEntry, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*model.VaccinationEntry, error)
	List(ctx context.Context, batchID uuid.UUID) (*dto.VaccinationListResponse, error)
	Due(ctx context.Context, batchID uuid.UUID) ([]model.VaccinationEntry, error)
}

type vaccinationService struct {
	store *store.Store
	now   func() time.Time
}

func NewVaccinationService(st *store.Store) VaccinationService {
	return &vaccinationService{store: st, now: time.Now}
}

func (s *vaccinationService) Add(ctx context.Context, req dto.AddVaccinationRequest) (*model.VaccinationEntry, error) {
	batchID, err := uuid.Parse(req.BatchID)
	if err != nil {
		return nil, errValidation("batchId", "must be a valid id")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, errValidation("name", "must not be empty")
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return nil, errValidation("date", "must be a YYYY-MM-DD date")
	}
	if date.IsZero() {
		date = model.DateOf(s.now())
	}
	method := req.Method
	if method == "" {
		method = model.MethodDrinkingWater
	}

	entry := model.VaccinationEntry{
		ID:      uuid.New(),
		BatchID: batchID,
		Name:    strings.TrimSpace(req.Name),
		Method:  method,
		Date:    date,
		Status:  model.VaccinationPending,
		Notes:   req.Notes,
	}

	err = s.store.Update(ctx, func(snap *model.Snapshot) error {
		batch := snap.FindBatch(batchID)
		if batch == nil {
			return errNotFound("batch", batchID)
		}
		entry.DayAge = req.DayAge
		if entry.DayAge <= 0 {
			entry.DayAge = ageOnDate(batch.StartDate, date)
		}
		snap.Vaccinations = append(snap.Vaccinations, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *vaccinationService) SetStatus(ctx context.Context, id uuid.UUID, status string) (*model.VaccinationEntry, error) {
	if status != model.VaccinationPending && status != model.VaccinationDone {
		return nil, errValidation("status", "must be pending or done")
	}
	var out model.VaccinationEntry
	err := s.store.Update(ctx, func(snap *model.Snapshot) error {
		for i := range snap.Vaccinations {
			if snap.Vaccinations[i].ID == id {
				snap.Vaccinations[i].Status = status
				out = snap.Vaccinations[i]
				return nil
			}
		}
		return errNotFound("vaccination", id)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *vaccinationService) List(_ context.Context, batchID uuid.UUID) (*dto.VaccinationListResponse, error) {
	resp := &dto.VaccinationListResponse{Data: []model.VaccinationEntry{}}
	err := s.store.View(func(snap *model.Snapshot) error {
		resp.Data = append(resp.Data, snap.VaccinationsFor(batchID)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(resp.Data, func(i, j int) bool {
		return resp.Data[i].Date.Before(resp.Data[j].Date.Time)
	})
	resp.Total = len(resp.Data)
	return resp, nil
}

// Due returns the pending entries whose scheduled date has arrived,
// earliest first.
func (s *vaccinationService) Due(_ context.Context, batchID uuid.UUID) ([]model.VaccinationEntry, error) {
	today := model.DateOf(s.now())
	var due []model.VaccinationEntry
	err := s.store.View(func(snap *model.Snapshot) error {
		due = dueVaccinations(snap, batchID, today)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return due, nil
}

func dueVaccinations(snap *model.Snapshot, batchID uuid.UUID, today model.Date) []model.VaccinationEntry {
	due := []model.VaccinationEntry{}
	for _, v := range snap.VaccinationsFor(batchID) {
		if v.Status == model.VaccinationPending && !v.Date.After(today.Time) {
			due = append(due, v)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Date.Before(due[j].Date.Time)
	})
	return due
}
