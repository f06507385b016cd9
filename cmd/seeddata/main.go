// cmd/seeddata writes a demo snapshot for local development.
// Usage: go run ./cmd/seeddata [-path data/snapshot.json]
package main

import (
	"context"
	"flag"
	"log"

	"github.com/shopspring/decimal"

	"github.com/merosman91/Boiler-Farm/internal/dto"
	"github.com/merosman91/Boiler-Farm/internal/model"
	"github.com/merosman91/Boiler-Farm/internal/service"
	"github.com/merosman91/Boiler-Farm/internal/store"
)

func main() {
	path := flag.String("path", "data/snapshot.json", "snapshot file to write")
	flag.Parse()

	ctx := context.Background()
	st, err := store.Open(ctx, store.NewFileBackend(*path))
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	batches := service.NewBatchService(st)
	logs := service.NewLogService(st)
	finance := service.NewFinanceService(st)
	inventory := service.NewInventoryService(st)

	start := model.Today().AddDays(-14)
	batch, err := batches.StartBatch(ctx, dto.StartBatchRequest{
		Name:         "Demo flock",
		StartDate:    start.String(),
		InitialCount: 1000,
		Breed:        "Ross 308",
	})
	if err != nil {
		log.Fatalf("seed batch: %v", err)
	}

	type day struct {
		offset int
		dead   model.Count
		feed   model.Quantity
		weight model.Quantity
	}
	for _, d := range []day{
		{1, 4, 25, 62},
		{4, 3, 60, 170},
		{7, 2, 110, 320},
		{10, 2, 160, 520},
		{14, 1, 230, 850},
	} {
		if _, err := logs.Record(ctx, dto.RecordLogRequest{
			BatchID:   batch.ID,
			Date:      start.AddDays(d.offset).String(),
			Dead:      d.dead,
			Feed:      d.feed,
			FeedType:  model.FeedTypes[0],
			AvgWeight: d.weight,
		}); err != nil {
			log.Fatalf("seed log: %v", err)
		}
	}

	if _, err := finance.RecordExpense(ctx, dto.RecordExpenseRequest{
		BatchID: batch.ID,
		Date:    start.String(),
		Item:    "Day-old chicks",
		Cost:    decimal.NewFromInt(650),
	}); err != nil {
		log.Fatalf("seed expense: %v", err)
	}

	items := []dto.AddItemRequest{
		{Name: "Starter feed 23%", Category: model.CategoryFeed, Unit: "kg", CurrentStock: 400, MinStock: 100, ReorderPoint: 50, CostPerUnit: decimal.NewFromFloat(0.55)},
		{Name: "Newcastle vaccine", Category: model.CategoryMedicine, Unit: "dose", CurrentStock: 1200, MinStock: 1000, ReorderPoint: 500, CostPerUnit: decimal.NewFromFloat(0.02)},
		{Name: "Wood shavings", Category: model.CategoryLitter, Unit: "bale", CurrentStock: 12, MinStock: 5, ReorderPoint: 2, CostPerUnit: decimal.NewFromFloat(4.5)},
	}
	for _, item := range items {
		if _, err := inventory.AddItem(ctx, item); err != nil {
			log.Fatalf("seed inventory: %v", err)
		}
	}

	log.Printf("demo snapshot written to %s", *path)
}
