package dto

import "github.com/merosman91/Boiler-Farm/internal/model"

// WeightPoint is one sample of the weight curve: bird age on the log date and
// the recorded average weight.
type WeightPoint struct {
	Day     int     `json:"day"`
	WeightG float64 `json:"weightG"`
}

// BatchSummaryResponse carries every derived flock metric for one batch,
// recomputed from scratch on each request.
type BatchSummaryResponse struct {
	BatchID      string `json:"batchId"`
	Name         string `json:"name"`
	Breed        string `json:"breed,omitempty"`
	Status       string `json:"status"`
	StartDate    string `json:"startDate"`
	AgeDays      int    `json:"ageDays"`
	InitialCount int    `json:"initialCount"`

	TotalDead     int     `json:"totalDead"`
	CurrentCount  int     `json:"currentCount"` // negative when mortality is over-recorded
	MortalityRate float64 `json:"mortalityRate"`
	Livability    float64 `json:"livability"`

	CurrentWeightG float64 `json:"currentWeightG"`
	TotalFeedKg    float64 `json:"totalFeedKg"`
	BiomassKg      float64 `json:"biomassKg"`
	FCR            float64 `json:"fcr"`
	EPEF           float64 `json:"epef"`
	EPEFClass      string  `json:"epefClass"` // "good" at 300 and above

	WeightCurve     []WeightPoint            `json:"weightCurve"`
	Finance         FinancialSummaryResponse `json:"finance"`
	DueVaccinations []model.VaccinationEntry `json:"dueVaccinations"`
}
