package dto

// StartBatchRequest opens a new production cycle. Any currently active cycle
// is closed as a side effect.
type StartBatchRequest struct {
	Name         string `json:"name"         validate:"required"`
	StartDate    string `json:"startDate"    validate:"omitempty"` // YYYY-MM-DD; empty = today
	InitialCount int    `json:"initialCount" validate:"required,min=1"`
	Breed        string `json:"breed"`
}

type BatchResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	StartDate    string  `json:"startDate"`
	InitialCount int     `json:"initialCount"`
	Breed        string  `json:"breed"`
	Status       string  `json:"status"`
	EndDate      *string `json:"endDate,omitempty"`
}

type BatchListResponse struct {
	Data  []BatchResponse `json:"data"`
	Total int             `json:"total"`
}
