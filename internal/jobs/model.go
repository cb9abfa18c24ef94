package jobs

import (
	"encoding/json"
	"time"
)

// Job is a posted job listing.
type Job struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Company     string          `json:"company"`
	Type        string          `json:"type"`
	Location    string          `json:"location"`
	Description json.RawMessage `json:"description"`
	Salary      int64           `json:"salary"`
	CreatedAt   time.Time       `json:"createdAt"`
}
