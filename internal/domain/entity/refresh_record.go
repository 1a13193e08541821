package entity

import "time"

// RefreshRecord is one row of the refresh history, persisted so operators can
// see how flaky the upstream feeds have been.
type RefreshRecord struct {
	// ID is the refresh request id, so a history row can be correlated with
	// the request logs.
	ID         string    `json:"id" gorm:"primaryKey"`
	Source     string    `json:"source"`
	Success    bool      `json:"success"`
	Attempts   int       `json:"attempts"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdDate"`
}
