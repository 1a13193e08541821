package db

import (
	"dashboard-api/internal/domain/entity"
	"dashboard-api/internal/domain/model"
)

// HistoryGateway persists and queries refresh attempt records.
type HistoryGateway interface {
	// Save stores the outcome of one refresh operation.
	Save(record entity.RefreshRecord) (*entity.RefreshRecord, error)

	// FindAll returns refresh records newest first, with their total count
	// for pagination.
	FindAll(page int, size int) ([]entity.RefreshRecord, int64, error)

	// Prune deletes records older than the retention window, keeping the
	// table bounded. It returns the number of rows removed.
	Prune(keepLast int) (int64, error)
}

// HealthDBGateway reports database connectivity for the health endpoint.
type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
