package queue

import (
	"dashboard-api/internal/domain/model"
)

// HealthGateway reports queue connectivity for the health endpoint.
type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterQueue(name string)
}
