package health

import "dashboard-api/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
