package health

import (
	"dashboard-api/internal/domain/gateway/cache"
	"dashboard-api/internal/domain/gateway/db"
	"dashboard-api/internal/domain/gateway/queue"
	"dashboard-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.HealthCacheGateway
	queueGateway queue.HealthGateway
}

// NewHealthUseCase builds the health aggregator. Gateways for disabled
// components may be nil; they report UNKNOWN without degrading the overall
// status.
func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.HealthCacheGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
		queueGateway: queueGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := componentHealth(useCase.dbGateway != nil, func() model.ComponentHealthStatus {
		return useCase.dbGateway.Health()
	})
	cacheHealth := componentHealth(useCase.cacheGateway != nil, func() model.ComponentHealthStatus {
		return useCase.cacheGateway.Health()
	})
	queueHealth := componentHealth(useCase.queueGateway != nil, func() model.ComponentHealthStatus {
		return useCase.queueGateway.Health()
	})

	overallStatus := model.StatusUp
	for _, component := range []model.ComponentHealthStatus{dbHealth, cacheHealth, queueHealth} {
		if component.Status == model.StatusDown {
			overallStatus = model.StatusDown
			break
		}
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Cache:    cacheHealth,
		Queue:    queueHealth,
	}
}

func componentHealth(enabled bool, check func() model.ComponentHealthStatus) model.ComponentHealthStatus {
	if !enabled {
		return model.ComponentHealthStatus{
			Status: model.StatusUnknown,
			Details: map[string]string{
				"message": "component disabled",
			},
		}
	}
	return check()
}
