package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"dashboard-api/internal/domain/usecase/weather"
	"dashboard-api/pkg/log"
)

// RefreshScheduler triggers periodic weather refreshes.
type RefreshScheduler struct {
	cron           *cron.Cron
	useCase        weather.UseCase
	cronExpression string
	refreshTimeout time.Duration
}

// NewRefreshScheduler creates the scheduler. cronExpression follows the
// robfig/cron grammar, including "@every 10m" descriptors.
func NewRefreshScheduler(useCase weather.UseCase, cronExpression string, refreshTimeout time.Duration) *RefreshScheduler {
	if refreshTimeout <= 0 {
		refreshTimeout = 2 * time.Minute
	}
	return &RefreshScheduler{
		cron:           cron.New(),
		useCase:        useCase,
		cronExpression: cronExpression,
		refreshTimeout: refreshTimeout,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *RefreshScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledRefresh); err != nil {
		return err
	}

	s.cron.Start()
	log.Infof("Weather refresh scheduler started with cron expression: %s", s.cronExpression)
	return nil
}

// ExecuteScheduledRefresh runs one refresh tagged with a fresh request id.
func (s *RefreshScheduler) ExecuteScheduledRefresh() {
	requestID := uuid.New().String()

	log.Info("Scheduled weather refresh triggered", zap.String("request_id", requestID))

	ctx, cancel := context.WithTimeout(context.Background(), s.refreshTimeout)
	defer cancel()

	if err := s.useCase.Refresh(ctx, requestID); err != nil {
		log.Error("Scheduled weather refresh failed", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info("Scheduled weather refresh completed", zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *RefreshScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
