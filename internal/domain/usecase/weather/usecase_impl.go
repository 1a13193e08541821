package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dashboard-api/internal/domain/entity"
	"dashboard-api/internal/domain/gateway/api"
	"dashboard-api/internal/domain/gateway/cache"
	"dashboard-api/internal/domain/gateway/db"
	"dashboard-api/internal/domain/gateway/queue"
	"dashboard-api/internal/domain/model"
	"dashboard-api/pkg/log"
)

// Config tunes the refresh pipeline.
type Config struct {
	// MaxAttempts is the number of fetch rounds per refresh.
	MaxAttempts int
	// BaseDelay seeds the exponential backoff between rounds.
	BaseDelay time.Duration
	// CommandQueue carries refresh commands; empty keeps triggers in-process.
	CommandQueue string
	// WarningQueue receives severe-warning notifications; empty disables them.
	WarningQueue string
	// HistoryKeep bounds the refresh history table; 0 disables pruning.
	HistoryKeep int
}

type weatherUseCase struct {
	gateway         api.WeatherGateway
	store           *Store
	config          Config
	snapshotGateway cache.SnapshotGateway
	historyGateway  db.HistoryGateway
	queueSender     queue.Sender
}

// NewWeatherUseCase wires the refresh pipeline. snapshotGateway,
// historyGateway and queueSender may be nil; the matching side effects are
// skipped.
func NewWeatherUseCase(gateway api.WeatherGateway, store *Store, config Config,
	snapshotGateway cache.SnapshotGateway, historyGateway db.HistoryGateway, queueSender queue.Sender) UseCase {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 3
	}
	if config.BaseDelay <= 0 {
		config.BaseDelay = 2 * time.Second
	}
	return &weatherUseCase{
		gateway:         gateway,
		store:           store,
		config:          config,
		snapshotGateway: snapshotGateway,
		historyGateway:  historyGateway,
		queueSender:     queueSender,
	}
}

func (uc *weatherUseCase) GetSnapshot() model.WeatherSnapshot {
	return uc.store.Snapshot()
}

func (uc *weatherUseCase) GetStatus() model.WeatherStatus {
	return uc.store.Snapshot().Status
}

func (uc *weatherUseCase) GetForecastForDay(day string) (*entity.DailyForecast, error) {
	snapshot := uc.store.Snapshot()
	if snapshot.Data == nil {
		return nil, ErrNoData
	}

	forecast := snapshot.Data.ForecastForDay(day)
	if forecast == nil {
		return nil, ErrDayNotFound
	}
	return forecast, nil
}

// Refresh runs one full fetch operation: attempt rounds with backoff through
// the retrying decorator, then a generation-checked commit. A superseded
// commit is discarded without touching the store.
func (uc *weatherUseCase) Refresh(ctx context.Context, requestID string) error {
	generation := uc.store.BeginRefresh(uc.gateway.Name())
	start := time.Now()
	attempts := 0

	retrying := api.NewRetryingGateway(uc.gateway, uc.config.MaxAttempts, uc.config.BaseDelay,
		func(attempt, maxAttempts int) {
			attempts = attempt
			uc.store.SetAttempt(generation, attempt)
		})

	data, err := retrying.FetchWeather(ctx)
	duration := time.Since(start)

	if err != nil {
		uc.store.CommitFailure(generation, err)
		uc.recordHistory(requestID, attempts, duration, err)
		log.Error("Weather refresh failed",
			zap.String("request_id", requestID),
			zap.String("source", uc.gateway.Name()),
			zap.Int("attempts", attempts),
			zap.Error(err))
		return err
	}

	committed := uc.store.CommitSuccess(generation, data)
	uc.recordHistory(requestID, attempts, duration, nil)

	if !committed {
		log.Warnf("Discarding superseded refresh result (request_id: %s)", requestID)
		return nil
	}

	log.Info("Weather refresh committed",
		zap.String("request_id", requestID),
		zap.String("source", uc.gateway.Name()),
		zap.String("location", data.Location),
		zap.Int("attempts", attempts),
		zap.Duration("duration", duration))

	uc.notifySevereWarnings(requestID, data)
	return nil
}

func (uc *weatherUseCase) TriggerRefresh(requestID string, reason string) error {
	if uc.queueSender != nil && uc.config.CommandQueue != "" {
		command := model.RefreshCommand{RequestID: requestID, Reason: reason}
		err := uc.queueSender.SendMessage(uc.config.CommandQueue, command)
		if err == nil {
			return nil
		}
		log.Warnf("Failed to enqueue refresh command, falling back to in-process refresh: %v", err)
	}

	go func() {
		if err := uc.Refresh(context.Background(), requestID); err != nil {
			log.Warnf("Triggered refresh failed (request_id: %s): %v", requestID, err)
		}
	}()
	return nil
}

func (uc *weatherUseCase) GetHistory(page int, size int) (*model.Page[entity.RefreshRecord], error) {
	if uc.historyGateway == nil {
		return model.NewPage([]entity.RefreshRecord{}, page, size, 0), nil
	}

	records, total, err := uc.historyGateway.FindAll(page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to load refresh history: %w", err)
	}
	return model.NewPage(records, page, size, total), nil
}

func (uc *weatherUseCase) SeedFromCache(ctx context.Context) {
	if uc.snapshotGateway == nil {
		return
	}

	data, err := uc.snapshotGateway.LoadSnapshot(ctx)
	if err != nil {
		log.Warnf("Failed to load cached weather snapshot: %v", err)
		return
	}
	if uc.store.Seed(data, "cache") {
		log.Infof("Pre-seeded weather store from cache (location: %s)", data.Location)
	}
}

// WatchSnapshots persists every committed snapshot so a restart can pre-seed
// the store. Persistence failures are logged and ignored.
func (uc *weatherUseCase) WatchSnapshots(ctx context.Context) {
	if uc.snapshotGateway == nil {
		return
	}

	id, changes := uc.store.Subscribe()
	defer uc.store.Unsubscribe(id)

	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-changes:
			if !ok {
				return
			}
			if snapshot.Data == nil || snapshot.Status.Loading {
				continue
			}
			if err := uc.snapshotGateway.SaveSnapshot(ctx, snapshot.Data); err != nil {
				log.Warnf("Failed to cache weather snapshot: %v", err)
			}
		}
	}
}

func (uc *weatherUseCase) recordHistory(requestID string, attempts int, duration time.Duration, refreshErr error) {
	if uc.historyGateway == nil {
		return
	}

	record := entity.RefreshRecord{
		ID:         requestID,
		Source:     uc.gateway.Name(),
		Success:    refreshErr == nil,
		Attempts:   attempts,
		DurationMs: duration.Milliseconds(),
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if refreshErr != nil {
		record.Error = refreshErr.Error()
	}

	if _, err := uc.historyGateway.Save(record); err != nil {
		log.Warnf("Failed to record refresh outcome (request_id: %s): %v", requestID, err)
		return
	}

	if uc.config.HistoryKeep > 0 {
		if _, err := uc.historyGateway.Prune(uc.config.HistoryKeep); err != nil {
			log.Warnf("Failed to prune refresh history: %v", err)
		}
	}
}

func (uc *weatherUseCase) notifySevereWarnings(requestID string, data *entity.WeatherData) {
	if uc.queueSender == nil || uc.config.WarningQueue == "" || !data.HasSevereWarnings() {
		return
	}

	notification := model.WarningNotification{
		RequestID: requestID,
		Location:  data.Location,
		Warnings:  data.Warnings,
	}
	if err := uc.queueSender.SendMessage(uc.config.WarningQueue, notification); err != nil {
		log.Warnf("Failed to publish severe warning notification: %v", err)
		return
	}
	log.Infof("Published severe warning notification for %s (%d warnings)", data.Location, len(data.Warnings))
}
