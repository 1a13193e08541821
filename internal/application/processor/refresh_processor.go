package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"

	"dashboard-api/internal/domain/model"
	"dashboard-api/internal/domain/usecase/weather"
	"dashboard-api/pkg/log"
)

// RefreshProcessor consumes refresh commands from the queue and runs the
// refresh pipeline for each one.
type RefreshProcessor struct {
	weatherUseCase weather.UseCase
	refreshTimeout time.Duration
}

func NewRefreshProcessor(weatherUseCase weather.UseCase, refreshTimeout time.Duration) *RefreshProcessor {
	if refreshTimeout <= 0 {
		refreshTimeout = 2 * time.Minute
	}
	return &RefreshProcessor{
		weatherUseCase: weatherUseCase,
		refreshTimeout: refreshTimeout,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *RefreshProcessor) HandleMessage(msg *types.Message) error {
	if msg == nil || msg.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	var command model.RefreshCommand
	if err := json.Unmarshal([]byte(*msg.Body), &command); err != nil {
		return fmt.Errorf("failed to unmarshal refresh command: %w", err)
	}

	if command.RequestID == "" {
		command.RequestID = uuid.New().String()
	}

	log.Infof("Processing refresh command (request_id: %s, reason: %s)", command.RequestID, command.Reason)

	ctx, cancel := context.WithTimeout(context.Background(), p.refreshTimeout)
	defer cancel()

	if err := p.weatherUseCase.Refresh(ctx, command.RequestID); err != nil {
		return fmt.Errorf("refresh command failed (request_id: %s): %w", command.RequestID, err)
	}

	log.Infof("Refresh command completed (request_id: %s)", command.RequestID)
	return nil
}
