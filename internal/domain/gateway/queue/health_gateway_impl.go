package queue

import (
	"context"
	"strconv"
	"sync"
	"time"

	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"

	"dashboard-api/internal/domain/model"
	"dashboard-api/pkg/sqs"
)

const healthCheckTimeout = 5 * time.Second

// QueueHealthGateway reports reachability of the queues the application
// depends on by resolving their URLs.
type QueueHealthGateway struct {
	client sqs.SQSClient
	queues map[string]struct{}
	mutex  sync.RWMutex
}

func NewQueueHealthGateway(client sqs.SQSClient) *QueueHealthGateway {
	return &QueueHealthGateway{
		client: client,
		queues: make(map[string]struct{}),
	}
}

// RegisterQueue adds a queue to the health check set.
func (gateway *QueueHealthGateway) RegisterQueue(name string) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.queues[name] = struct{}{}
}

func (gateway *QueueHealthGateway) Health() model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	if len(gateway.queues) == 0 {
		return model.ComponentHealthStatus{
			Status: model.StatusUnknown,
			Details: map[string]string{
				"message":      "No queues registered",
				"queues_total": "0",
			},
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	overallStatus := model.StatusUp
	details := make(map[string]string)
	queuesUp := 0

	for name := range gateway.queues {
		queueName := name
		_, err := gateway.client.GetQueueUrl(ctx, &awssqs.GetQueueUrlInput{
			QueueName: &queueName,
		})
		if err != nil {
			overallStatus = model.StatusDown
			details[name+"_status"] = "DOWN"
			details[name+"_message"] = err.Error()
			continue
		}
		queuesUp++
		details[name+"_status"] = "UP"
	}

	details["queues_total"] = strconv.Itoa(len(gateway.queues))
	details["queues_up"] = strconv.Itoa(queuesUp)

	return model.ComponentHealthStatus{
		Status:  overallStatus,
		Details: details,
	}
}
