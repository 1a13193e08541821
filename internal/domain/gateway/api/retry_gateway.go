package api

import (
	"context"
	"time"

	"dashboard-api/internal/domain/entity"
	"dashboard-api/pkg/log"
)

// AttemptFunc receives attempt telemetry before each fetch round: the 1-based
// attempt number and the configured maximum.
type AttemptFunc func(attempt, maxAttempts int)

// RetryingGateway wraps a WeatherGateway with exponential backoff. Each
// attempt is one full round through the inner gateway's endpoints; the delay
// before retry doubles per failed attempt starting from baseDelay.
type RetryingGateway struct {
	inner       WeatherGateway
	maxAttempts int
	baseDelay   time.Duration
	onAttempt   AttemptFunc

	// sleep is swappable so tests observe delays without waiting them out.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRetryingGateway wraps inner with up to maxAttempts rounds. onAttempt may
// be nil.
func NewRetryingGateway(inner WeatherGateway, maxAttempts int, baseDelay time.Duration, onAttempt AttemptFunc) *RetryingGateway {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RetryingGateway{
		inner:       inner,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		onAttempt:   onAttempt,
		sleep:       sleepContext,
	}
}

// Name implements WeatherGateway.
func (g *RetryingGateway) Name() string {
	return g.inner.Name()
}

// FetchWeather implements WeatherGateway. It returns the first successful
// result, a context error if the caller gave up mid-backoff, or a
// *RetriesExhaustedError wrapping the last failure once every attempt is
// spent.
func (g *RetryingGateway) FetchWeather(ctx context.Context) (*entity.WeatherData, error) {
	var lastErr error

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if g.onAttempt != nil {
			g.onAttempt(attempt, g.maxAttempts)
		}

		data, err := g.inner.FetchWeather(ctx)
		if err == nil {
			return data, nil
		}
		lastErr = err
		log.Warnf("Fetch attempt %d/%d failed for source %s: %v", attempt, g.maxAttempts, g.inner.Name(), err)

		if attempt == g.maxAttempts {
			break
		}

		delay := g.baseDelay << (attempt - 1)
		if sleepErr := g.sleep(ctx, delay); sleepErr != nil {
			return nil, sleepErr
		}
	}

	return nil, &RetriesExhaustedError{Attempts: g.maxAttempts, Last: lastErr}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
