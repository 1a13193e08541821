package http

import (
	"context"
	"time"
)

// BackoffConfig controls retry behavior for a request. A nil config means a
// single attempt with no retries.
type BackoffConfig struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the growth of the delay between retries.
	MaxDelay time.Duration
	// Multiplier scales the delay after each retry. Values below 1 are treated as 2.
	Multiplier float64
	// Logger receives retry notifications. Optional.
	Logger HTTPLogger
}

// DefaultBackoffConfig returns a backoff configuration with 3 retries,
// starting at 2 seconds and doubling up to 30 seconds.
func DefaultBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:   3,
		InitialDelay: 2 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
}

// retryable reports whether a failed request should be retried. Client errors
// other than 408 and 429 are permanent.
func retryable(status int, err error) bool {
	if err != nil && status == 0 {
		return true
	}
	if status >= 400 && status < 500 && status != 408 && status != 429 {
		return false
	}
	return status >= 400 || err != nil
}

// doRequestWithBackoff executes the request, retrying transient failures
// according to the backoff configuration.
func (hc *Client) doRequestWithBackoff(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil {
		return hc.doRequest(ctx, method, path, queryParams, headers, successResp, errorResp)
	}

	multiplier := backoff.Multiplier
	if multiplier < 1 {
		multiplier = 2.0
	}
	delay := backoff.InitialDelay

	var success, errResp any
	var status int
	var err error

	for attempt := 0; ; attempt++ {
		success, errResp, status, err = hc.doRequest(ctx, method, path, queryParams, headers, successResp, errorResp)
		if err == nil {
			return success, errResp, status, nil
		}

		if attempt >= backoff.MaxRetries || !retryable(status, err) {
			return success, errResp, status, err
		}

		if backoff.Logger != nil {
			backoff.Logger.LogRequestRetry(method, hc.buildURL(path), headers, status, err, attempt+1, backoff.MaxRetries)
		}

		select {
		case <-ctx.Done():
			return success, errResp, status, ctx.Err()
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * multiplier)
		if backoff.MaxDelay > 0 && delay > backoff.MaxDelay {
			delay = backoff.MaxDelay
		}
	}
}
