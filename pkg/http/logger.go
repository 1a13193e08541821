package http

import "dashboard-api/pkg/log"

// HTTPLogger receives notifications about request retries.
type HTTPLogger interface {
	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made.
	LogRequestRetry(method, url string, headers map[string]string, httpStatus int, err error, retryCount, maxRetries int)
}

// ZapHTTPLogger logs retry notifications through the application logger.
type ZapHTTPLogger struct{}

// LogRequestRetry implements HTTPLogger.
func (ZapHTTPLogger) LogRequestRetry(method, url string, _ map[string]string, httpStatus int, err error, retryCount, maxRetries int) {
	log.Warnf("Retrying %s %s (attempt %d/%d, status %d): %v", method, url, retryCount, maxRetries, httpStatus, err)
}
