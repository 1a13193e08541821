package api

import (
	"context"
	"net/url"
	"time"

	"dashboard-api/pkg/http"
	"dashboard-api/pkg/log"
)

// Source describes an upstream document endpoint and its relay fallbacks.
// Relay URLs are built by appending the escaped primary URL to each template,
// the way browser CORS relays are addressed.
type Source struct {
	Name           string
	PrimaryURL     string
	ProxyTemplates []string
	Timeout        time.Duration
}

// Endpoints returns the ordered URLs for one attempt round: the primary
// endpoint followed by each relay.
func (s Source) Endpoints() []string {
	endpoints := make([]string, 0, len(s.ProxyTemplates)+1)
	endpoints = append(endpoints, s.PrimaryURL)
	for _, template := range s.ProxyTemplates {
		endpoints = append(endpoints, template+url.QueryEscape(s.PrimaryURL))
	}
	return endpoints
}

// fetchDocument walks the source's endpoints in order within a single attempt
// round. A network failure, a non-2xx status or a parse failure moves on to
// the next endpoint immediately; the last failure is returned once every
// endpoint is exhausted. Each endpoint hit races against the source timeout,
// and a timeout counts as a network failure for that endpoint only.
func fetchDocument(ctx context.Context, client *http.Client, src Source, parse func(body []byte) error) error {
	var lastErr error

	for _, endpoint := range src.Endpoints() {
		err := fetchEndpoint(ctx, client, src.Timeout, endpoint, parse)
		if err == nil {
			return nil
		}
		lastErr = err
		log.Warnf("Endpoint failed for source %s: %v", src.Name, err)
	}

	return lastErr
}

func fetchEndpoint(ctx context.Context, client *http.Client, timeout time.Duration, endpoint string, parse func(body []byte) error) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	body, status, err := client.GetRaw(ctx, endpoint, nil)
	if err != nil {
		return networkError(endpoint, err)
	}
	if status < 200 || status >= 300 {
		return statusError(endpoint, status)
	}

	return parse(body)
}
