package gateways

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// The storefront is a thin layer over independent REST backends. Every
// gateway in this package shares the same plain client: no retries, no
// backoff, failures surface to the caller unchanged.

const requestTimeout = 10 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout:   requestTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

type httpError struct {
	StatusCode int
	URL        string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.StatusCode, e.URL)
}

// getJSON performs a GET and decodes the body into dest. Non-2xx responses
// return *httpError so callers can special-case 404s.
func getJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, dest any) error {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &httpError{StatusCode: resp.StatusCode, URL: url}
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return nil
}

func isNotFound(err error) bool {
	var httpErr *httpError

	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}
