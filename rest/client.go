// Package rest is the thin REST boundary spec.md scopes the platform's
// ~150-endpoint surface down to: the authentication header carrier,
// the platform error taxonomy, the user-agent string, and a resilient
// request/response round trip. It does not enumerate every endpoint;
// callers build the method, path and body for a given route and hand
// them to Client.Do.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gojek/heimdall/v7"
	"github.com/gojek/heimdall/v7/httpclient"

	"github.com/catuhana/rive/auth"
	"github.com/catuhana/rive/logging"
)

// Client issues authenticated, retried REST requests against the
// platform's API origin, decoding non-2xx responses into the platform
// error taxonomy.
type Client struct {
	config Config
	auth   auth.Authentication
	http   *httpclient.Client
}

// New returns a Client using the default Config.
func New(a auth.Authentication) *Client {
	return WithConfig(NewConfig(), a)
}

// WithConfig returns a Client built from an explicit Config. The
// retry/backoff shape mirrors the teacher's own REST layer: an
// exponential backoff wrapped in a heimdall retrier, retrying a failed
// request up to RetryCount times after the first attempt.
func WithConfig(cfg Config, a auth.Authentication) *Client {
	backoff := heimdall.NewExponentialBackoff(
		defaultInitialBackoff, defaultMaxBackoff, defaultBackoffFactor, defaultJitter,
	)
	retrier := heimdall.NewRetrier(backoff)

	return &Client{
		config: cfg,
		auth:   a,
		http: httpclient.NewClient(
			httpclient.WithHTTPTimeout(cfg.Timeout),
			httpclient.WithRetrier(retrier),
			httpclient.WithRetryCount(cfg.RetryCount),
		),
	}
}

// Do issues method on path (relative to the configured BaseURL),
// encoding body as JSON when non-nil, and decodes the response into
// out when the status is 2xx. A non-2xx response is decoded into an
// *APIError and returned as the error.
func (c *Client) Do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(body); err != nil {
			return fmt.Errorf("rest: encode request body: %w", err)
		}
		reader = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("rest: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if key := c.auth.HeaderKey(); key != "" {
		req.Header.Set(key, c.auth.Value())
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		logging.Warnf("rest: %s %s failed: %v", method, path, err)
		return fmt.Errorf("rest: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rest: read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, RawBody: raw}
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, apiErr)
		}
		if apiErr.Type == "" {
			apiErr.Type = ErrorInternalError
		}
		logging.Warnf("rest: %s %s -> %d %s", method, path, resp.StatusCode, apiErr.Type)
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("rest: decode response body: %w", err)
	}
	return nil
}
