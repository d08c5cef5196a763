// Package service is the typed HTTP client for the proxy-control API.
//
// All requests funnel through a single call helper that normalizes
// transport and application failures into one error shape and reports
// every failure to the notification sink before returning it. Callers
// never do their own error surfacing; they only decide whether to skip
// a render.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// maxBodyBytes caps how much of a response body is read. The control API
// returns small JSON documents; anything larger is misbehaving.
const maxBodyBytes = 1 << 20

// ErrService marks a failure reported by (or while reaching) the proxy
// service. The message is already user-facing and already notified.
var ErrService = errors.New("proxy service error")

// Notifier receives user-visible failure messages. *notify.Center
// satisfies it.
type Notifier interface {
	Notify(text string)
}

// Client talks to the proxy-control API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	notifier   Notifier
	logger     *slog.Logger
}

// NewClient creates a client for the control API at baseURL.
// notifier may be nil-valued; failures are still returned to callers.
func NewClient(baseURL string, timeout time.Duration, notifier Notifier, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		notifier:   notifier,
		logger:     logger,
	}
}

// BaseURL returns the configured control API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// call performs one round trip against the control API.
//
// On success the response body is decoded into out (when non-nil); a body
// that fails to decode is treated as an empty payload, not an error. On a
// non-2xx status the error carries the body's "error" field when present,
// else "HTTP <status>". Transport failures carry a generic unreachable
// message. Every failure is notified before being returned.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return c.fail(fmt.Sprintf("encode request: %v", err))
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return c.fail(fmt.Sprintf("create request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("control API unreachable", "method", method, "path", path, "err", err)
		}
		return c.fail("proxy service unreachable")
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := errorMessage(raw, resp.StatusCode)
		if c.logger != nil {
			c.logger.Warn("control API error",
				"method", method,
				"path", path,
				"status", resp.StatusCode,
				"message", msg,
			)
		}
		return c.fail(msg)
	}

	if out != nil {
		// Malformed bodies render as an empty payload downstream.
		if err := json.Unmarshal(raw, out); err != nil && c.logger != nil {
			c.logger.Debug("undecodable response body", "path", path, "err", err)
		}
	}

	return nil
}

// fail notifies msg and returns it as an ErrService-wrapped error.
func (c *Client) fail(msg string) error {
	if c.notifier != nil {
		c.notifier.Notify(msg)
	}
	return fmt.Errorf("%w: %s", ErrService, msg)
}

// errorMessage extracts the service-provided error string from a failed
// response body, falling back to a plain status message.
func errorMessage(raw []byte, status int) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fmt.Sprintf("HTTP %d", status)
}

// Start asks the service to start the proxy listener.
func (c *Client) Start(ctx context.Context) (ControlResult, error) {
	var res ControlResult
	err := c.call(ctx, http.MethodPost, "/control/start", nil, &res)
	return res, err
}

// Stop asks the service to stop the proxy listener.
func (c *Client) Stop(ctx context.Context) (ControlResult, error) {
	var res ControlResult
	err := c.call(ctx, http.MethodPost, "/control/stop", nil, &res)
	return res, err
}

// Status fetches the service's current state.
func (c *Client) Status(ctx context.Context) (Status, error) {
	var st Status
	err := c.call(ctx, http.MethodGet, "/status", nil, &st)
	return st, err
}

// Logs fetches the request log, oldest first.
func (c *Client) Logs(ctx context.Context) ([]LogEntry, error) {
	var res logsResponse
	if err := c.call(ctx, http.MethodGet, "/logs/view", nil, &res); err != nil {
		return nil, err
	}
	return res.Logs, nil
}

// ClearLogs empties the request log.
func (c *Client) ClearLogs(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/logs/clear", nil, nil)
}

// Cache fetches the cache listing, oldest first.
func (c *Client) Cache(ctx context.Context) ([]CacheEntry, error) {
	var res cacheResponse
	if err := c.call(ctx, http.MethodGet, "/cache/view", nil, &res); err != nil {
		return nil, err
	}
	return res.Cache, nil
}

// ClearCache empties the response cache.
func (c *Client) ClearCache(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/cache/clear", nil, nil)
}

// Blocked fetches the blocked-domain list.
func (c *Client) Blocked(ctx context.Context) ([]string, error) {
	var res blockedResponse
	if err := c.call(ctx, http.MethodGet, "/filter/view", nil, &res); err != nil {
		return nil, err
	}
	return res.Blocked, nil
}

// AddDomain adds a domain to the block list and returns the updated list,
// which the service includes in its response.
func (c *Client) AddDomain(ctx context.Context, domain string) ([]string, error) {
	var res blockedResponse
	if err := c.call(ctx, http.MethodPost, "/filter/add", domainRequest{Domain: domain}, &res); err != nil {
		return nil, err
	}
	return res.Blocked, nil
}

// RemoveDomain removes a domain from the block list.
func (c *Client) RemoveDomain(ctx context.Context, domain string) error {
	return c.call(ctx, http.MethodPost, "/filter/remove", domainRequest{Domain: domain}, nil)
}
