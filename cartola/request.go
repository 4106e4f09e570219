package cartola

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mww/cartolafc/metrics"
)

// transientError marks a failed attempt that is worth repeating.
type transientError struct {
	err error
}

func (e *transientError) Error() string {
	return e.err.Error()
}

func (e *transientError) Unwrap() error {
	return e.err
}

// Fetch requests path from the Cartola API and returns the raw JSON body.
//
// A cached body for the same URL is returned without any request. Otherwise
// the request is tried up to Attempts() times while the service answers with
// something that is not JSON or cannot be reached. A 401 with a session token
// triggers one re-authentication per attempt. Service messages and the end of
// the season are reported as *APIError and *GameOverError, and are not retried.
func (c *Client) Fetch(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	u := c.buildURL(path, params)

	if body := c.cached(ctx, u); body != nil {
		c.metrics.RecordRequest(metrics.OutcomeCached)
		return body, nil
	}

	start := c.clock.Now()
	defer func() {
		c.metrics.ObserveRequestDuration(c.clock.Now().Sub(start))
	}()

	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		body, err := c.attempt(ctx, u)
		if err == nil {
			c.store(ctx, u, body)
			c.metrics.RecordRequest(metrics.OutcomeSuccess)
			return body, nil
		}

		var transient *transientError
		if !errors.As(err, &transient) {
			c.recordFailure(err)
			return nil, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			c.metrics.RecordRequest(metrics.OutcomeCancelled)
			return nil, ctxErr
		}

		lastErr = transient.err
		c.logger.Warn("cartola: attempt failed", "url", u, "attempt", attempt, "attempts", c.attempts, "err", lastErr)
		if attempt < c.attempts {
			c.metrics.RecordRetry()
		}
	}

	c.metrics.RecordRequest(metrics.OutcomeOverload)
	return nil, &OverloadError{Attempts: c.attempts, Err: lastErr}
}

// attempt performs one GET, including the re-authentication on 401, and
// classifies the body.
func (c *Client) attempt(ctx context.Context, u string) (json.RawMessage, error) {
	token := c.session.getToken()
	status, body, err := c.get(ctx, u, token)
	if err != nil {
		return nil, &transientError{err: err}
	}

	if status == http.StatusUnauthorized && token != "" {
		if err := c.reauthenticate(ctx); err != nil {
			if IsAPIError(err) {
				return nil, err
			}
			return nil, &transientError{err: err}
		}
		status, body, err = c.get(ctx, u, c.session.getToken())
		if err != nil {
			return nil, &transientError{err: err}
		}
		if status == http.StatusUnauthorized {
			return nil, &transientError{err: fmt.Errorf("unauthorized after authenticating again: %s", u)}
		}
	}

	return c.parse(u, status, body)
}

func (c *Client) get(ctx context.Context, u, token string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("error creating request: %w", err)
	}
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("error sending request to %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("error reading response from %s: %w", u, err)
	}
	return resp.StatusCode, body, nil
}

// serviceReply holds the fields every Cartola payload may carry to report a
// problem instead of data.
type serviceReply struct {
	Message  json.RawMessage `json:"mensagem"`
	GameOver json.RawMessage `json:"game_over"`
}

func (c *Client) parse(u string, status int, body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, &transientError{err: fmt.Errorf("invalid json response (status %d): %q", status, preview(trimmed))}
	}

	if len(trimmed) == 0 || trimmed[0] != '{' {
		return json.RawMessage(trimmed), nil
	}

	var reply serviceReply
	if err := json.Unmarshal(trimmed, &reply); err != nil {
		return nil, &transientError{err: fmt.Errorf("error parsing response: %w", err)}
	}

	var gameOver bool
	if len(reply.GameOver) > 0 && json.Unmarshal(reply.GameOver, &gameOver) == nil && gameOver {
		c.logger.Info("cartola: season is over", "url", u)
		return nil, &GameOverError{APIError{Message: "game over"}}
	}

	var message string
	if len(reply.Message) > 0 && json.Unmarshal(reply.Message, &message) == nil && message != "" {
		c.logger.Error("cartola: service reported an error", "url", u, "status", status, "message", message)
		return nil, &APIError{Message: message}
	}

	return json.RawMessage(trimmed), nil
}

func (c *Client) recordFailure(err error) {
	switch {
	case IsGameOver(err):
		c.metrics.RecordRequest(metrics.OutcomeGameOver)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.metrics.RecordRequest(metrics.OutcomeCancelled)
	default:
		c.metrics.RecordRequest(metrics.OutcomeAPIError)
	}
}

func (c *Client) cached(ctx context.Context, key string) json.RawMessage {
	if c.cache == nil {
		return nil
	}
	body, err := c.cache.Get(ctx, key)
	if err != nil {
		c.metrics.RecordCacheError()
		c.logger.Warn("cartola: cache read failed", "url", key, "err", err)
		return nil
	}
	if body == nil {
		c.metrics.RecordCacheMiss()
		return nil
	}
	c.metrics.RecordCacheHit()
	return json.RawMessage(body)
}

func (c *Client) store(ctx context.Context, key string, body []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, body, c.cacheTTL); err != nil {
		c.metrics.RecordCacheError()
		c.logger.Warn("cartola: cache write failed", "url", key, "err", err)
	}
}

func (c *Client) buildURL(path string, params url.Values) string {
	u := strings.TrimRight(c.url, "/") + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func preview(body []byte) string {
	const limit = 80
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
