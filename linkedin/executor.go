package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// get performs a GET request against the API and returns the decoded JSON
// body. The response shape is opaque to the client; callers receive the
// decoded value as-is.
//
// Failed attempts are retried with linear backoff: after attempt n fails,
// the client waits retryDelay*(n+1) before the next attempt. Responses in
// the 4xx range are never retried; they signal a request-shape problem a
// retry cannot fix. Server errors, transport failures, and timeouts are
// retried until maxRetries is exhausted, at which point the last
// classified error is surfaced.
func (c *Client) get(ctx context.Context, path string, params *Params) (any, error) {
	requestURL := c.buildURL(path, params)
	c.logger.Debug().Str("url", requestURL).Msg("Making LinkScout API request")

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(attempt)
			c.logger.Debug().
				Dur("delay", delay).
				Int("attempt", attempt+1).
				Str("url", requestURL).
				Msg("Retrying request after backoff")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, &NetworkError{Attempts: attempt, Err: ctx.Err()}
			}
		}

		result, retryable, err := c.attempt(ctx, requestURL)
		if err == nil {
			return result, nil
		}

		switch e := err.(type) {
		case *TimeoutError:
			e.Attempts = attempt + 1
		case *NetworkError:
			e.Attempts = attempt + 1
		}
		lastErr = err

		if !retryable {
			return nil, err
		}
		c.logger.Debug().
			Err(err).
			Int("attempt", attempt+1).
			Msg("Request attempt failed")
	}

	return nil, lastErr
}

// attempt executes a single request bounded by the configured timeout and
// classifies the outcome. The second return value reports whether the
// failure qualifies for a retry.
func (c *Client) attempt(ctx context.Context, requestURL string) (any, bool, error) {
	// Arm the deadline for this attempt only; cancel releases it as soon
	// as the attempt completes so a stray timer cannot cut off a later
	// attempt's response.
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, false, &NetworkError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if timedOut(attemptCtx, ctx) {
			return nil, true, &TimeoutError{}
		}
		return nil, ctx.Err() == nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if timedOut(attemptCtx, ctx) {
			return nil, true, &TimeoutError{}
		}
		return nil, ctx.Err() == nil, &NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
		return nil, resp.StatusCode >= 500, httpErr
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		// The response arrived; a malformed body will not improve on retry.
		return nil, false, &NetworkError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return result, false, nil
}

// timedOut reports whether an attempt failed because its own deadline
// fired, as opposed to the caller cancelling the whole call.
func timedOut(attemptCtx, parent context.Context) bool {
	return attemptCtx.Err() == context.DeadlineExceeded && parent.Err() == nil
}

func (c *Client) buildURL(path string, params *Params) string {
	requestURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if params != nil {
		if query := params.Encode(); query != "" {
			requestURL += "?" + query
		}
	}
	return requestURL
}
