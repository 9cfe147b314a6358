// ============================================================================
// MCK Infra Lab - Grading Dashboard Terminal Client
// ============================================================================
//
// Package:     api
// Description: HTTP client for the grading server's JSON API
// Created:     2026-08-29
// License:     MIT
// ============================================================================

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Error is a failure reported by the grading server. Message is the
// server-supplied error text when the response body carried one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Client talks to the grading server's JSON endpoints.
type Client struct {
	baseURL   string
	sessionID string
	http      *http.Client
}

// NewClient creates an API client for the given server base URL.
// sessionID, when non-empty, is attached to every request.
func NewClient(baseURL, sessionID string) *Client {
	return &Client{
		baseURL:   baseURL,
		sessionID: sessionID,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Compare submits a student app for comparison against the baseline.
// A non-2xx response is returned as *Error carrying the server's
// error message when one was provided.
func (c *Client) Compare(ctx context.Context, req CompareRequest) (*CompareResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode compare request: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, "/api/compare", nil, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var result CompareResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode compare response: %w", err)
	}
	return &result, nil
}

// Students fetches the roster snapshot, scoped to lab when non-empty.
func (c *Client) Students(ctx context.Context, lab string) ([]Student, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/students", labQuery(lab), nil)
	if err != nil {
		return nil, err
	}

	var resp studentsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode students response: %w", err)
	}
	return resp.Students, nil
}

// Leaderboard fetches the leaderboard snapshot, scoped to lab when non-empty.
func (c *Client) Leaderboard(ctx context.Context, lab string) ([]LeaderboardEntry, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/leaderboard", labQuery(lab), nil)
	if err != nil {
		return nil, err
	}

	var resp leaderboardResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard response: %w", err)
	}
	return resp.Leaderboard, nil
}

func labQuery(lab string) url.Values {
	if lab == "" {
		return nil
	}
	return url.Values{"lab": []string{lab}}
}

func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body io.Reader) ([]byte, error) {
	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionID != "" {
		req.Header.Set("X-Labdash-Session", c.sessionID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var body errorResponse
		if json.Unmarshal(raw, &body) == nil {
			apiErr.Message = body.Error
		}
		return nil, apiErr
	}

	return raw, nil
}
