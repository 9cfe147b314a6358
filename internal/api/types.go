// ============================================================================
// MCK Infra Lab - Grading Dashboard Terminal Client
// ============================================================================
//
// Package:     api
// Description: Wire types for the grading server's JSON API
// Created:     2026-08-29
// License:     MIT
// ============================================================================

package api

// CompareRequest is the body of POST /api/compare.
type CompareRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Lab  string `json:"lab,omitempty"`
}

// EndpointResult is the comparison outcome for one endpoint.
// MissingCount and ExtraCount are pointers because their presence,
// not just their value, selects the row-count rendering.
type EndpointResult struct {
	Endpoint      string `json:"endpoint"`
	Status        string `json:"status"`
	BaselineError string `json:"baseline_error,omitempty"`
	TargetError   string `json:"target_error,omitempty"`
	MissingCount  *int   `json:"missing_count,omitempty"`
	ExtraCount    *int   `json:"extra_count,omitempty"`
}

// CompareResult is the success body of POST /api/compare.
type CompareResult struct {
	Name           string           `json:"name"`
	CompareEnabled bool             `json:"compare_enabled"`
	Status         string           `json:"status"`
	ElapsedMS      int64            `json:"elapsed_ms"`
	Results        []EndpointResult `json:"results"`
}

// Endpoint comparison statuses.
const (
	StatusMatch = "match"
	StatusError = "error"
	StatusDiff  = "diff"
)

// Student is one registered student app.
type Student struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LeaderboardEntry is one leaderboard row. Sync is three-state:
// true, false, or unknown (nil / absent in the JSON).
type LeaderboardEntry struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url"`
	Sync *bool  `json:"sync"`
}

type studentsResponse struct {
	Students []Student `json:"students"`
}

type leaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

type errorResponse struct {
	Error string `json:"error"`
}
