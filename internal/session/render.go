// ============================================================================
// MCK Infra Lab - Grading Dashboard Terminal Client
// ============================================================================
//
// Package:     session
// Description: Display text rules for comparison results and sync status
// Created:     2026-08-30
// License:     MIT
// ============================================================================

package session

import (
	"fmt"

	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/api"
)

// SummaryText is the one-line verdict above the result cards.
func SummaryText(status string) string {
	if status == api.StatusMatch {
		return "All endpoints match the baseline."
	}
	return "Differences detected. Review endpoint details."
}

// ElapsedText renders the comparison duration.
func ElapsedText(ms int64) string {
	return fmt.Sprintf("Completed in %d ms", ms)
}

// CardTitle is the heading of one endpoint result card.
func CardTitle(r api.EndpointResult) string {
	return fmt.Sprintf("%s — %s", r.Endpoint, r.Status)
}

// CardText renders the detail line of one endpoint result card.
// Error results show both sides, defaulting each to "ok"; a present
// missing_count selects the row-count form; everything else that is
// not a match is a generic difference.
func CardText(r api.EndpointResult) string {
	switch {
	case r.Status == api.StatusMatch:
		return "Payload matches baseline."
	case r.Status == api.StatusError:
		baseline := r.BaselineError
		if baseline == "" {
			baseline = "ok"
		}
		target := r.TargetError
		if target == "" {
			target = "ok"
		}
		return fmt.Sprintf("Baseline: %s | Target: %s", baseline, target)
	case r.MissingCount != nil:
		extra := 0
		if r.ExtraCount != nil {
			extra = *r.ExtraCount
		}
		return fmt.Sprintf("Missing rows: %d | Extra rows: %d", *r.MissingCount, extra)
	default:
		return "Payload differs from baseline."
	}
}

// SyncLabel renders the three-state leaderboard sync indicator.
func SyncLabel(sync *bool) string {
	switch {
	case sync == nil:
		return "Pending"
	case *sync:
		return "In sync"
	default:
		return "Out of sync"
	}
}

// EntryName renders a leaderboard entry's name, defaulting when absent.
func EntryName(e api.LeaderboardEntry) string {
	if e.Name == "" {
		return "Unknown"
	}
	return e.Name
}
