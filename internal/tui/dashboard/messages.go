// ============================================================================
// MCK Infra Lab - Grading Dashboard Terminal Client
// ============================================================================
//
// Package:     dashboard
// Description: Message types for async operations in the dashboard
// Created:     2026-08-30
// License:     MIT
// ============================================================================

package dashboard

import (
	"time"

	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/push"
	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/session"
)

// tickMsg drives the per-second countdown cadence.
type tickMsg time.Time

// pushEventMsg delivers one event from the push channel.
type pushEventMsg struct {
	event push.Event
}

// pushChannelGoneMsg is sent when the event channel closes.
type pushChannelGoneMsg struct{}

// submitDoneMsg is sent when a submission finishes, success or not.
type submitDoneMsg struct {
	outcome session.SubmitOutcome
}

// studentsRefreshedMsg is sent after a roster refresh attempt.
// The session already holds the snapshot; err is for diagnostics only.
type studentsRefreshedMsg struct {
	err error
}

// leaderboardRefreshedMsg is sent after a leaderboard refresh attempt.
type leaderboardRefreshedMsg struct {
	err error
}
