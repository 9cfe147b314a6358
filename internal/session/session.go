// ============================================================================
// MCK Infra Lab - Grading Dashboard Terminal Client
// ============================================================================
//
// Package:     session
// Description: Client session owning dashboard state and the submit workflow
// Created:     2026-08-30
// License:     MIT
// ============================================================================

package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/api"
	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/countdown"
	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/logbuf"
	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/push"
)

// Config carries the externally supplied values the session reads
// once at startup.
type Config struct {
	// Lab is the page-wide active lab identifier; may be empty.
	Lab string
	// FormLab overrides Lab for submissions when non-empty.
	FormLab string
	// CompareEnabled is the client-side flag gating the result panel.
	CompareEnabled bool
	// SyncCheckSeconds is the fixed sync-check interval.
	SyncCheckSeconds int
	// InitialAutoFillSeconds seeds the auto-fill countdown; zero means
	// no authoritative value yet.
	InitialAutoFillSeconds int
	// LogCapacity bounds the operational log; zero uses the default.
	LogCapacity int
}

// Session holds all mutable client state: the bounded log, both
// countdown timers and the latest roster/leaderboard snapshots.
// All methods are safe for concurrent use.
type Session struct {
	cfg Config
	api *api.Client
	log zerolog.Logger

	mu          sync.Mutex
	logs        *logbuf.Buffer
	syncCheck   *countdown.CycleTimer
	autoFill    *countdown.AnchoredTimer
	students    []api.Student
	leaderboard []api.LeaderboardEntry
	submitting  bool
}

// New constructs a session from configuration and an API client.
func New(cfg Config, client *api.Client, log zerolog.Logger) *Session {
	return &Session{
		cfg:       cfg,
		api:       client,
		log:       log.With().Str("component", "session").Logger(),
		logs:      logbuf.New(cfg.LogCapacity),
		syncCheck: countdown.NewCycleTimer(cfg.SyncCheckSeconds),
		autoFill:  countdown.NewAnchoredTimer(cfg.InitialAutoFillSeconds),
	}
}

// HandleEvent routes one push-channel event: log-bearing tags feed
// the bounded log, fill_meta corrects the auto-fill timer.
func (s *Session) HandleEvent(ev push.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e := ev.(type) {
	case push.LogEvent:
		s.logs.Append(e.Message)
	case push.MetaEvent:
		s.autoFill.Apply(e)
	}
}

// TickSecond advances both countdowns by one second. It returns true
// when the sync-check timer wrapped and a leaderboard refresh is due.
func (s *Session) TickSecond() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.autoFill.Tick()
	return s.syncCheck.Tick()
}

// LogLines returns the current operational log in insertion order.
func (s *Session) LogLines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logs.Lines()
}

// LogCount returns the number of log lines currently held.
func (s *Session) LogCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logs.Len()
}

// SyncCheckLabel returns the sync-check countdown display line.
func (s *Session) SyncCheckLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncCheck.Label()
}

// AutoFillLabel returns the auto-fill countdown display line.
func (s *Session) AutoFillLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoFill.Label()
}

// AutoFillEntry returns the companion entry text.
func (s *Session) AutoFillEntry() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoFill.Entry()
}

// Students returns the last successfully fetched roster snapshot.
func (s *Session) Students() []api.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.students
}

// Leaderboard returns the last successfully fetched leaderboard snapshot.
func (s *Session) Leaderboard() []api.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leaderboard
}

// Lab returns the active lab identifier.
func (s *Session) Lab() string {
	return s.cfg.Lab
}

// RefreshStudents fetches the roster and replaces the displayed
// snapshot. On failure the previous snapshot is kept.
func (s *Session) RefreshStudents(ctx context.Context) error {
	students, err := s.api.Students(ctx, s.cfg.Lab)
	if err != nil {
		s.log.Warn().Err(err).Msg("students refresh failed, keeping previous snapshot")
		return err
	}

	s.mu.Lock()
	s.students = students
	s.mu.Unlock()
	return nil
}

// RefreshLeaderboard fetches the leaderboard and replaces the
// displayed snapshot. On failure the previous snapshot is kept.
func (s *Session) RefreshLeaderboard(ctx context.Context) error {
	entries, err := s.api.Leaderboard(ctx, s.cfg.Lab)
	if err != nil {
		s.log.Warn().Err(err).Msg("leaderboard refresh failed, keeping previous snapshot")
		return err
	}

	s.mu.Lock()
	s.leaderboard = entries
	s.mu.Unlock()
	return nil
}

// Validation and fallback messages shown to the user.
const (
	msgMissingInput  = "Please provide your name and app URL."
	msgSubmitBusy    = "A submission is already running."
	msgCompareFailed = "Unable to compare."
	msgGenericError  = "Something went wrong."
)

// SubmitOutcome is the user-visible result of one submit action.
type SubmitOutcome struct {
	// OK is true when the submission reached the server and succeeded.
	OK bool
	// Status is the status line to show.
	Status string
	// Result is non-nil when the full result panel should render.
	Result *api.CompareResult
	// RefreshDue is true when roster and leaderboard refreshes are owed.
	RefreshDue bool
}

// Submitting reports whether a submission is currently in flight.
func (s *Session) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

func (s *Session) beginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

func (s *Session) endSubmit() {
	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()
}

// Submit runs the compare/submit workflow once. Empty name or URL is
// rejected before any network call. Transport and server failures are
// converted to user-visible messages; nothing here is fatal.
func (s *Session) Submit(ctx context.Context, name, url string) SubmitOutcome {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" || url == "" {
		return SubmitOutcome{Status: msgMissingInput}
	}

	if !s.beginSubmit() {
		return SubmitOutcome{Status: msgSubmitBusy}
	}
	defer s.endSubmit()

	lab := s.cfg.FormLab
	if lab == "" {
		lab = s.cfg.Lab
	}

	result, err := s.api.Compare(ctx, api.CompareRequest{Name: name, URL: url, Lab: lab})
	if err != nil {
		s.log.Warn().Err(err).Str("name", name).Msg("submission failed")
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" {
				msg = msgCompareFailed
			}
			return SubmitOutcome{Status: msg}
		}
		return SubmitOutcome{Status: msgGenericError}
	}

	s.log.Info().Str("name", result.Name).Str("status", result.Status).
		Int64("elapsed_ms", result.ElapsedMS).Msg("submission complete")

	out := SubmitOutcome{OK: true, RefreshDue: true}
	if s.cfg.CompareEnabled && result.CompareEnabled {
		out.Status = "Comparison complete for " + result.Name + "."
		out.Result = result
	} else {
		out.Status = "Submission saved for " + result.Name + "."
	}
	return out
}
