// ============================================================================
// MCK Infra Lab - Grading Dashboard Terminal Client
// ============================================================================
//
// Package:     countdown
// Description: Local countdown timers kept consistent with server schedule state
// Created:     2026-08-29
// License:     MIT
// ============================================================================

package countdown

import (
	"fmt"

	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/push"
)

// CycleTimer is the sync-check countdown. It is anchored by a fixed
// interval read once at construction, wraps back to the full interval
// when it runs out, and never receives authoritative correction.
type CycleTimer struct {
	interval  int
	remaining int
}

// NewCycleTimer creates a cycle timer with the given interval in
// seconds. A non-positive interval yields a disabled timer whose
// ticks do nothing.
func NewCycleTimer(intervalSeconds int) *CycleTimer {
	return &CycleTimer{
		interval:  intervalSeconds,
		remaining: intervalSeconds,
	}
}

// Enabled reports whether the timer was configured with an interval.
func (t *CycleTimer) Enabled() bool {
	return t.interval > 0
}

// Remaining returns the seconds left until the next wrap.
func (t *CycleTimer) Remaining() int {
	return t.remaining
}

// Tick advances the timer by one second. It returns true exactly
// once per wrap, when the countdown crosses below zero and resets to
// the full interval; the caller then owes a leaderboard refresh.
func (t *CycleTimer) Tick() bool {
	if !t.Enabled() {
		return false
	}
	t.remaining--
	if t.remaining < 0 {
		t.remaining = t.interval
		return true
	}
	return false
}

// Label returns the display line for the timer.
func (t *CycleTimer) Label() string {
	if !t.Enabled() {
		return "Sync check disabled"
	}
	return fmt.Sprintf("Next sync check in %ds", t.remaining)
}

// AnchoredTimer is the auto-fill countdown. It interpolates between
// authoritative fill_meta corrections: each correction overwrites the
// local remaining value unconditionally, and without a concrete value
// the countdown is suspended.
type AnchoredTimer struct {
	remaining *int
	status    string
	entry     string
}

// NewAnchoredTimer creates an auto-fill timer from the initial
// remaining seconds supplied at startup. Zero or negative means no
// authoritative value yet.
func NewAnchoredTimer(initialSeconds int) *AnchoredTimer {
	t := &AnchoredTimer{}
	if initialSeconds > 0 {
		v := initialSeconds
		t.remaining = &v
	}
	return t
}

// Apply overwrites the timer from an authoritative fill_meta event.
// Local ticking is only an interpolation; the server value always wins.
func (t *AnchoredTimer) Apply(meta push.MetaEvent) {
	t.status = meta.Status
	t.entry = meta.EntryText
	if meta.NextInSeconds == nil {
		t.remaining = nil
		return
	}
	v := *meta.NextInSeconds
	t.remaining = &v
}

// Tick advances the timer by one second, clamped at zero. With no
// authoritative value the timer is suspended and Tick does nothing.
func (t *AnchoredTimer) Tick() {
	if t.remaining == nil {
		return
	}
	if *t.remaining > 0 {
		*t.remaining--
	}
}

// Active reports whether a concrete countdown is running.
func (t *AnchoredTimer) Active() bool {
	return t.remaining != nil
}

// Remaining returns the current countdown value, or -1 when suspended.
func (t *AnchoredTimer) Remaining() int {
	if t.remaining == nil {
		return -1
	}
	return *t.remaining
}

// Label returns the display line for the timer. Without a concrete
// value the label depends on the last reported automation status.
func (t *AnchoredTimer) Label() string {
	if t.remaining == nil {
		if t.status == "paused" {
			return "Automation paused"
		}
		return "Next auto-fill time pending"
	}
	return fmt.Sprintf("Next auto-fill in %ds", *t.remaining)
}

// Entry returns the companion entry text, defaulting to "Pending".
func (t *AnchoredTimer) Entry() string {
	if t.entry == "" {
		return "Pending"
	}
	return t.entry
}
