// ============================================================================
// MCK Infra Lab - Grading Dashboard Terminal Client
// ============================================================================
//
// Package:     logbuf
// Description: Bounded FIFO buffer for operational log lines
// Created:     2026-08-29
// License:     MIT
// ============================================================================

package logbuf

// Buffer holds the most recent operational log lines for display.
// Appending beyond the capacity evicts the oldest line first. The
// zero value is not usable; call New.
type Buffer struct {
	capacity int
	lines    []string
}

// DefaultCapacity matches the number of lines the dashboard keeps on screen.
const DefaultCapacity = 200

// New creates a buffer holding at most capacity lines. A capacity
// of zero or less falls back to DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		capacity: capacity,
		lines:    make([]string, 0, capacity),
	}
}

// Append adds a line at the end, evicting the oldest line when the
// buffer is full. Eviction is strictly FIFO; no line is privileged.
func (b *Buffer) Append(line string) {
	if len(b.lines) == b.capacity {
		copy(b.lines, b.lines[1:])
		b.lines = b.lines[:len(b.lines)-1]
	}
	b.lines = append(b.lines, line)
}

// Len returns the number of lines currently held.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Capacity returns the maximum number of lines the buffer holds.
func (b *Buffer) Capacity() int {
	return b.capacity
}

// Lines returns the held lines in insertion order. The returned
// slice is a copy and safe to retain.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Clear discards all held lines.
func (b *Buffer) Clear() {
	b.lines = b.lines[:0]
}
