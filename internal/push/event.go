// ============================================================================
// MCK Infra Lab - Grading Dashboard Terminal Client
// ============================================================================
//
// Package:     push
// Description: Typed events carried on the server push channel
// Created:     2026-08-29
// License:     MIT
// ============================================================================

package push

import (
	"encoding/json"
	"fmt"
)

// Event tags as sent by the grading server in the message envelope.
const (
	TagFillLog   = "fill_log"
	TagFillStart = "fill_start"
	TagFillDone  = "fill_done"
	TagFillError = "fill_error"
	TagFillMeta  = "fill_meta"
)

// Event is a message pushed by the grading server. Concrete types
// are LogEvent and MetaEvent.
type Event interface {
	Tag() string
}

// LogEvent carries one operational log line. It covers the
// fill_log, fill_start, fill_done and fill_error tags, which all
// share the same payload shape.
type LogEvent struct {
	Kind    string
	Message string
}

// Tag returns the wire tag this event arrived with.
func (e LogEvent) Tag() string { return e.Kind }

// MetaEvent carries authoritative auto-fill schedule state. NextInSeconds
// is nil when the server has no concrete schedule; Status then tells
// whether automation is paused or merely pending.
type MetaEvent struct {
	NextInSeconds *int
	Status        string
	EntryText     string
}

// Tag returns the wire tag this event arrived with.
func (e MetaEvent) Tag() string { return TagFillMeta }

// envelope is the wire framing: one JSON object per websocket message.
type envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type messagePayload struct {
	Message string `json:"message"`
}

type metaPayload struct {
	NextInSeconds *int    `json:"next_in_seconds"`
	Status        *string `json:"status"`
	EntryText     *string `json:"entry_text"`
}

// Decode parses one raw websocket message into a typed Event.
// Unrecognized tags return (nil, nil) and are dropped by the caller;
// malformed JSON returns an error.
func Decode(raw []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode push envelope: %w", err)
	}

	switch env.Event {
	case TagFillLog, TagFillStart, TagFillDone, TagFillError:
		var p messagePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to decode %s payload: %w", env.Event, err)
		}
		return LogEvent{Kind: env.Event, Message: p.Message}, nil

	case TagFillMeta:
		var p metaPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to decode %s payload: %w", env.Event, err)
		}
		ev := MetaEvent{NextInSeconds: p.NextInSeconds}
		if p.Status != nil {
			ev.Status = *p.Status
		}
		if p.EntryText != nil {
			ev.EntryText = *p.EntryText
		}
		return ev, nil

	default:
		// Unknown tags are ignored so newer servers stay compatible.
		return nil, nil
	}
}
