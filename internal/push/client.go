// ============================================================================
// MCK Infra Lab - Grading Dashboard Terminal Client
// ============================================================================
//
// Package:     push
// Description: Reconnecting websocket client for the server push channel
// Created:     2026-08-29
// License:     MIT
// ============================================================================

package push

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// State is the connection state of the push channel.
type State int

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

// String returns the display name of the state.
func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// DefaultBackoff is the fixed delay between reconnect attempts.
const DefaultBackoff = 2 * time.Second

// Client maintains a persistent connection to the grading server's
// push endpoint. On any disconnect it waits a fixed backoff and dials
// again, forever; there is no retry cap. Decoded events are delivered
// on the Events channel in arrival order.
type Client struct {
	url       string
	sessionID string
	backoff   time.Duration
	clock     clockwork.Clock
	dialer    *websocket.Dialer
	log       zerolog.Logger
	events    chan Event

	mu         sync.Mutex
	state      State
	generation int
}

// Option configures a Client.
type Option func(*Client)

// WithBackoff overrides the fixed reconnect delay.
func WithBackoff(d time.Duration) Option {
	return func(c *Client) { c.backoff = d }
}

// WithClock injects the clock used for the reconnect delay.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Client) { c.clock = clock }
}

// WithSessionID sets the session id sent on the websocket handshake.
func WithSessionID(id string) Option {
	return func(c *Client) { c.sessionID = id }
}

// NewClient creates a push-channel client for the given websocket URL.
func NewClient(url string, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		url:     url,
		backoff: DefaultBackoff,
		clock:   clockwork.NewRealClock(),
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
		log:    log.With().Str("component", "push").Logger(),
		events: make(chan Event, 64),
		state:  StateClosed,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Events returns the channel typed events are delivered on.
func (c *Client) Events() <-chan Event {
	return c.events
}

// State returns the current connection state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Client) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Generation returns the number of connections attempted so far.
func (c *Client) Generation() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *Client) nextGeneration() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	return c.generation
}

func (c *Client) isCurrent(gen int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation == gen
}

// Run drives the connect/read/reconnect loop until ctx is cancelled.
// It never returns an error: connection failures are logged and retried
// after the fixed backoff.
func (c *Client) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			c.setState(StateClosed)
			return
		}

		c.setState(StateConnecting)
		gen := c.nextGeneration()

		header := http.Header{}
		if c.sessionID != "" {
			header.Set("X-Labdash-Session", c.sessionID)
		}

		conn, _, err := c.dialer.DialContext(ctx, c.url, header)
		if err != nil {
			c.log.Warn().Err(err).Int("generation", gen).Msg("push channel dial failed")
			c.setState(StateClosed)
		} else {
			c.log.Info().Int("generation", gen).Msg("push channel connected")
			c.setState(StateOpen)
			c.readLoop(ctx, conn, gen)
			conn.Close()
			c.setState(StateClosed)
			c.log.Info().Int("generation", gen).Msg("push channel disconnected")
		}

		select {
		case <-ctx.Done():
			return
		case <-c.clock.After(c.backoff):
		}
	}
}

// readLoop reads messages until the connection fails. Malformed
// payloads are logged and dropped; events from a superseded
// connection generation are discarded.
func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn, gen int) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		ev, err := Decode(raw)
		if err != nil {
			c.log.Warn().Err(err).Msg("dropping malformed push message")
			continue
		}
		if ev == nil {
			continue
		}
		if !c.isCurrent(gen) {
			c.log.Debug().Int("generation", gen).Str("tag", ev.Tag()).
				Msg("discarding event from superseded connection")
			continue
		}

		select {
		case c.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}
