// SPDX-License-Identifier: MIT

// Package chat maintains a best-effort live connection to the discussion
// backend. It hides transient failures from callers: the channel reconnects
// on its own, presents one linear message log, and exposes a safe send.
package chat

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/reelmate/reelmate/internal/log"
)

const (
	defaultRetryDelay   = 3 * time.Second
	defaultSendDebounce = 500 * time.Millisecond
)

// ErrNotConnected is returned by Send while no live connection exists.
// Connection failures are otherwise invisible: the only observable failure
// signal is the connectivity flag.
var ErrNotConnected = errors.New("chat: not connected")

// State is the channel lifecycle state.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateClosed       State = "closed"
)

// Channel is a reconnecting websocket client for the chat backend. One
// instance exists per running application; it is torn down exactly once.
type Channel struct {
	url    string
	dialer *websocket.Dialer
	retry  time.Duration
	logger zerolog.Logger

	// limiter implements the global send debounce: burst 1, refill at the
	// debounce interval, so a second submit inside the window is absorbed.
	limiter *rate.Limiter

	mu              sync.Mutex
	state           State
	conn            *websocket.Conn
	shouldReconnect bool
	retryTimer      *time.Timer
	messages        []Message
	attempt         int

	writeMu sync.Mutex // gorilla permits one concurrent writer

	wg sync.WaitGroup // live reader goroutines, for orderly teardown
}

// ChannelOption configures a Channel.
type ChannelOption func(*Channel)

// WithRetryDelay overrides the fixed reconnect interval.
func WithRetryDelay(d time.Duration) ChannelOption {
	return func(c *Channel) {
		if d > 0 {
			c.retry = d
		}
	}
}

// WithSendDebounce overrides the send debounce window.
func WithSendDebounce(d time.Duration) ChannelOption {
	return func(c *Channel) {
		if d > 0 {
			c.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// WithDialer overrides the websocket dialer.
func WithDialer(d *websocket.Dialer) ChannelOption {
	return func(c *Channel) { c.dialer = d }
}

// WithChannelLogger overrides the component logger.
func WithChannelLogger(l zerolog.Logger) ChannelOption {
	return func(c *Channel) { c.logger = l }
}

// NewChannel returns a channel for the given websocket URL in the
// disconnected state. Call Start to begin connecting.
func NewChannel(url string, opts ...ChannelOption) *Channel {
	c := &Channel{
		url:     url,
		dialer:  websocket.DefaultDialer,
		retry:   defaultRetryDelay,
		limiter: rate.NewLimiter(rate.Every(defaultSendDebounce), 1),
		state:   StateDisconnected,
		logger:  log.WithComponent("chat"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins the connect loop. Calling Start more than once, or after
// Close, has no effect.
func (c *Channel) Start() {
	c.mu.Lock()
	if c.state != StateDisconnected {
		c.mu.Unlock()
		return
	}
	c.shouldReconnect = true
	c.transitionLocked(StateConnecting)
	c.mu.Unlock()
	go c.connect()
}

// Close tears the channel down: reconnection is disabled and the pending
// retry timer stopped before the socket closes, so the teardown-triggered
// close never schedules a spurious reconnect. Safe to call more than once.
func (c *Channel) Close() {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return
	}
	c.shouldReconnect = false
	if c.retryTimer != nil {
		c.retryTimer.Stop()
		c.retryTimer = nil
	}
	conn := c.conn
	c.conn = nil
	c.transitionLocked(StateClosed)
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	c.wg.Wait()
}

// Connected reports whether a live connection exists right now.
func (c *Channel) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateConnected
}

// CurrentState returns the lifecycle state for status reporting.
func (c *Channel) CurrentState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Messages returns a snapshot of the message log in arrival order.
func (c *Channel) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Send transmits one chat frame. It returns ErrNotConnected while the socket
// is not open. A second call within the debounce window is absorbed without
// error and without a frame: a blunt global debounce against double-submits,
// not per-message idempotency.
func (c *Channel) Send(name, message string, moment *int) error {
	c.mu.Lock()
	conn := c.conn
	connected := c.state == StateConnected
	c.mu.Unlock()

	if !connected || conn == nil {
		return ErrNotConnected
	}
	if !c.limiter.Allow() {
		recordSendSuppressed()
		c.logger.Debug().
			Str(log.FieldEvent, "chat.send_debounced").
			Msg("suppressed duplicate send inside debounce window")
		return nil
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.WriteJSON(outbound{Name: name, Message: message, Moment: moment}); err != nil {
		return err
	}
	recordSent()
	return nil
}

// connect performs one dial attempt. Failure schedules the next attempt;
// success hands the socket to a reader goroutine.
func (c *Channel) connect() {
	c.mu.Lock()
	if !c.shouldReconnect {
		c.mu.Unlock()
		return
	}
	c.attempt++
	attempt := c.attempt
	c.mu.Unlock()

	conn, resp, err := c.dialer.Dial(c.url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	c.mu.Lock()
	if !c.shouldReconnect {
		c.mu.Unlock()
		if conn != nil {
			_ = conn.Close()
		}
		return
	}
	if err != nil {
		c.logger.Warn().Err(err).
			Str(log.FieldEvent, "chat.dial_failed").
			Int(log.FieldAttempt, attempt).
			Msg("chat backend unreachable")
		c.scheduleRetryLocked()
		c.mu.Unlock()
		return
	}

	c.conn = conn
	c.transitionLocked(StateConnected)
	if attempt > 1 {
		recordReconnect()
	}
	c.wg.Add(1)
	c.mu.Unlock()

	c.logger.Info().
		Str(log.FieldEvent, "chat.connected").
		Int(log.FieldAttempt, attempt).
		Msg("connected to chat backend")

	go c.readLoop(conn)
}

// readLoop applies inbound payloads in arrival order. Read errors carry no
// action of their own; only the loop exit (the close) drives the retry, so
// error and close can never both schedule a reconnect.
func (c *Channel) readLoop(conn *websocket.Conn) {
	defer c.wg.Done()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		c.ingest(data)
	}
	_ = conn.Close()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == conn {
		c.conn = nil
	}
	if !c.shouldReconnect {
		return
	}
	c.logger.Warn().
		Str(log.FieldEvent, "chat.disconnected").
		Dur("retry_in", c.retry).
		Msg("connection lost, scheduling reconnect")
	c.scheduleRetryLocked()
}

// ingest normalizes and applies one payload. Malformed payloads are dropped
// and logged; they never reach the log or disturb the connection.
func (c *Channel) ingest(data []byte) {
	in, err := classify(data)
	if err != nil {
		recordDropped()
		c.logger.Warn().Err(err).
			Str(log.FieldEvent, "chat.payload_dropped").
			Msg("dropping malformed payload")
		return
	}

	c.mu.Lock()
	if in.replace {
		c.messages = append([]Message(nil), in.items...)
	} else {
		c.messages = append(c.messages, in.items...)
	}
	c.mu.Unlock()
	recordReceived(len(in.items), in.replace)
}

// scheduleRetryLocked arms the single retry timer. Caller holds c.mu.
func (c *Channel) scheduleRetryLocked() {
	c.transitionLocked(StateConnecting)
	if c.retryTimer != nil {
		c.retryTimer.Stop()
	}
	c.retryTimer = time.AfterFunc(c.retry, func() { c.connect() })
}

// transitionLocked centralizes state changes. Caller holds c.mu.
func (c *Channel) transitionLocked(next State) {
	if c.state == next {
		return
	}
	c.logger.Debug().
		Str(log.FieldEvent, "chat.state").
		Str(log.FieldChannelState, string(next)).
		Msg("channel state change")
	c.state = next
	recordState(next)
}
