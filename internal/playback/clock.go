// SPDX-License-Identifier: MIT

// Package playback owns the shared playback clock: the single authority for
// "where are we in the film", whether it is playing, and whether the film's
// own audio is muted in favour of an external narration track.
package playback

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelmate/reelmate/internal/log"
)

// defaultPauseDelay is how long an observed pause is held before it is
// committed. Toggling mute on some media elements momentarily emits a pause
// event; committing it immediately would desynchronize the shared playing
// flag from the user's actual intent.
const defaultPauseDelay = 200 * time.Millisecond

// SeekDispatcher forwards a seek request to the active media element.
type SeekDispatcher func(seconds int)

// Snapshot is a point-in-time copy of the clock state.
type Snapshot struct {
	CurrentTime int  `json:"current_time"`
	Playing     bool `json:"playing"`
	Muted       bool `json:"muted"`
}

// Clock is the process-wide playback clock. Exactly one instance exists per
// running application; consumers share the instance, never a copy.
type Clock struct {
	mu         sync.Mutex
	current    int
	playing    bool
	muted      bool
	dispatch   SeekDispatcher
	pauseDelay time.Duration
	pauseTimer *time.Timer
	subs       []func(Snapshot)
	logger     zerolog.Logger
}

// Option configures a Clock.
type Option func(*Clock)

// WithPauseDelay overrides the pause debounce window (tests use short values).
func WithPauseDelay(d time.Duration) Option {
	return func(c *Clock) {
		if d > 0 {
			c.pauseDelay = d
		}
	}
}

// WithLogger overrides the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Clock) { c.logger = l }
}

// NewClock returns a stopped, unmuted clock at position zero.
func NewClock(opts ...Option) *Clock {
	c := &Clock{
		pauseDelay: defaultPauseDelay,
		logger:     log.WithComponent("playback"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn to be invoked after every committed state change.
// Subscribers run outside the clock lock and must not block.
func (c *Clock) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	c.subs = append(c.subs, fn)
	c.mu.Unlock()
}

// Snapshot returns the current clock state.
func (c *Clock) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{CurrentTime: c.current, Playing: c.playing, Muted: c.muted}
}

// CurrentTime returns the last known playback position in whole seconds.
func (c *Clock) CurrentTime() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Playing reports whether playback is currently running.
func (c *Clock) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Muted reports whether the film's own audio is muted.
func (c *Clock) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// SetCurrentTime overwrites the playback position, clamped to >= 0.
func (c *Clock) SetCurrentTime(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	c.mu.Lock()
	c.current = seconds
	snap := c.snapshotLocked()
	subs := c.subsLocked()
	c.mu.Unlock()
	notify(subs, snap)
}

// Seek clamps the target to >= 0, forwards it to the registered dispatcher
// (no-op when none is registered) and optimistically commits the clamped
// target as the current position without waiting for the media element.
func (c *Clock) Seek(target int) {
	if target < 0 {
		target = 0
	}
	c.mu.Lock()
	dispatch := c.dispatch
	c.current = target
	snap := c.snapshotLocked()
	subs := c.subsLocked()
	c.mu.Unlock()

	if dispatch != nil {
		recordSeek()
		dispatch(target)
	}
	notify(subs, snap)
}

// RegisterSeekDispatcher replaces the active dispatcher wholesale.
// Last registration wins; there is no unregistration.
func (c *Clock) RegisterSeekDispatcher(fn SeekDispatcher) {
	c.mu.Lock()
	c.dispatch = fn
	c.mu.Unlock()
}

// SetPlaying writes the playing flag directly. A pending debounced pause is
// discarded when playback is switched on, since it is contradicted.
func (c *Clock) SetPlaying(playing bool) {
	c.mu.Lock()
	if playing {
		c.cancelPauseLocked()
	}
	changed := c.playing != playing
	c.playing = playing
	snap := c.snapshotLocked()
	subs := c.subsLocked()
	c.mu.Unlock()
	if changed {
		notify(subs, snap)
	}
}

// SetMuted writes the muted flag directly.
func (c *Clock) SetMuted(muted bool) {
	c.mu.Lock()
	changed := c.muted != muted
	c.muted = muted
	snap := c.snapshotLocked()
	subs := c.subsLocked()
	c.mu.Unlock()
	if changed {
		notify(subs, snap)
	}
}

// ObservePlay handles a play event reported by the media element. It cancels
// any pending pause commit before flipping the flag.
func (c *Clock) ObservePlay() {
	c.mu.Lock()
	c.cancelPauseLocked()
	changed := !c.playing
	c.playing = true
	snap := c.snapshotLocked()
	subs := c.subsLocked()
	c.mu.Unlock()
	if changed {
		notify(subs, snap)
	}
}

// ObservePause handles a pause event reported by the media element together
// with the element's own mute state. A pause whose mute state disagrees with
// the clock is a transient artifact of a mute toggle and is ignored outright;
// any other pause is held for the debounce window and committed only if no
// contradicting play event arrives first.
func (c *Clock) ObservePause(elementMuted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elementMuted != c.muted {
		c.logger.Debug().
			Str(log.FieldEvent, "playback.pause_ignored").
			Bool(log.FieldMuted, elementMuted).
			Msg("ignoring pause induced by mute toggle")
		return
	}
	if !c.playing {
		return
	}

	c.cancelPauseLocked()
	c.pauseTimer = time.AfterFunc(c.pauseDelay, c.commitPause)
}

func (c *Clock) commitPause() {
	c.mu.Lock()
	c.pauseTimer = nil
	changed := c.playing
	c.playing = false
	snap := c.snapshotLocked()
	subs := c.subsLocked()
	c.mu.Unlock()
	if changed {
		notify(subs, snap)
	}
}

// cancelPauseLocked stops the scheduled pause commit, if any. Stopping the
// timer itself (not just flagging) prevents a double fire.
func (c *Clock) cancelPauseLocked() {
	if c.pauseTimer != nil {
		c.pauseTimer.Stop()
		c.pauseTimer = nil
		recordPauseSuppressed()
	}
}

func (c *Clock) snapshotLocked() Snapshot {
	return Snapshot{CurrentTime: c.current, Playing: c.playing, Muted: c.muted}
}

func (c *Clock) subsLocked() []func(Snapshot) {
	if len(c.subs) == 0 {
		return nil
	}
	out := make([]func(Snapshot), len(c.subs))
	copy(out, c.subs)
	return out
}

func notify(subs []func(Snapshot), snap Snapshot) {
	recordSnapshot(snap)
	for _, fn := range subs {
		fn(snap)
	}
}
