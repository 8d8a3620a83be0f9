// SPDX-License-Identifier: MIT

package playback

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelmate/reelmate/internal/log"
)

// Element is the subset of a media element the adapter drives and observes.
// The element itself (decoder, renderer) is a black box behind this interface.
type Element interface {
	Position() (float64, error)
	Paused() (bool, error)
	Muted() (bool, error)
	SeekTo(seconds int) error
	SetPaused(paused bool) error
	SetMuted(muted bool) error
}

// Adapter binds one media element to the shared clock: it registers the seek
// dispatcher, mirrors control-plane writes onto the element, and feeds
// observed element state back into the clock at a fixed cadence.
type Adapter struct {
	clock  *Clock
	el     Element
	logger zerolog.Logger

	// last pause state seen on the element; nil until first sample
	lastPaused *bool
}

// Bind registers the element's seek handler on the clock and returns the
// adapter. Binding a second element supersedes the first dispatcher.
func Bind(clock *Clock, el Element) *Adapter {
	a := &Adapter{
		clock:  clock,
		el:     el,
		logger: log.WithComponent("media-adapter"),
	}
	clock.RegisterSeekDispatcher(func(seconds int) {
		if err := el.SeekTo(seconds); err != nil {
			a.logger.Warn().Err(err).
				Int(log.FieldPosition, seconds).
				Msg("seek dispatch failed")
		}
	})
	return a
}

// SetPlaying drives the element's pause control and commits the intent to the
// clock immediately.
func (a *Adapter) SetPlaying(playing bool) error {
	a.clock.SetPlaying(playing)
	return a.el.SetPaused(!playing)
}

// SetMuted drives the element's mute control. The clock is updated first so a
// pause event induced by the toggle is recognised as transient.
func (a *Adapter) SetMuted(muted bool) error {
	a.clock.SetMuted(muted)
	return a.el.SetMuted(muted)
}

// Run polls the element until ctx is cancelled. The playback position is
// sampled only while the clock reports playing; the element's pause state is
// sampled every tick so externally initiated play/pause reaches the clock.
func (a *Adapter) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.tick()
		}
	}
}

func (a *Adapter) tick() {
	if paused, err := a.el.Paused(); err == nil {
		a.observePauseState(paused)
	}
	if !a.clock.Playing() {
		return
	}
	pos, err := a.el.Position()
	if err != nil {
		a.logger.Debug().Err(err).Msg("position sample failed")
		return
	}
	a.clock.SetCurrentTime(int(math.Floor(pos)))
}

func (a *Adapter) observePauseState(paused bool) {
	if a.lastPaused != nil && *a.lastPaused == paused {
		return
	}
	a.lastPaused = &paused

	if paused {
		muted := a.clock.Muted()
		if m, err := a.el.Muted(); err == nil {
			muted = m
		}
		a.clock.ObservePause(muted)
		return
	}
	a.clock.ObservePlay()
}
