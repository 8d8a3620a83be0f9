// SPDX-License-Identifier: MIT

package playback

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeekClampsNegativeTarget(t *testing.T) {
	c := NewClock()
	var forwarded []int
	c.RegisterSeekDispatcher(func(s int) { forwarded = append(forwarded, s) })

	c.Seek(-5)

	assert.Equal(t, 0, c.CurrentTime())
	require.Len(t, forwarded, 1)
	assert.Equal(t, 0, forwarded[0])
}

func TestSeekWithoutDispatcherIsNoop(t *testing.T) {
	c := NewClock()
	assert.NotPanics(t, func() { c.Seek(120) })
	assert.Equal(t, 120, c.CurrentTime())
}

func TestSeekUpdatesTimeOptimistically(t *testing.T) {
	c := NewClock()
	// dispatcher that never confirms; the clock must not wait for it
	c.RegisterSeekDispatcher(func(int) {})
	c.Seek(570)
	assert.Equal(t, 570, c.CurrentTime())
}

func TestRegisterSeekDispatcherLastWins(t *testing.T) {
	c := NewClock()
	var first, second int
	c.RegisterSeekDispatcher(func(s int) { first++ })
	c.RegisterSeekDispatcher(func(s int) { second++ })

	c.Seek(30)
	c.Seek(60)

	assert.Equal(t, 0, first)
	assert.Equal(t, 2, second)
}

func TestSetCurrentTimeClamps(t *testing.T) {
	c := NewClock()
	c.SetCurrentTime(-1)
	assert.Equal(t, 0, c.CurrentTime())
	c.SetCurrentTime(800)
	assert.Equal(t, 800, c.CurrentTime())
}

func TestObservePauseCommitsAfterWindow(t *testing.T) {
	c := NewClock(WithPauseDelay(20 * time.Millisecond))
	c.SetPlaying(true)

	c.ObservePause(false)
	assert.True(t, c.Playing(), "pause must be held for the debounce window")

	require.Eventually(t, func() bool { return !c.Playing() },
		500*time.Millisecond, 5*time.Millisecond)
}

func TestObservePauseCancelledByPlay(t *testing.T) {
	c := NewClock(WithPauseDelay(30 * time.Millisecond))
	c.SetPlaying(true)

	c.ObservePause(false)
	c.ObservePlay()

	time.Sleep(80 * time.Millisecond)
	assert.True(t, c.Playing(), "a play event inside the window cancels the pause")
}

func TestObservePauseIgnoredOnMuteMismatch(t *testing.T) {
	c := NewClock(WithPauseDelay(10 * time.Millisecond))
	c.SetPlaying(true)

	// the element reports muted=true while the clock still says unmuted:
	// this is the transient pause a mute toggle emits
	c.ObservePause(true)

	time.Sleep(50 * time.Millisecond)
	assert.True(t, c.Playing())
}

func TestMuteToggleDoesNotFlipPlaying(t *testing.T) {
	c := NewClock(WithPauseDelay(50 * time.Millisecond))
	c.SetPlaying(true)
	c.SetMuted(true)

	// spurious pause with matching mute state, contradicted within the window
	c.ObservePause(true)
	time.Sleep(10 * time.Millisecond)
	c.ObservePlay()

	time.Sleep(120 * time.Millisecond)
	assert.True(t, c.Playing())
}

func TestSubscribersSeeEveryCommit(t *testing.T) {
	c := NewClock()
	var mu sync.Mutex
	var seen []Snapshot
	c.Subscribe(func(s Snapshot) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})

	c.SetCurrentTime(10)
	c.SetPlaying(true)
	c.SetMuted(true)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 3)
	assert.Equal(t, Snapshot{CurrentTime: 10, Playing: false, Muted: false}, seen[0])
	assert.Equal(t, Snapshot{CurrentTime: 10, Playing: true, Muted: false}, seen[1])
	assert.Equal(t, Snapshot{CurrentTime: 10, Playing: true, Muted: true}, seen[2])
}

func TestSetPlayingIdempotentWritesDoNotNotify(t *testing.T) {
	c := NewClock()
	var count int
	c.Subscribe(func(Snapshot) { count++ })

	c.SetPlaying(false)
	c.SetMuted(false)

	assert.Zero(t, count)
}
