// SPDX-License-Identifier: MIT

package playback

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeElement struct {
	mu     sync.Mutex
	pos    float64
	paused bool
	muted  bool
	seeks  []int
}

func (f *fakeElement) Position() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pos, nil
}

func (f *fakeElement) Paused() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paused, nil
}

func (f *fakeElement) Muted() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.muted, nil
}

func (f *fakeElement) SeekTo(seconds int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seeks = append(f.seeks, seconds)
	f.pos = float64(seconds)
	return nil
}

func (f *fakeElement) SetPaused(paused bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paused = paused
	return nil
}

func (f *fakeElement) SetMuted(muted bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.muted = muted
	return nil
}

func (f *fakeElement) set(pos float64, paused bool) {
	f.mu.Lock()
	f.pos = pos
	f.paused = paused
	f.mu.Unlock()
}

func TestBindRegistersSeekDispatcher(t *testing.T) {
	clock := NewClock()
	el := &fakeElement{}
	Bind(clock, el)

	clock.Seek(42)

	el.mu.Lock()
	defer el.mu.Unlock()
	require.Len(t, el.seeks, 1)
	assert.Equal(t, 42, el.seeks[0])
}

func TestBindSupersedesPreviousElement(t *testing.T) {
	clock := NewClock()
	old := &fakeElement{}
	Bind(clock, old)
	fresh := &fakeElement{}
	Bind(clock, fresh)

	clock.Seek(10)

	old.mu.Lock()
	assert.Empty(t, old.seeks)
	old.mu.Unlock()
	fresh.mu.Lock()
	assert.Len(t, fresh.seeks, 1)
	fresh.mu.Unlock()
}

func TestRunSamplesPositionWhilePlaying(t *testing.T) {
	clock := NewClock(WithPauseDelay(5 * time.Millisecond))
	el := &fakeElement{}
	el.set(123.9, false)
	a := Bind(clock, el)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Run(ctx, 5*time.Millisecond)
	}()

	// the unpaused element drives the clock to playing, then position flows
	require.Eventually(t, func() bool { return clock.Playing() },
		time.Second, 2*time.Millisecond)
	require.Eventually(t, func() bool { return clock.CurrentTime() == 123 },
		time.Second, 2*time.Millisecond)

	cancel()
	<-done
}

func TestRunHoldsPositionWhilePaused(t *testing.T) {
	clock := NewClock(WithPauseDelay(time.Millisecond))
	el := &fakeElement{}
	el.set(50, true)
	a := Bind(clock, el)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Run(ctx, 5*time.Millisecond)
	}()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, clock.Playing())
	assert.Equal(t, 0, clock.CurrentTime(), "no position samples while paused")

	cancel()
	<-done
}

func TestAdapterControlPlane(t *testing.T) {
	clock := NewClock()
	el := &fakeElement{}
	el.set(0, true)
	a := Bind(clock, el)

	require.NoError(t, a.SetPlaying(true))
	assert.True(t, clock.Playing())
	paused, _ := el.Paused()
	assert.False(t, paused)

	require.NoError(t, a.SetMuted(true))
	assert.True(t, clock.Muted())
	muted, _ := el.Muted()
	assert.True(t, muted)
}
