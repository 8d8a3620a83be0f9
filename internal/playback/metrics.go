// SPDX-License-Identifier: MIT

package playback

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	positionGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "reelmate_playback_position_seconds",
		Help: "Current playback position in seconds",
	})

	playingGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "reelmate_playback_playing",
		Help: "Whether playback is currently running (1) or paused (0)",
	})

	mutedGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "reelmate_playback_muted",
		Help: "Whether the film audio is muted (1) or live (0)",
	})

	seeksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reelmate_playback_seeks_total",
		Help: "Total number of seek requests dispatched",
	})

	pausesSuppressed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reelmate_playback_pauses_suppressed_total",
		Help: "Pause events discarded by the debounce window",
	})
)

func recordSnapshot(snap Snapshot) {
	positionGauge.Set(float64(snap.CurrentTime))
	if snap.Playing {
		playingGauge.Set(1)
	} else {
		playingGauge.Set(0)
	}
	if snap.Muted {
		mutedGauge.Set(1)
	} else {
		mutedGauge.Set(0)
	}
}

func recordSeek()            { seeksTotal.Inc() }
func recordPauseSuppressed() { pausesSuppressed.Inc() }
