// SPDX-License-Identifier: MIT

package playback

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gaugeValue(t *testing.T, g interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func TestGaugesTrackClockState(t *testing.T) {
	c := NewClock()

	c.SetCurrentTime(570)
	assert.Equal(t, float64(570), gaugeValue(t, positionGauge))
	assert.Equal(t, float64(0), gaugeValue(t, playingGauge))

	c.SetPlaying(true)
	assert.Equal(t, float64(1), gaugeValue(t, playingGauge))

	c.SetMuted(true)
	assert.Equal(t, float64(1), gaugeValue(t, mutedGauge))

	c.SetPlaying(false)
	c.SetMuted(false)
	assert.Equal(t, float64(0), gaugeValue(t, playingGauge))
	assert.Equal(t, float64(0), gaugeValue(t, mutedGauge))
}
