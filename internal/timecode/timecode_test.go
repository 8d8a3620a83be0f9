// SPDX-License-Identifier: MIT

package timecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSeconds(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00:00", 0},
		{"00:09:30", 570},
		{"00:20:00", 1200},
		{"01:00:00", 3600},
		{"01:25:00", 5100},
		{"10:59:59", 39599},
		{"100:00:01", 360001},
	}
	for _, tc := range cases {
		got, err := ToSeconds(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestToSecondsRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "12:34", "1:2:3:4", "aa:bb:cc", "00:60:00", "00:00:60", "-1:00:00", "00:-1:00"} {
		_, err := ToSeconds(in)
		assert.Error(t, err, in)
	}
}

func TestFromSeconds(t *testing.T) {
	assert.Equal(t, "00:00:00", FromSeconds(0))
	assert.Equal(t, "00:09:30", FromSeconds(570))
	assert.Equal(t, "01:25:00", FromSeconds(5100))
	assert.Equal(t, "00:00:00", FromSeconds(-7))
}

func TestRoundTrip(t *testing.T) {
	// seconds -> timestamp -> seconds is identity for any non-negative duration
	for _, s := range []int{0, 1, 59, 60, 61, 570, 3599, 3600, 5100, 86399, 86400, 359999} {
		got, err := ToSeconds(FromSeconds(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	// timestamp -> seconds -> timestamp is identity for well-formed input
	for _, ts := range []string{"00:00:00", "00:09:30", "01:15:00", "23:59:59", "99:00:30"} {
		s, err := ToSeconds(ts)
		require.NoError(t, err)
		assert.Equal(t, ts, FromSeconds(s))
	}
}
