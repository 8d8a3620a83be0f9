// SPDX-License-Identifier: MIT

// Package timecode converts between "HH:MM:SS" timestamps and integer seconds.
// All dataset timestamps (chapters, audio-description scenes, POI moments) use
// this format; conversions are exact and round-trip.
package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// ToSeconds parses a "HH:MM:SS" timestamp into total seconds.
// Hours are unbounded; minutes and seconds must be in 00-59.
func ToSeconds(timestamp string) (int, error) {
	parts := strings.Split(timestamp, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("timecode: malformed timestamp %q", timestamp)
	}
	segs := make([]int, 3)
	for i, p := range parts {
		if len(p) < 2 {
			return 0, fmt.Errorf("timecode: malformed timestamp %q", timestamp)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("timecode: malformed timestamp %q", timestamp)
		}
		segs[i] = n
	}
	if segs[1] > 59 || segs[2] > 59 {
		return 0, fmt.Errorf("timecode: out-of-range segment in %q", timestamp)
	}
	return segs[0]*3600 + segs[1]*60 + segs[2], nil
}

// FromSeconds renders total seconds as a zero-padded "HH:MM:SS" timestamp.
// Negative input is clamped to zero.
func FromSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
