// SPDX-License-Identifier: MIT

package playback

// ActiveIndex selects the item with the largest timestamp not exceeding
// current from an ascending list of item start times. An item stays active
// until the next item's timestamp is reached; this is a floor selection, not
// nearest-neighbour. When no item qualifies the first item is the default.
// Returns -1 only for an empty list.
func ActiveIndex(startTimes []int, current int) int {
	if len(startTimes) == 0 {
		return -1
	}
	for i := len(startTimes) - 1; i >= 0; i-- {
		if current >= startTimes[i] {
			return i
		}
	}
	return 0
}
