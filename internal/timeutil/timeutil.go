// Package timeutil formats stopwatch readings and derives lap intervals.
package timeutil

import (
	"fmt"
)

const (
	msPerMinute = 60000
	msPerSecond = 1000
	msPerCenti  = 10
)

// Split breaks a millisecond reading into whole minutes, seconds within the
// minute and centiseconds within the second.
func Split(ms int64) (minutes, seconds, centis int64) {
	minutes = ms / msPerMinute
	seconds = (ms % msPerMinute) / msPerSecond
	centis = (ms % msPerSecond) / msPerCenti

	return
}

// Format renders ms as MM:SS.CC. Minutes are never truncated, so an hour and
// a half prints as 90:00.00 and 100 minutes as 100:00.00.
func Format(ms int64) string {
	m, s, c := Split(ms)

	return fmt.Sprintf("%02d:%02d.%02d", m, s, c)
}

// IntervalOf returns the time between lap i and the lap before it. The first
// lap's interval is the lap itself.
func IntervalOf(laps []int64, i int) int64 {
	if i == 0 {
		return laps[0]
	}

	return laps[i] - laps[i-1]
}
