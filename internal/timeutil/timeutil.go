// Package timeutil provides utility functions for working with countdown
// durations.
package timeutil

import "fmt"

const secondsInAMinute = 60

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	if val < 0 {
		val = 0
	}

	mins = val / secondsInAMinute
	secs = val % secondsInAMinute

	return
}

// ToSecs converts a minutes and seconds pair to a total in seconds.
func ToSecs(mins, secs int) int {
	return mins*secondsInAMinute + secs
}

// Clock formats a seconds value as "M:SS". The minutes component is not
// padded.
func Clock(val int) string {
	m, s := SecsToMinsAndSecs(val)

	return fmt.Sprintf("%d:%02d", m, s)
}
