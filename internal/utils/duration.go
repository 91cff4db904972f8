package utils

import (
	"fmt"
	"math"
	"time"
)

// SecondsToDuration converts a floating point number of seconds into a
// Duration, saturating at the largest representable value.
func SecondsToDuration(seconds float64) time.Duration {
	if math.IsNaN(seconds) || seconds <= 0 {
		return 0
	}
	if seconds >= float64(math.MaxInt64)/float64(time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(seconds * float64(time.Second))
}

// FormatSeconds renders a duration as seconds with two decimals.
func FormatSeconds(duration time.Duration) string {
	return fmt.Sprintf("%.2f", duration.Seconds())
}
