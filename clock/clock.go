// Package clock renders playback positions for display.
package clock

import "fmt"

// Format renders seconds as MM:SS. Fractions are truncated and minutes are
// not wrapped into hours, so 3661 renders as "61:01".
func Format(seconds float64) string {
	s := int64(seconds)
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// FormatMillis is Format for a position in milliseconds.
func FormatMillis(ms int64) string {
	return Format(float64(ms) / 1000)
}
