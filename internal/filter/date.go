package filter

import "time"

// IsRecent reports whether ts falls inside the window ending at now.
// A zero timestamp counts as recent (boards without usable dates are never
// excluded), and a zero window disables the check entirely.
func IsRecent(ts time.Time, window time.Duration, now time.Time) bool {
	if window == 0 || ts.IsZero() {
		return true
	}
	return now.Sub(ts) < window
}
