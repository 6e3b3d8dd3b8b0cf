package service

import (
	"fmt"
	"time"
)

// RelativeTime renders a coarse human label for t relative to now, e.g.
// "2 hours ago" or "3 days ago". Future timestamps read "in ...". Sub-minute
// deltas in either direction read "just now".
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	future := d < 0
	if future {
		d = -d
	}

	if d < time.Minute {
		return "just now"
	}

	var n int
	var unit string
	switch {
	case d < time.Hour:
		n, unit = int(d/time.Minute), "minute"
	case d < 24*time.Hour:
		n, unit = int(d/time.Hour), "hour"
	case d < 7*24*time.Hour:
		n, unit = int(d/(24*time.Hour)), "day"
	case d < 30*24*time.Hour:
		n, unit = int(d/(7*24*time.Hour)), "week"
	case d < 365*24*time.Hour:
		n, unit = int(d/(30*24*time.Hour)), "month"
	default:
		n, unit = int(d/(365*24*time.Hour)), "year"
	}

	if n != 1 {
		unit += "s"
	}
	if future {
		return fmt.Sprintf("in %d %s", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
