package utils

import (
	"fmt"
	"time"
)

// TimeSince renders the elapsed wall-clock time between from and now in a
// short human form ("just now", "5 minutes ago", "3 days ago").
func TimeSince(from, now time.Time) string {
	d := now.Sub(from)
	if d < 0 {
		d = 0
	}

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return ago(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return ago(int(d.Hours()), "hour")
	case d < 30*24*time.Hour:
		return ago(int(d.Hours()/24), "day")
	case d < 365*24*time.Hour:
		return ago(int(d.Hours()/(24*30)), "month")
	default:
		return ago(int(d.Hours()/(24*365)), "year")
	}
}

func ago(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
