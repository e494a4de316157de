package domain

import "fmt"

// TimeToMinutes converts an hour/minute pair to minutes from midnight.
// No bounds validation; callers supply hour in [0,23] and minute in [0,59]
// for meaningful results.
func TimeToMinutes(hour, minute int) int {
	return hour*60 + minute
}

// MinutesToTime splits minutes from midnight into an hour/minute pair.
// MinutesToTime(1440) yields (24, 0), which callers must treat as
// "end of day" rather than a clock reading.
func MinutesToTime(minutes int) (hour, minute int) {
	return minutes / 60, minutes % 60
}

// FormatTime renders minutes from midnight as zero-padded "HH:MM".
func FormatTime(minutes int) string {
	hour, minute := MinutesToTime(minutes)
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FormatDuration renders a minute count as "Xh", "Xh Ym", or "Ym" when
// under an hour.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
