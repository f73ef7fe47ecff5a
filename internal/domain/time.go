package domain

import "time"

// MinutesBetween returns the whole minutes elapsed from start to end.
// Both dates must be set and end must not precede start.
func MinutesBetween(start, end time.Time) (int, error) {
	if start.IsZero() || end.IsZero() {
		return 0, ErrNullDate
	}
	minutes := int(end.Sub(start).Minutes())
	if minutes < 0 {
		return 0, ErrNegativeTime
	}
	return minutes, nil
}
