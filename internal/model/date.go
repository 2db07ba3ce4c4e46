package model

import "time"

// DateLayout is the plain calendar date format the UI sends.
const DateLayout = "2006-01-02"

// ParseDate accepts a plain "YYYY-MM-DD" date or a full RFC 3339 timestamp.
// Plain dates are anchored at local noon so timezone/DST conversions cannot
// shift them onto a neighboring day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return t.Add(12 * time.Hour), nil
	}
	return time.Parse(time.RFC3339, s)
}
